package spin

import (
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/spin"
)

// ===========================
// UC-102: ListSpinHistory Use Case
// ===========================

// ListSpinHistoryQuery 查詢抽獎歷史（Input DTO）
type ListSpinHistoryQuery struct {
	MemberID string
	Limit    int // <= 0 表示不限制
}

// SpinHistoryItem 抽獎歷史項目
type SpinHistoryItem struct {
	SpinID      string
	RewardID    string
	CouponID    string // 空字串表示銘謝惠顧
	Kind        string
	PointsSpent int
	SpinDate    string
	CreatedAt   time.Time
}

// ListSpinHistoryResult 抽獎歷史（Output DTO，新到舊）
type ListSpinHistoryResult struct {
	Items []SpinHistoryItem
}

// ListSpinHistoryUseCase 查詢抽獎歷史 Use Case 接口
type ListSpinHistoryUseCase interface {
	Execute(query ListSpinHistoryQuery) (*ListSpinHistoryResult, error)
}

// ListSpinHistoryUseCaseImpl 查詢抽獎歷史 Use Case 實作
type ListSpinHistoryUseCaseImpl struct {
	spinRepo spin.SpinRecordRepository
}

// NewListSpinHistoryUseCase 創建 ListSpinHistoryUseCase 實例
func NewListSpinHistoryUseCase(spinRepo spin.SpinRecordRepository) ListSpinHistoryUseCase {
	return &ListSpinHistoryUseCaseImpl{spinRepo: spinRepo}
}

// Execute 查詢抽獎歷史
func (uc *ListSpinHistoryUseCaseImpl) Execute(query ListSpinHistoryQuery) (*ListSpinHistoryResult, error) {
	memberID, err := member.MemberIDFromString(query.MemberID)
	if err != nil {
		return nil, err
	}

	records, err := uc.spinRepo.ListByMember(nil, memberID, query.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]SpinHistoryItem, len(records))
	for i, r := range records {
		couponID := ""
		if !r.CouponID().IsEmpty() {
			couponID = r.CouponID().String()
		}
		items[i] = SpinHistoryItem{
			SpinID:      r.SpinID().String(),
			RewardID:    r.RewardID().String(),
			CouponID:    couponID,
			Kind:        string(r.Kind()),
			PointsSpent: r.PointsSpent(),
			SpinDate:    r.SpinDate(),
			CreatedAt:   r.CreatedAt(),
		}
	}

	return &ListSpinHistoryResult{Items: items}, nil
}
