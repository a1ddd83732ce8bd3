package spin

import (
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// SpinKind 抽獎種類
// ===========================

// SpinKind 抽獎種類
type SpinKind string

// 抽獎種類常量
const (
	KindFree           SpinKind = "FREE"            // 每日免費額度
	KindPointsExchange SpinKind = "POINTS_EXCHANGE" // 積分兌換
)

// SpinKindFromString 從字串解析抽獎種類
func SpinKindFromString(value string) (SpinKind, error) {
	switch SpinKind(value) {
	case KindFree, KindPointsExchange:
		return SpinKind(value), nil
	default:
		return "", ErrInvalidSpinKind.WithContext("input", value)
	}
}

// ===========================
// SpinID 值對象
// ===========================

// SpinMarker 抽獎記錄 ID 標記類型
type SpinMarker struct{}

// SpinID 抽獎記錄的唯一標識符
type SpinID = shared.EntityID[SpinMarker]

// NewSpinID 生成新的抽獎記錄 ID（UUID v4）
func NewSpinID() SpinID {
	return shared.NewEntityID[SpinMarker]()
}

// SpinIDFromString 從字串解析抽獎記錄 ID
func SpinIDFromString(s string) (SpinID, error) {
	return shared.EntityIDFromString[SpinMarker](s, ErrInvalidSpinID)
}

// ===========================
// SpinRecord 不可變審計實體
// ===========================

// SpinRecord 抽獎審計記錄（append-only）
//
// 每次抽獎嘗試成功提交時恰好寫入一筆，永不修改、永不刪除。
// 雙重用途：
// 1. 審計軌跡：重建任何顧客的抽獎歷史
// 2. 配額執行：COUNT(member, program, FREE, 當日) 嚴格小於
//    Program.DailyFreeSpins 才允許下一次免費抽獎，
//    此計數必須與寫入發生在同一個事務中（見 Repository 契約）
//
// 設計原則：不可變實體，只有建構函數與 getter，沒有任何命令方法
type SpinRecord struct {
	spinID    SpinID
	memberID  member.MemberID
	programID promotion.ProgramID
	rewardID  promotion.RewardID

	// couponID 為空表示「銘謝惠顧」結果（未鑄造優惠券）
	couponID coupon.CouponID

	kind        SpinKind
	pointsSpent int
	spinDate    string // UTC 日曆日（YYYY-MM-DD），配額計數鍵
	createdAt   time.Time
}

// NewSpinRecord 創建抽獎審計記錄
//
// 參數：
//   couponID - 中獎鑄造的優惠券 ID；「銘謝惠顧」傳 coupon.CouponID 零值
//   pointsSpent - FREE 必為 0；POINTS_EXCHANGE 等於活動的 PointsPerSpin
//   now - 抽獎時刻（spinDate 由此導出，UTC 日界）
func NewSpinRecord(
	memberID member.MemberID,
	programID promotion.ProgramID,
	rewardID promotion.RewardID,
	couponID coupon.CouponID,
	kind SpinKind,
	pointsSpent int,
	now time.Time,
) (*SpinRecord, error) {
	if memberID.IsEmpty() {
		return nil, ErrInvalidRecord.WithContext("reason", "memberID cannot be empty")
	}
	if programID.IsEmpty() {
		return nil, ErrInvalidRecord.WithContext("reason", "programID cannot be empty")
	}
	if rewardID.IsEmpty() {
		return nil, ErrInvalidRecord.WithContext("reason", "rewardID cannot be empty")
	}
	if _, err := SpinKindFromString(string(kind)); err != nil {
		return nil, err
	}
	if pointsSpent < 0 {
		return nil, ErrInvalidRecord.WithContext("reason", "pointsSpent cannot be negative")
	}
	if kind == KindFree && pointsSpent != 0 {
		return nil, ErrInvalidRecord.WithContext(
			"reason", "free spin cannot spend points",
			"points_spent", pointsSpent,
		)
	}

	return &SpinRecord{
		spinID:      NewSpinID(),
		memberID:    memberID,
		programID:   programID,
		rewardID:    rewardID,
		couponID:    couponID,
		kind:        kind,
		pointsSpent: pointsSpent,
		spinDate:    shared.DateOf(now),
		createdAt:   now,
	}, nil
}

// SpinID 獲取抽獎記錄 ID
func (r *SpinRecord) SpinID() SpinID { return r.spinID }

// MemberID 獲取會員 ID
func (r *SpinRecord) MemberID() member.MemberID { return r.memberID }

// ProgramID 獲取活動 ID
func (r *SpinRecord) ProgramID() promotion.ProgramID { return r.programID }

// RewardID 獲取中獎獎項 ID
func (r *SpinRecord) RewardID() promotion.RewardID { return r.rewardID }

// CouponID 獲取鑄造的優惠券 ID（IsEmpty 表示銘謝惠顧）
func (r *SpinRecord) CouponID() coupon.CouponID { return r.couponID }

// Kind 獲取抽獎種類
func (r *SpinRecord) Kind() SpinKind { return r.kind }

// PointsSpent 獲取本次抽獎花費的積分
func (r *SpinRecord) PointsSpent() int { return r.pointsSpent }

// SpinDate 獲取抽獎的 UTC 日曆日（YYYY-MM-DD）
func (r *SpinRecord) SpinDate() string { return r.spinDate }

// CreatedAt 獲取抽獎時刻
func (r *SpinRecord) CreatedAt() time.Time { return r.createdAt }

// ReconstructSpinRecord 從持久化存儲重建抽獎記錄（僅供 Infrastructure Layer 使用）
func ReconstructSpinRecord(
	spinID SpinID,
	memberID member.MemberID,
	programID promotion.ProgramID,
	rewardID promotion.RewardID,
	couponID coupon.CouponID,
	kind SpinKind,
	pointsSpent int,
	spinDate string,
	createdAt time.Time,
) (*SpinRecord, error) {
	if spinID.IsEmpty() {
		return nil, ErrInvalidSpinID.WithContext("reason", "invalid spin ID in database")
	}
	if _, err := SpinKindFromString(string(kind)); err != nil {
		return nil, err
	}

	return &SpinRecord{
		spinID:      spinID,
		memberID:    memberID,
		programID:   programID,
		rewardID:    rewardID,
		couponID:    couponID,
		kind:        kind,
		pointsSpent: pointsSpent,
		spinDate:    spinDate,
		createdAt:   createdAt,
	}, nil
}
