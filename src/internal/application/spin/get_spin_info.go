package spin

import (
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/spin"
)

// ===========================
// UC-100: GetSpinInfo Use Case
// ===========================

// GetSpinInfoQuery 查詢抽獎狀態面板（Input DTO）
type GetSpinInfoQuery struct {
	MemberID string // 會員 ID (UUID)
}

// SlotInfo 轉盤槽位資訊（依 displayOrder 排序）
//
// Probability 是該會員等級下的正規化機率（Σ = 1）；
// 全零退化設定時所有槽位為 0，前端仍可渲染轉盤
type SlotInfo struct {
	RewardID    string
	Name        string
	Kind        string
	Probability float64
}

// GetSpinInfoResult 抽獎狀態面板（Output DTO）
type GetSpinInfoResult struct {
	ProgramID   string
	ProgramName string
	EndAt       time.Time

	Slots []SlotInfo

	Tier               string
	FreeSpinsRemaining int
	PointsPerSpin      int
	PointsBalance      int
	CanExchange        bool
	SpinsToday         int
	ActiveCoupons      int
}

// GetSpinInfoUseCase 查詢抽獎狀態面板 Use Case 接口
//
// 使用場景：顧客打開抽獎頁面，一次取回渲染轉盤與按鈕狀態所需的全部數據。
// 純讀操作，不使用事務（auto-commit 模式）
type GetSpinInfoUseCase interface {
	Execute(query GetSpinInfoQuery) (*GetSpinInfoResult, error)
}

// ===========================
// GetSpinInfoUseCaseImpl
// ===========================

// GetSpinInfoUseCaseImpl 查詢抽獎狀態面板 Use Case 實作
type GetSpinInfoUseCaseImpl struct {
	memberRepo  member.MemberRepository
	programRepo promotion.ProgramRepository
	rewardRepo  promotion.RewardRepository
	spinRepo    spin.SpinRecordRepository
	couponRepo  coupon.CouponRepository

	wheel *promotion.Wheel
	clock shared.Clock
}

// NewGetSpinInfoUseCase 創建 GetSpinInfoUseCase 實例
func NewGetSpinInfoUseCase(
	memberRepo member.MemberRepository,
	programRepo promotion.ProgramRepository,
	rewardRepo promotion.RewardRepository,
	spinRepo spin.SpinRecordRepository,
	couponRepo coupon.CouponRepository,
	clock shared.Clock,
) GetSpinInfoUseCase {
	return &GetSpinInfoUseCaseImpl{
		memberRepo:  memberRepo,
		programRepo: programRepo,
		rewardRepo:  rewardRepo,
		spinRepo:    spinRepo,
		couponRepo:  couponRepo,
		wheel:       promotion.NewWheel(),
		clock:       clock,
	}
}

// Execute 查詢抽獎狀態面板
//
// 機率展示使用會員當下等級的正規化分布，
// 與 PlaySpin 的抽取邏輯共用同一個 Domain Service（Wheel）
func (uc *GetSpinInfoUseCaseImpl) Execute(query GetSpinInfoQuery) (*GetSpinInfoResult, error) {
	memberID, err := member.MemberIDFromString(query.MemberID)
	if err != nil {
		return nil, err
	}

	m, err := uc.memberRepo.FindByID(nil, memberID)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	program, err := uc.programRepo.FindRunning(nil, now)
	if err != nil {
		return nil, err
	}

	rewards, err := uc.rewardRepo.FindActiveByProgram(nil, program.ProgramID())
	if err != nil {
		return nil, err
	}
	if len(rewards) == 0 {
		return nil, promotion.ErrProgramUnavailable.WithContext(
			"reason", "active reward set is empty",
			"program_id", program.ProgramID().String(),
		)
	}

	probs := uc.wheel.Normalize(rewards, m.Tier())
	slots := make([]SlotInfo, len(rewards))
	for i, r := range rewards {
		p := 0.0
		if probs != nil {
			p = probs[i]
		}
		slots[i] = SlotInfo{
			RewardID:    r.RewardID().String(),
			Name:        r.Name(),
			Kind:        string(r.Kind()),
			Probability: p,
		}
	}

	today := shared.DateOf(now)
	freeUsed, err := uc.spinRepo.CountForDay(nil, memberID, program.ProgramID(), spin.KindFree, today)
	if err != nil {
		return nil, err
	}
	remaining := program.DailyFreeSpins() - freeUsed
	if remaining < 0 {
		remaining = 0
	}

	spinsToday, err := uc.spinRepo.CountAllForDay(nil, memberID, program.ProgramID(), today)
	if err != nil {
		return nil, err
	}

	activeCoupons, err := uc.couponRepo.CountActive(nil, memberID)
	if err != nil {
		return nil, err
	}

	cost, err := member.NewPoints(program.PointsPerSpin())
	if err != nil {
		return nil, err
	}

	return &GetSpinInfoResult{
		ProgramID:          program.ProgramID().String(),
		ProgramName:        program.Name(),
		EndAt:              program.EndAt(),
		Slots:              slots,
		Tier:               m.Tier().String(),
		FreeSpinsRemaining: remaining,
		PointsPerSpin:      program.PointsPerSpin(),
		PointsBalance:      m.AvailablePoints().Value(),
		CanExchange:        m.CanAfford(cost),
		SpinsToday:         spinsToday,
		ActiveCoupons:      activeCoupons,
	}, nil
}
