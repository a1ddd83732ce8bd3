package promotion

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
)

// ===========================
// UC-300: GetProgram Use Case (Admin)
// ===========================

// GetProgramQuery 查詢活動設定（Input DTO）
type GetProgramQuery struct {
	ProgramID string
}

// RewardDetail 獎項設定明細（管理端視角，含未啟用獎項與乘數欄）
type RewardDetail struct {
	RewardID        string
	Name            string
	Kind            string
	Value           decimal.Decimal
	MaxDiscount     *decimal.Decimal
	MinOrderAmount  *decimal.Decimal
	BaseProbability float64
	Multipliers     map[string]float64
	CouponValidDays int
	Active          bool
	DisplayOrder    int
}

// GetProgramResult 活動設定（Output DTO）
type GetProgramResult struct {
	ProgramID      string
	Name           string
	Active         bool
	StartAt        time.Time
	EndAt          time.Time
	DailyFreeSpins int
	PointsPerSpin  int
	Rewards        []RewardDetail
}

// GetProgramUseCase 查詢活動設定 Use Case 接口（管理端）
type GetProgramUseCase interface {
	Execute(query GetProgramQuery) (*GetProgramResult, error)
}

// GetProgramUseCaseImpl 查詢活動設定 Use Case 實作
type GetProgramUseCaseImpl struct {
	programRepo promotion.ProgramRepository
	rewardRepo  promotion.RewardRepository
}

// NewGetProgramUseCase 創建 GetProgramUseCase 實例
func NewGetProgramUseCase(
	programRepo promotion.ProgramRepository,
	rewardRepo promotion.RewardRepository,
) GetProgramUseCase {
	return &GetProgramUseCaseImpl{programRepo: programRepo, rewardRepo: rewardRepo}
}

// Execute 查詢活動設定
func (uc *GetProgramUseCaseImpl) Execute(query GetProgramQuery) (*GetProgramResult, error) {
	programID, err := promotion.ProgramIDFromString(query.ProgramID)
	if err != nil {
		return nil, err
	}

	program, err := uc.programRepo.FindByID(nil, programID)
	if err != nil {
		return nil, err
	}

	rewards, err := uc.rewardRepo.FindActiveByProgram(nil, programID)
	if err != nil {
		return nil, err
	}

	details := make([]RewardDetail, len(rewards))
	for i, r := range rewards {
		multipliers := make(map[string]float64, len(member.AllTiers()))
		for _, tier := range member.AllTiers() {
			multipliers[tier.String()] = r.Multipliers().For(tier)
		}
		details[i] = RewardDetail{
			RewardID:        r.RewardID().String(),
			Name:            r.Name(),
			Kind:            string(r.Kind()),
			Value:           r.Value(),
			MaxDiscount:     r.MaxDiscount(),
			MinOrderAmount:  r.MinOrderAmount(),
			BaseProbability: r.BaseProbability(),
			Multipliers:     multipliers,
			CouponValidDays: r.CouponValidDays(),
			Active:          r.Active(),
			DisplayOrder:    r.DisplayOrder(),
		}
	}

	return &GetProgramResult{
		ProgramID:      program.ProgramID().String(),
		Name:           program.Name(),
		Active:         program.Active(),
		StartAt:        program.StartAt(),
		EndAt:          program.EndAt(),
		DailyFreeSpins: program.DailyFreeSpins(),
		PointsPerSpin:  program.PointsPerSpin(),
		Rewards:        details,
	}, nil
}
