package promotion

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// UC-302: UpdateReward Use Case (Admin)
// ===========================

// UpdateRewardCommand 更新獎項設定指令（Input DTO）
//
// 折扣條款的變更只影響之後鑄造的優惠券，
// 已發出的券保留鑄造當下複製的條款
type UpdateRewardCommand struct {
	RewardID        string
	Active          bool
	Value           decimal.Decimal
	MaxDiscount     *decimal.Decimal
	MinOrderAmount  *decimal.Decimal
	BaseProbability float64
	Multipliers     map[string]float64 // 等級名稱 → 乘數；nil 表示不變更
}

// UpdateRewardResult 更新結果（Output DTO）
type UpdateRewardResult struct {
	RewardID  string
	UpdatedAt time.Time
}

// UpdateRewardUseCase 更新獎項設定 Use Case 接口（管理端）
type UpdateRewardUseCase interface {
	Execute(cmd UpdateRewardCommand) (*UpdateRewardResult, error)
}

// UpdateRewardUseCaseImpl 更新獎項設定 Use Case 實作
type UpdateRewardUseCaseImpl struct {
	rewardRepo promotion.RewardRepository
	txManager  shared.TransactionManager
	logger     zerolog.Logger
}

// NewUpdateRewardUseCase 創建 UpdateRewardUseCase 實例
func NewUpdateRewardUseCase(
	rewardRepo promotion.RewardRepository,
	txManager shared.TransactionManager,
	logger zerolog.Logger,
) UpdateRewardUseCase {
	return &UpdateRewardUseCaseImpl{
		rewardRepo: rewardRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute 更新獎項設定
func (uc *UpdateRewardUseCaseImpl) Execute(cmd UpdateRewardCommand) (*UpdateRewardResult, error) {
	rewardID, err := promotion.RewardIDFromString(cmd.RewardID)
	if err != nil {
		return nil, err
	}

	multipliers, err := parseMultipliers(cmd.Multipliers)
	if err != nil {
		return nil, err
	}

	var result *UpdateRewardResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		reward, err := uc.rewardRepo.FindByID(ctx, rewardID)
		if err != nil {
			return err
		}

		if err := reward.UpdateTerms(cmd.Value, cmd.MaxDiscount, cmd.MinOrderAmount); err != nil {
			return err
		}
		if multipliers == nil {
			multipliers = reward.Multipliers()
		}
		if err := reward.UpdateProbability(cmd.BaseProbability, multipliers); err != nil {
			return err
		}
		reward.SetActive(cmd.Active)

		if err := uc.rewardRepo.Update(ctx, reward); err != nil {
			return err
		}

		uc.logger.Info().
			Str("reward_id", rewardID.String()).
			Bool("active", cmd.Active).
			Float64("base_probability", cmd.BaseProbability).
			Msg("獎項設定已更新")

		result = &UpdateRewardResult{
			RewardID:  reward.RewardID().String(),
			UpdatedAt: reward.UpdatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// parseMultipliers 將等級名稱鍵轉換為 Tier 鍵（未知等級拒絕）
func parseMultipliers(raw map[string]float64) (promotion.TierMultipliers, error) {
	if raw == nil {
		return nil, nil
	}
	multipliers := make(promotion.TierMultipliers, len(raw))
	for name, value := range raw {
		tier, err := member.TierFromString(name)
		if err != nil {
			return nil, err
		}
		multipliers[tier] = value
	}
	return multipliers, nil
}
