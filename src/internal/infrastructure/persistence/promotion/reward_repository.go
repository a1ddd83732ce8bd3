package promotion

import (
	"errors"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// RewardRepositoryImpl
// ===========================

// RewardRepositoryImpl 獎項倉儲實現（GORM）
type RewardRepositoryImpl struct {
	db *gorm.DB
}

// NewRewardRepository 創建新的獎項倉儲實例
func NewRewardRepository(db *gorm.DB) promotion.RewardRepository {
	return &RewardRepositoryImpl{db: db}
}

// Save 保存新獎項
func (r *RewardRepositoryImpl) Save(ctx shared.TransactionContext, reward *promotion.Reward) error {
	db := getDB(ctx, r.db)
	return db.Create(rewardToGORM(reward)).Error
}

// FindByID 根據獎項 ID 查找
func (r *RewardRepositoryImpl) FindByID(ctx shared.TransactionContext, rewardID promotion.RewardID) (*promotion.Reward, error) {
	db := getDB(ctx, r.db)

	var gormModel RewardGORM
	result := db.Where("reward_id = ?", rewardID.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, promotion.ErrRewardNotFound.WithContext(
				"reward_id", rewardID.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// FindActiveByProgram 查找活動的啟用獎項集合
//
// 業務規則：只含 active 獎項，依 display_order 升冪排序（轉盤槽位順序）。
// 空集合不是錯誤：由調用者 fail closed
func (r *RewardRepositoryImpl) FindActiveByProgram(ctx shared.TransactionContext, programID promotion.ProgramID) ([]*promotion.Reward, error) {
	db := getDB(ctx, r.db)

	var gormModels []RewardGORM
	result := db.
		Where("program_id = ? AND active = ?", programID.String(), true).
		Order("display_order ASC").
		Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rewards := make([]*promotion.Reward, len(gormModels))
	for i := range gormModels {
		reward, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		rewards[i] = reward
	}

	return rewards, nil
}

// Update 更新獎項設定
func (r *RewardRepositoryImpl) Update(ctx shared.TransactionContext, reward *promotion.Reward) error {
	db := getDB(ctx, r.db)

	result := db.Model(&RewardGORM{}).
		Where("reward_id = ?", reward.RewardID().String()).
		Select(
			"name", "kind", "value", "max_discount", "min_order_amount",
			"base_probability", "multiplier_bronze", "multiplier_silver",
			"multiplier_gold", "multiplier_diamond",
			"coupon_valid_days", "active", "display_order", "updated_at",
		).
		Updates(rewardToGORM(reward))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return promotion.ErrRewardNotFound.WithContext(
			"reward_id", reward.RewardID().String(),
		)
	}

	return nil
}
