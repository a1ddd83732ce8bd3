package coupon

import (
	"github.com/rs/zerolog"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// UC-204: ExpireCoupons Use Case
// ===========================

// ExpireCouponsResult 清掃結果（Output DTO）
type ExpireCouponsResult struct {
	ExpiredCount int64
}

// ExpireCouponsUseCase 批次過期清掃 Use Case 接口
//
// 業務規則：
// - 所有到期時間已過且仍為 ACTIVE 的券轉換為 EXPIRED
// - 冪等：重複執行的第二次掃不到任何可轉換的券（計數為 0）
// - 觸發來源：每日排程（infrastructure/scheduler），也可手動觸發
type ExpireCouponsUseCase interface {
	Execute() (*ExpireCouponsResult, error)
}

// ===========================
// ExpireCouponsUseCaseImpl
// ===========================

// ExpireCouponsUseCaseImpl 批次過期清掃 Use Case 實作
type ExpireCouponsUseCaseImpl struct {
	couponRepo coupon.CouponRepository
	txManager  shared.TransactionManager
	clock      shared.Clock
	logger     zerolog.Logger
}

// NewExpireCouponsUseCase 創建 ExpireCouponsUseCase 實例
func NewExpireCouponsUseCase(
	couponRepo coupon.CouponRepository,
	txManager shared.TransactionManager,
	clock shared.Clock,
	logger zerolog.Logger,
) ExpireCouponsUseCase {
	return &ExpireCouponsUseCaseImpl{
		couponRepo: couponRepo,
		txManager:  txManager,
		clock:      clock,
		logger:     logger,
	}
}

// Execute 執行批次過期清掃
//
// 單一條件式批次 UPDATE，與驗證流程的惰性過期共用同一個
// 狀態轉換規則（只從 ACTIVE 轉換）
func (uc *ExpireCouponsUseCaseImpl) Execute() (*ExpireCouponsResult, error) {
	now := uc.clock()

	var count int64
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		count, err = uc.couponRepo.ExpireDue(ctx, now)
		return err
	})
	if err != nil {
		uc.logger.Error().Err(err).Msg("優惠券過期清掃失敗")
		return nil, err
	}

	if count > 0 {
		uc.logger.Info().
			Int64("expired_count", count).
			Time("as_of", now).
			Msg("優惠券過期清掃完成")
	}

	return &ExpireCouponsResult{ExpiredCount: count}, nil
}
