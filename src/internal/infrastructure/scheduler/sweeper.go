package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	appcoupon "github.com/jackyeh168/lucky_spin/src/internal/application/coupon"
)

// ===========================
// 優惠券過期清掃排程
// ===========================

// ExpirySweeper 週期性執行優惠券過期清掃
//
// 清掃本身冪等（只轉換到期的 ACTIVE 券），因此固定間隔觸發即可，
// 不需要分散式鎖或錯過補跑。惰性過期（驗證時發現）作為補位，
// 兩者之間沒有正確性依賴
type ExpirySweeper struct {
	expireCoupons appcoupon.ExpireCouponsUseCase
	interval      time.Duration
	logger        zerolog.Logger
}

// NewExpirySweeper 創建過期清掃排程
func NewExpirySweeper(
	expireCoupons appcoupon.ExpireCouponsUseCase,
	interval time.Duration,
	logger zerolog.Logger,
) *ExpirySweeper {
	return &ExpirySweeper{
		expireCoupons: expireCoupons,
		interval:      interval,
		logger:        logger,
	}
}

// Run 啟動清掃循環，阻塞直到 ctx 取消
//
// 啟動時立即清掃一次，之後每 interval 觸發
func (s *ExpirySweeper) Run(ctx context.Context) {
	s.logger.Info().
		Dur("interval", s.interval).
		Msg("coupon expiry sweeper started")

	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("coupon expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *ExpirySweeper) sweep() {
	result, err := s.expireCoupons.Execute()
	if err != nil {
		s.logger.Error().Err(err).Msg("coupon expiry sweep failed")
		return
	}
	if result.ExpiredCount > 0 {
		s.logger.Info().
			Int64("expired_count", result.ExpiredCount).
			Msg("coupon expiry sweep completed")
	}
}
