package coupon

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// UC-200: ValidateCoupon Use Case
// ===========================

// ValidateCouponQuery 結帳前驗證優惠券（Input DTO）
type ValidateCouponQuery struct {
	Code     string
	MemberID string
	Subtotal decimal.Decimal // 訂單小計（折扣前）
}

// ValidateCouponResult 驗證結果（Output DTO）
//
// 業務上的「無效」不是錯誤：結帳協作方需要的是可展示給顧客的
// 判定結果。Valid 為 false 時 Reason 攜帶 DomainError 代碼
type ValidateCouponResult struct {
	Valid          bool
	Reason         string // DomainError 代碼（Valid 為 true 時為空）
	DiscountAmount decimal.Decimal
	FreeShipping   bool
}

// ValidateCouponUseCase 驗證優惠券 Use Case 接口
//
// 檢查順序（第一個失敗即定案）：
// 代碼不存在 → 擁有者不符 → 終態（USED / EXPIRED）→ 到期時間已過 →
// 低於最低訂單門檻
//
// 副作用：發現 ACTIVE 但到期時間已過的券時，惰性轉換為 EXPIRED
// （排程清掃的補位，見 ExpireCouponsUseCase）
type ValidateCouponUseCase interface {
	Execute(query ValidateCouponQuery) (*ValidateCouponResult, error)
}

// ===========================
// ValidateCouponUseCaseImpl
// ===========================

// ValidateCouponUseCaseImpl 驗證優惠券 Use Case 實作
type ValidateCouponUseCaseImpl struct {
	couponRepo coupon.CouponRepository
	clock      shared.Clock
	logger     zerolog.Logger
}

// NewValidateCouponUseCase 創建 ValidateCouponUseCase 實例
func NewValidateCouponUseCase(
	couponRepo coupon.CouponRepository,
	clock shared.Clock,
	logger zerolog.Logger,
) ValidateCouponUseCase {
	return &ValidateCouponUseCaseImpl{
		couponRepo: couponRepo,
		clock:      clock,
		logger:     logger,
	}
}

// Execute 驗證優惠券
func (uc *ValidateCouponUseCaseImpl) Execute(query ValidateCouponQuery) (*ValidateCouponResult, error) {
	memberID, err := member.MemberIDFromString(query.MemberID)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(query.Code)
	if code == "" {
		return nil, coupon.ErrInvalidCode.WithContext("reason", "code cannot be empty")
	}

	c, err := uc.couponRepo.FindByCode(nil, code)
	if err != nil {
		if errors.Is(err, coupon.ErrCouponNotFound) {
			return invalidResult(err), nil
		}
		return nil, err
	}

	now := uc.clock()
	if err := c.Validate(memberID, now); err != nil {
		uc.lazyExpire(c, err)
		return invalidResult(err), nil
	}

	discount, err := c.Terms().DiscountFor(query.Subtotal)
	if err != nil {
		if errors.Is(err, coupon.ErrBelowMinOrder) {
			return invalidResult(err), nil
		}
		return nil, err
	}

	return &ValidateCouponResult{
		Valid:          true,
		DiscountAmount: discount.Amount,
		FreeShipping:   discount.FreeShipping,
	}, nil
}

// lazyExpire 驗證時發現 ACTIVE 但已過期的券，惰性轉換狀態
//
// 轉換失敗只記錄不回傳：驗證本身是唯讀語義，
// 狀態收斂留給下一次驗證或排程清掃
func (uc *ValidateCouponUseCaseImpl) lazyExpire(c *coupon.Coupon, validateErr error) {
	if !errors.Is(validateErr, coupon.ErrCouponExpired) || c.Status() != coupon.StatusActive {
		return
	}
	updated, err := uc.couponRepo.MarkExpired(nil, c.CouponID())
	if err != nil {
		uc.logger.Error().Err(err).
			Str("code", c.Code()).
			Msg("惰性過期轉換失敗")
		return
	}
	if updated {
		uc.logger.Info().
			Str("code", c.Code()).
			Msg("驗證時發現過期優惠券，已轉換為 EXPIRED")
	}
}

// invalidResult 以 DomainError 代碼組裝無效結果
func invalidResult(err error) *ValidateCouponResult {
	reason := ""
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		reason = string(domainErr.Code)
	}
	return &ValidateCouponResult{Valid: false, Reason: reason}
}
