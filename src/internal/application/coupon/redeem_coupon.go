package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// UC-201: RedeemCoupon Use Case
// ===========================

// RedeemCouponCommand 核銷優惠券指令（Input DTO）
type RedeemCouponCommand struct {
	Code     string
	MemberID string
	OrderRef string // 結帳訂單引用（審計用）
	Subtotal decimal.Decimal
}

// RedeemCouponResult 核銷結果（Output DTO）
type RedeemCouponResult struct {
	Redeemed       bool
	Reason         string // DomainError 代碼（Redeemed 為 true 時為空）
	DiscountAmount decimal.Decimal
	FreeShipping   bool
	UsedAt         time.Time
}

// RedeemCouponUseCase 核銷優惠券 Use Case 接口
//
// 業務規則：
// 1. 重新驗證（擁有者、狀態、到期、最低訂單門檻）
// 2. 條件式轉換 ACTIVE → USED（恰好一個贏家）：兩個併發核銷
//    同一張券的請求，恰好一個 Redeemed = true，另一個得到
//    COUPON_ALREADY_USED，無部分效果
type RedeemCouponUseCase interface {
	Execute(cmd RedeemCouponCommand) (*RedeemCouponResult, error)
}

// ===========================
// RedeemCouponUseCaseImpl
// ===========================

// RedeemCouponUseCaseImpl 核銷優惠券 Use Case 實作
type RedeemCouponUseCaseImpl struct {
	couponRepo coupon.CouponRepository
	txManager  shared.TransactionManager
	clock      shared.Clock
	logger     zerolog.Logger
}

// NewRedeemCouponUseCase 創建 RedeemCouponUseCase 實例
func NewRedeemCouponUseCase(
	couponRepo coupon.CouponRepository,
	txManager shared.TransactionManager,
	clock shared.Clock,
	logger zerolog.Logger,
) RedeemCouponUseCase {
	return &RedeemCouponUseCaseImpl{
		couponRepo: couponRepo,
		txManager:  txManager,
		clock:      clock,
		logger:     logger,
	}
}

// Execute 核銷優惠券
//
// 業務流程（在事務中）：
// 1. 載入優惠券並以聚合方法核銷（業務規則驗證 + 折扣計算）
// 2. Repository.MarkUsed 條件式 UPDATE 落實轉換；
//    受影響列數為 0 表示輸掉競態（已被併發核銷或清掃）
func (uc *RedeemCouponUseCaseImpl) Execute(cmd RedeemCouponCommand) (*RedeemCouponResult, error) {
	memberID, err := member.MemberIDFromString(cmd.MemberID)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(cmd.Code)
	if code == "" {
		return nil, coupon.ErrInvalidCode.WithContext("reason", "code cannot be empty")
	}
	orderRef := strings.TrimSpace(cmd.OrderRef)
	if orderRef == "" {
		return nil, coupon.ErrInvalidCode.WithContext("reason", "orderRef cannot be empty")
	}

	now := uc.clock()
	var result *RedeemCouponResult

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		c, err := uc.couponRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, coupon.ErrCouponNotFound) {
				result = rejectedResult(err)
				return nil
			}
			return err
		}

		// 擁有者 / 狀態 / 到期檢查先於門檻檢查，
		// 與 ValidateCouponUseCase 的判定順序一致
		if err := c.Redeem(memberID, orderRef, now); err != nil {
			result = rejectedResult(err)
			return nil
		}

		discount, err := c.Terms().DiscountFor(cmd.Subtotal)
		if err != nil {
			if errors.Is(err, coupon.ErrBelowMinOrder) {
				result = rejectedResult(err)
				return nil
			}
			return err
		}

		updated, err := uc.couponRepo.MarkUsed(ctx, c.CouponID(), orderRef, now)
		if err != nil {
			return err
		}
		if !updated {
			// 輸掉競態：讀取後被併發核銷或清掃轉換了狀態
			result = rejectedResult(coupon.ErrCouponAlreadyUsed)
			return nil
		}

		uc.logger.Info().
			Str("code", code).
			Str("member_id", memberID.String()).
			Str("order_ref", orderRef).
			Str("discount", discount.Amount.String()).
			Msg("優惠券已核銷")

		result = &RedeemCouponResult{
			Redeemed:       true,
			DiscountAmount: discount.Amount,
			FreeShipping:   discount.FreeShipping,
			UsedAt:         now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// rejectedResult 以 DomainError 代碼組裝被拒絕的核銷結果
func rejectedResult(err error) *RedeemCouponResult {
	reason := ""
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		reason = string(domainErr.Code)
	}
	return &RedeemCouponResult{Redeemed: false, Reason: reason}
}
