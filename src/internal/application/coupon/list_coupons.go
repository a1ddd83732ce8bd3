package coupon

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
)

// ===========================
// UC-202: ListMyCoupons Use Case
// ===========================

// ListMyCouponsQuery 查詢持有優惠券（Input DTO）
type ListMyCouponsQuery struct {
	MemberID   string
	OnlyActive bool
}

// CouponItem 優惠券列表項目
type CouponItem struct {
	CouponID       string
	Code           string
	Kind           string
	Value          decimal.Decimal
	MaxDiscount    *decimal.Decimal
	MinOrderAmount *decimal.Decimal
	Status         string
	IssuedAt       time.Time
	ExpiresAt      time.Time
	OrderRef       string
	UsedAt         *time.Time
}

// ListMyCouponsResult 持有優惠券列表（Output DTO，新到舊）
type ListMyCouponsResult struct {
	Items []CouponItem
}

// ListMyCouponsUseCase 查詢持有優惠券 Use Case 接口
type ListMyCouponsUseCase interface {
	Execute(query ListMyCouponsQuery) (*ListMyCouponsResult, error)
}

// ListMyCouponsUseCaseImpl 查詢持有優惠券 Use Case 實作
type ListMyCouponsUseCaseImpl struct {
	couponRepo coupon.CouponRepository
}

// NewListMyCouponsUseCase 創建 ListMyCouponsUseCase 實例
func NewListMyCouponsUseCase(couponRepo coupon.CouponRepository) ListMyCouponsUseCase {
	return &ListMyCouponsUseCaseImpl{couponRepo: couponRepo}
}

// Execute 查詢持有優惠券
func (uc *ListMyCouponsUseCaseImpl) Execute(query ListMyCouponsQuery) (*ListMyCouponsResult, error) {
	memberID, err := member.MemberIDFromString(query.MemberID)
	if err != nil {
		return nil, err
	}

	coupons, err := uc.couponRepo.ListByOwner(nil, memberID, query.OnlyActive)
	if err != nil {
		return nil, err
	}

	items := make([]CouponItem, len(coupons))
	for i, c := range coupons {
		items[i] = CouponItem{
			CouponID:       c.CouponID().String(),
			Code:           c.Code(),
			Kind:           string(c.Terms().Kind()),
			Value:          c.Terms().Value(),
			MaxDiscount:    c.Terms().MaxDiscount(),
			MinOrderAmount: c.Terms().MinOrderAmount(),
			Status:         string(c.Status()),
			IssuedAt:       c.IssuedAt(),
			ExpiresAt:      c.ExpiresAt(),
			OrderRef:       c.OrderRef(),
			UsedAt:         c.UsedAt(),
		}
	}

	return &ListMyCouponsResult{Items: items}, nil
}

// ===========================
// UC-203: CountActiveCoupons Use Case
// ===========================

// CountActiveCouponsQuery 計數持有的 ACTIVE 優惠券（Input DTO）
type CountActiveCouponsQuery struct {
	MemberID string
}

// CountActiveCouponsResult 計數結果（Output DTO）
type CountActiveCouponsResult struct {
	Count int
}

// CountActiveCouponsUseCase 計數 ACTIVE 優惠券 Use Case 接口
//
// 使用場景：結帳頁面的「可用優惠券」徽章
type CountActiveCouponsUseCase interface {
	Execute(query CountActiveCouponsQuery) (*CountActiveCouponsResult, error)
}

// CountActiveCouponsUseCaseImpl 計數 ACTIVE 優惠券 Use Case 實作
type CountActiveCouponsUseCaseImpl struct {
	couponRepo coupon.CouponRepository
}

// NewCountActiveCouponsUseCase 創建 CountActiveCouponsUseCase 實例
func NewCountActiveCouponsUseCase(couponRepo coupon.CouponRepository) CountActiveCouponsUseCase {
	return &CountActiveCouponsUseCaseImpl{couponRepo: couponRepo}
}

// Execute 計數 ACTIVE 優惠券
func (uc *CountActiveCouponsUseCaseImpl) Execute(query CountActiveCouponsQuery) (*CountActiveCouponsResult, error) {
	memberID, err := member.MemberIDFromString(query.MemberID)
	if err != nil {
		return nil, err
	}

	count, err := uc.couponRepo.CountActive(nil, memberID)
	if err != nil {
		return nil, err
	}

	return &CountActiveCouponsResult{Count: count}, nil
}
