package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	appcoupon "github.com/jackyeh168/lucky_spin/src/internal/application/coupon"
)

// ===========================
// 優惠券 HTTP Handler
// ===========================

// --- Request / Response DTOs ---

type validateCouponRequest struct {
	Code     string          `json:"code"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type redeemCouponRequest struct {
	Code     string          `json:"code"`
	OrderRef string          `json:"order_ref"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type validateCouponResponse struct {
	Valid          bool            `json:"valid"`
	Reason         string          `json:"reason,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FreeShipping   bool            `json:"free_shipping"`
}

type redeemCouponResponse struct {
	Redeemed       bool            `json:"redeemed"`
	Reason         string          `json:"reason,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FreeShipping   bool            `json:"free_shipping"`
	UsedAt         *time.Time      `json:"used_at,omitempty"`
}

type couponItemResponse struct {
	CouponID       string           `json:"coupon_id"`
	Code           string           `json:"code"`
	Kind           string           `json:"kind"`
	Value          decimal.Decimal  `json:"value"`
	MaxDiscount    *decimal.Decimal `json:"max_discount,omitempty"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount,omitempty"`
	Status         string           `json:"status"`
	IssuedAt       time.Time        `json:"issued_at"`
	ExpiresAt      time.Time        `json:"expires_at"`
	OrderRef       string           `json:"order_ref,omitempty"`
	UsedAt         *time.Time       `json:"used_at,omitempty"`
}

type couponListResponse struct {
	Items []couponItemResponse `json:"items"`
}

type couponCountResponse struct {
	Count int `json:"count"`
}

// --- Handler ---

// CouponHandler 優惠券相關端點
type CouponHandler struct {
	validateCoupon appcoupon.ValidateCouponUseCase
	redeemCoupon   appcoupon.RedeemCouponUseCase
	listCoupons    appcoupon.ListMyCouponsUseCase
	countActive    appcoupon.CountActiveCouponsUseCase
	logger         zerolog.Logger
}

// NewCouponHandler 創建 CouponHandler
func NewCouponHandler(
	validateCoupon appcoupon.ValidateCouponUseCase,
	redeemCoupon appcoupon.RedeemCouponUseCase,
	listCoupons appcoupon.ListMyCouponsUseCase,
	countActive appcoupon.CountActiveCouponsUseCase,
	logger zerolog.Logger,
) *CouponHandler {
	return &CouponHandler{
		validateCoupon: validateCoupon,
		redeemCoupon:   redeemCoupon,
		listCoupons:    listCoupons,
		countActive:    countActive,
		logger:         logger,
	}
}

// List 處理 GET /coupons?active=true
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"

	result, err := h.listCoupons.Execute(appcoupon.ListMyCouponsQuery{
		MemberID:   memberIDFrom(r),
		OnlyActive: onlyActive,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := couponListResponse{Items: make([]couponItemResponse, 0, len(result.Items))}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, couponItemResponse{
			CouponID:       item.CouponID,
			Code:           item.Code,
			Kind:           item.Kind,
			Value:          item.Value,
			MaxDiscount:    item.MaxDiscount,
			MinOrderAmount: item.MinOrderAmount,
			Status:         item.Status,
			IssuedAt:       item.IssuedAt,
			ExpiresAt:      item.ExpiresAt,
			OrderRef:       item.OrderRef,
			UsedAt:         item.UsedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// CountActive 處理 GET /coupons/active/count
func (h *CouponHandler) CountActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.countActive.Execute(appcoupon.CountActiveCouponsQuery{
		MemberID: memberIDFrom(r),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, couponCountResponse{Count: result.Count})
}

// Validate 處理 POST /coupons/validate
//
// 業務上的無效（不存在、非本人、已用、過期、未達門檻）以 200 +
// valid=false + reason 返回，結帳協作方據此展示訊息；
// 只有請求本身或基礎設施問題才是錯誤狀態碼
func (h *CouponHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorPayload(w, http.StatusBadRequest, "BODY_INVALID", "無法解析請求內容")
		return
	}

	result, err := h.validateCoupon.Execute(appcoupon.ValidateCouponQuery{
		Code:     req.Code,
		MemberID: memberIDFrom(r),
		Subtotal: req.Subtotal,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, validateCouponResponse{
		Valid:          result.Valid,
		Reason:         result.Reason,
		DiscountAmount: result.DiscountAmount,
		FreeShipping:   result.FreeShipping,
	})
}

// Redeem 處理 POST /coupons/redeem
func (h *CouponHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorPayload(w, http.StatusBadRequest, "BODY_INVALID", "無法解析請求內容")
		return
	}

	result, err := h.redeemCoupon.Execute(appcoupon.RedeemCouponCommand{
		Code:     req.Code,
		MemberID: memberIDFrom(r),
		OrderRef: req.OrderRef,
		Subtotal: req.Subtotal,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := redeemCouponResponse{
		Redeemed:       result.Redeemed,
		Reason:         result.Reason,
		DiscountAmount: result.DiscountAmount,
		FreeShipping:   result.FreeShipping,
	}
	if result.Redeemed {
		usedAt := result.UsedAt
		resp.UsedAt = &usedAt
	}

	writeJSON(w, http.StatusOK, resp)
}
