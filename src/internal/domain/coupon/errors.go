package coupon

import "github.com/jackyeh168/lucky_spin/src/internal/domain/shared"

// ===========================
// Coupon Domain 錯誤定義
// ===========================

// Coupon Domain 錯誤代碼常量
const (
	ErrCodeInvalidCouponID   shared.ErrorCode = "COUPON_ID_INVALID"
	ErrCodeInvalidTerms      shared.ErrorCode = "COUPON_TERMS_INVALID"
	ErrCodeInvalidCode       shared.ErrorCode = "COUPON_CODE_INVALID"
	ErrCodeInvalidStatus     shared.ErrorCode = "COUPON_STATUS_INVALID"
	ErrCodeCouponNotFound    shared.ErrorCode = "COUPON_NOT_FOUND"
	ErrCodeCouponNotOwned    shared.ErrorCode = "COUPON_NOT_OWNED"
	ErrCodeCouponUsed        shared.ErrorCode = "COUPON_ALREADY_USED"
	ErrCodeCouponExpired     shared.ErrorCode = "COUPON_EXPIRED"
	ErrCodeBelowMinOrder     shared.ErrorCode = "COUPON_BELOW_MIN_ORDER"
	ErrCodeCodeExists        shared.ErrorCode = "COUPON_CODE_EXISTS"
	ErrCodePoolSaturatedCode shared.ErrorCode = "COUPON_CODE_POOL_SATURATED"
	ErrCodeRepositoryError   shared.ErrorCode = "COUPON_REPOSITORY_ERROR"
)

// 預定義錯誤
//
// 驗證失敗的錯誤（NotFound / NotOwned / Used / Expired / BelowMinOrder）
// 都對應一個具體、使用者可讀的理由，結帳流程據此重新提示，
// 永不以籠統的「無效」帶過
var (
	ErrInvalidCouponID = shared.NewDomainError(ErrCodeInvalidCouponID, "無效的優惠券 ID")

	ErrInvalidTerms = shared.NewDomainError(ErrCodeInvalidTerms, "無效的折扣條款")

	ErrInvalidCode = shared.NewDomainError(ErrCodeInvalidCode, "無效的優惠券代碼")

	ErrInvalidStatus = shared.NewDomainError(ErrCodeInvalidStatus, "無效的優惠券狀態")

	ErrCouponNotFound = shared.NewDomainError(ErrCodeCouponNotFound, "優惠券不存在")

	ErrCouponNotOwned = shared.NewDomainError(ErrCodeCouponNotOwned, "優惠券不屬於此會員")

	ErrCouponAlreadyUsed = shared.NewDomainError(ErrCodeCouponUsed, "優惠券已使用")

	ErrCouponExpired = shared.NewDomainError(ErrCodeCouponExpired, "優惠券已過期")

	ErrBelowMinOrder = shared.NewDomainError(ErrCodeBelowMinOrder, "訂單金額未達優惠券使用門檻")

	ErrCodeAlreadyExists = shared.NewDomainError(ErrCodeCodeExists, "優惠券代碼已存在")

	// ErrCodePoolSaturated 代碼生成重試次數用盡
	// 可用性風險防線：代碼空間飽和時快速失敗，而非無界重試
	ErrCodePoolSaturated = shared.NewDomainError(ErrCodePoolSaturatedCode, "優惠券代碼生成重試次數用盡")

	ErrRepositoryError = shared.NewDomainError(ErrCodeRepositoryError, "優惠券倉儲操作失敗")
)
