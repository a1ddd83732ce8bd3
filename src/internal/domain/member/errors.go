package member

import "github.com/jackyeh168/lucky_spin/src/internal/domain/shared"

// ===========================
// Member Domain 錯誤定義
// ===========================

// Member Domain 錯誤代碼常量
const (
	ErrCodeInvalidMemberID    shared.ErrorCode = "MEMBER_ID_INVALID"
	ErrCodeInvalidDisplayName shared.ErrorCode = "MEMBER_DISPLAY_NAME_INVALID"
	ErrCodeInvalidTier        shared.ErrorCode = "MEMBER_TIER_INVALID"
	ErrCodeNegativePoints     shared.ErrorCode = "POINTS_NEGATIVE"
	ErrCodeInsufficientPoints shared.ErrorCode = "POINTS_INSUFFICIENT"
	ErrCodeMemberNotFound     shared.ErrorCode = "MEMBER_NOT_FOUND"
	ErrCodeMemberExists       shared.ErrorCode = "MEMBER_ALREADY_EXISTS"
	ErrCodeCorruptedPoints    shared.ErrorCode = "POINTS_CORRUPTED"
	ErrCodeRepositoryError    shared.ErrorCode = "MEMBER_REPOSITORY_ERROR"
)

// 預定義錯誤
var (
	ErrInvalidMemberID = shared.NewDomainError(ErrCodeInvalidMemberID, "無效的會員 ID")

	ErrInvalidDisplayName = shared.NewDomainError(ErrCodeInvalidDisplayName, "會員顯示名稱不能為空")

	ErrInvalidTier = shared.NewDomainError(ErrCodeInvalidTier, "無效的會員等級")

	ErrNegativePoints = shared.NewDomainError(ErrCodeNegativePoints, "積分數量不能為負數")

	// ErrInsufficientPoints 積分餘額不足
	// 對應使用者可見的「積分不足」拒絕：可透過賺取積分恢復
	ErrInsufficientPoints = shared.NewDomainError(ErrCodeInsufficientPoints, "積分餘額不足")

	ErrMemberNotFound = shared.NewDomainError(ErrCodeMemberNotFound, "會員不存在")

	ErrMemberAlreadyExists = shared.NewDomainError(ErrCodeMemberExists, "會員已存在")

	// ErrCorruptedPoints 資料庫中的積分數據違反不變條件（used > earned 或負數）
	ErrCorruptedPoints = shared.NewDomainError(ErrCodeCorruptedPoints, "積分數據損壞")

	ErrRepositoryError = shared.NewDomainError(ErrCodeRepositoryError, "會員倉儲操作失敗")
)
