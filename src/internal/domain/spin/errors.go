package spin

import "github.com/jackyeh168/lucky_spin/src/internal/domain/shared"

// ===========================
// Spin Domain 錯誤定義
// ===========================

// Spin Domain 錯誤代碼常量
const (
	ErrCodeInvalidSpinID   shared.ErrorCode = "SPIN_ID_INVALID"
	ErrCodeInvalidSpinKind shared.ErrorCode = "SPIN_KIND_INVALID"
	ErrCodeInvalidRecord   shared.ErrorCode = "SPIN_RECORD_INVALID"
	ErrCodeQuotaExceeded   shared.ErrorCode = "SPIN_QUOTA_EXCEEDED"
	ErrCodeRepositoryError shared.ErrorCode = "SPIN_REPOSITORY_ERROR"
)

// 預定義錯誤
var (
	ErrInvalidSpinID = shared.NewDomainError(ErrCodeInvalidSpinID, "無效的抽獎記錄 ID")

	ErrInvalidSpinKind = shared.NewDomainError(ErrCodeInvalidSpinKind, "無效的抽獎種類")

	ErrInvalidRecord = shared.NewDomainError(ErrCodeInvalidRecord, "無效的抽獎記錄")

	// ErrQuotaExceeded 當日免費抽獎配額已用盡
	// 可恢復：等到隔日、或改用積分兌換抽獎
	ErrQuotaExceeded = shared.NewDomainError(ErrCodeQuotaExceeded, "今日免費抽獎次數已用完")

	ErrRepositoryError = shared.NewDomainError(ErrCodeRepositoryError, "抽獎記錄倉儲操作失敗")
)
