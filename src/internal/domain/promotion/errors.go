package promotion

import "github.com/jackyeh168/lucky_spin/src/internal/domain/shared"

// ===========================
// Promotion Domain 錯誤定義
// ===========================

// Promotion Domain 錯誤代碼常量
const (
	ErrCodeInvalidProgramID     shared.ErrorCode = "PROGRAM_ID_INVALID"
	ErrCodeInvalidRewardID      shared.ErrorCode = "REWARD_ID_INVALID"
	ErrCodeInvalidProgramConfig shared.ErrorCode = "PROGRAM_CONFIG_INVALID"
	ErrCodeInvalidRewardConfig  shared.ErrorCode = "REWARD_CONFIG_INVALID"
	ErrCodeProgramUnavailable   shared.ErrorCode = "PROGRAM_UNAVAILABLE"
	ErrCodeProgramNotFound      shared.ErrorCode = "PROGRAM_NOT_FOUND"
	ErrCodeRewardNotFound       shared.ErrorCode = "REWARD_NOT_FOUND"
	ErrCodeEmptyRewardSet       shared.ErrorCode = "REWARD_SET_EMPTY"
	ErrCodeRepositoryError      shared.ErrorCode = "PROMOTION_REPOSITORY_ERROR"
)

// 預定義錯誤
var (
	ErrInvalidProgramID = shared.NewDomainError(ErrCodeInvalidProgramID, "無效的活動 ID")

	ErrInvalidRewardID = shared.NewDomainError(ErrCodeInvalidRewardID, "無效的獎項 ID")

	ErrInvalidProgramConfig = shared.NewDomainError(ErrCodeInvalidProgramConfig, "無效的活動設定")

	ErrInvalidRewardConfig = shared.NewDomainError(ErrCodeInvalidRewardConfig, "無效的獎項設定")

	// ErrProgramUnavailable 目前沒有進行中的活動（或活動沒有任何啟用獎項）
	// fail closed：對使用者呈現「活動未開放」，不是例外
	ErrProgramUnavailable = shared.NewDomainError(ErrCodeProgramUnavailable, "抽獎活動目前未開放")

	ErrProgramNotFound = shared.NewDomainError(ErrCodeProgramNotFound, "抽獎活動不存在")

	ErrRewardNotFound = shared.NewDomainError(ErrCodeRewardNotFound, "獎項不存在")

	// ErrEmptyRewardSet 轉盤抽取收到空獎項集合（程式錯誤，正常流程 fail closed 在此之前）
	ErrEmptyRewardSet = shared.NewDomainError(ErrCodeEmptyRewardSet, "獎項集合為空")

	ErrRepositoryError = shared.NewDomainError(ErrCodeRepositoryError, "活動倉儲操作失敗")
)
