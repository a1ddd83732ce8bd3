package promotion

import (
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================

// ProgramMarker 活動 ID 標記類型
type ProgramMarker struct{}

// ProgramID 抽獎活動的唯一標識符
type ProgramID = shared.EntityID[ProgramMarker]

// NewProgramID 生成新的活動 ID（UUID v4）
func NewProgramID() ProgramID {
	return shared.NewEntityID[ProgramMarker]()
}

// ProgramIDFromString 從字串解析活動 ID
func ProgramIDFromString(s string) (ProgramID, error) {
	return shared.EntityIDFromString[ProgramMarker](s, ErrInvalidProgramID)
}

// RewardMarker 獎項 ID 標記類型
type RewardMarker struct{}

// RewardID 轉盤獎項的唯一標識符
type RewardID = shared.EntityID[RewardMarker]

// NewRewardID 生成新的獎項 ID（UUID v4）
func NewRewardID() RewardID {
	return shared.NewEntityID[RewardMarker]()
}

// RewardIDFromString 從字串解析獎項 ID
func RewardIDFromString(s string) (RewardID, error) {
	return shared.EntityIDFromString[RewardMarker](s, ErrInvalidRewardID)
}
