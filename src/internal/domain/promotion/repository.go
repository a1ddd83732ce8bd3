package promotion

import (
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// Promotion Repository 介面
// ===========================

// ProgramRepository 活動倉儲介面
//
// 讀取端是抽獎熱路徑：每次抽獎載入一份不可變快照。
// 寫入端屬於管理端，不在熱路徑上。
type ProgramRepository interface {
	// Save 保存新活動
	Save(ctx shared.TransactionContext, program *Program) error

	// FindByID 根據活動 ID 查找
	// 返回：找到的活動，或 ErrProgramNotFound
	FindByID(ctx shared.TransactionContext, programID ProgramID) (*Program, error)

	// FindRunning 查找指定時刻進行中的活動
	//
	// 業務規則：active 為真且 startAt <= now < endAt；
	// 查詢時刻最多一個進行中的活動（由管理端保證）
	// 返回：進行中的活動，或 ErrProgramUnavailable（fail closed）
	FindRunning(ctx shared.TransactionContext, now time.Time) (*Program, error)

	// Update 更新活動設定
	// 錯誤：ErrProgramNotFound（如果活動不存在）
	Update(ctx shared.TransactionContext, program *Program) error
}

// RewardRepository 獎項倉儲介面
type RewardRepository interface {
	// Save 保存新獎項
	Save(ctx shared.TransactionContext, reward *Reward) error

	// FindByID 根據獎項 ID 查找
	// 返回：找到的獎項，或 ErrRewardNotFound
	FindByID(ctx shared.TransactionContext, rewardID RewardID) (*Reward, error)

	// FindActiveByProgram 查找活動的啟用獎項集合
	//
	// 業務規則：只含 active 獎項，依 displayOrder 升冪排序（轉盤槽位順序）
	// 空集合不是錯誤：由調用者 fail closed（活動未開放）
	FindActiveByProgram(ctx shared.TransactionContext, programID ProgramID) ([]*Reward, error)

	// Update 更新獎項設定
	// 錯誤：ErrRewardNotFound（如果獎項不存在）
	Update(ctx shared.TransactionContext, reward *Reward) error
}
