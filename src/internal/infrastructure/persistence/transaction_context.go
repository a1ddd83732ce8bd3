package persistence

import (
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionContext 實作
// ===========================

// gormTransactionContext 包裝單次抽獎或核銷事務中的 *gorm.DB。
// shared.TransactionContext 是標記介面：Domain Layer 只負責傳遞，
// 不知道底下是 GORM；各 Repository 透過 GetDB 取回事務連接，
// 讓配額檢查、扣點、鑄券與記錄寫入落在同一個事務裡
type gormTransactionContext struct {
	db *gorm.DB
}

// NewGORMTransactionContext 包裝事務中的 GORM 連接
// 由 GORMTransactionManager 在 InTransaction 內部調用
func NewGORMTransactionContext(db *gorm.DB) shared.TransactionContext {
	return &gormTransactionContext{db: db}
}

// GetDB 取回事務中的 GORM 連接
// 不屬於 shared.TransactionContext 介面，僅 Infrastructure Layer
// 透過型別斷言使用，Domain Layer 因此接觸不到 GORM
func (ctx *gormTransactionContext) GetDB() *gorm.DB {
	return ctx.db
}
