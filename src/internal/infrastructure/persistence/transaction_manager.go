package persistence

import (
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager 實作
// ===========================

// GORMTransactionManager GORM 事務管理器
//
// 實作 shared.TransactionManager 契約：
// - fn 返回 nil：提交事務
// - fn 返回 error：回滾事務，原樣返回該 error
// - fn panic：回滾事務後重新拋出
//
// 這是抽獎原子單元的基石：配額檢查 / 積分扣減、轉盤抽取、
// 優惠券鑄造、抽獎記錄寫入在同一個 fn 中執行，
// 任一步驟失敗則全部回滾
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建 GORM 事務管理器
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在事務中執行 fn
func (tm *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	tx := tm.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(NewGORMTransactionContext(tx)); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
