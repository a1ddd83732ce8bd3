package promotion

import (
	"errors"
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// ProgramRepositoryImpl
// ===========================

// ProgramRepositoryImpl 活動倉儲實現（GORM）
type ProgramRepositoryImpl struct {
	db *gorm.DB
}

// NewProgramRepository 創建新的活動倉儲實例
func NewProgramRepository(db *gorm.DB) promotion.ProgramRepository {
	return &ProgramRepositoryImpl{db: db}
}

// Save 保存新活動
func (r *ProgramRepositoryImpl) Save(ctx shared.TransactionContext, program *promotion.Program) error {
	db := getDB(ctx, r.db)
	return db.Create(programToGORM(program)).Error
}

// FindByID 根據活動 ID 查找
func (r *ProgramRepositoryImpl) FindByID(ctx shared.TransactionContext, programID promotion.ProgramID) (*promotion.Program, error) {
	db := getDB(ctx, r.db)

	var gormModel ProgramGORM
	result := db.Where("program_id = ?", programID.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, promotion.ErrProgramNotFound.WithContext(
				"program_id", programID.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// FindRunning 查找指定時刻進行中的活動
//
// 業務規則：active 為真且 start_at <= now < end_at；
// 查詢時刻最多一個進行中的活動（由管理端保證），
// 防禦起見取 start_at 最晚的一個
func (r *ProgramRepositoryImpl) FindRunning(ctx shared.TransactionContext, now time.Time) (*promotion.Program, error) {
	db := getDB(ctx, r.db)

	var gormModel ProgramGORM
	result := db.
		Where("active = ? AND start_at <= ? AND end_at > ?", true, now, now).
		Order("start_at DESC").
		First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, promotion.ErrProgramUnavailable
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// Update 更新活動設定
func (r *ProgramRepositoryImpl) Update(ctx shared.TransactionContext, program *promotion.Program) error {
	db := getDB(ctx, r.db)

	// Select 指定全部欄位：布林 Active 為 false 時也要寫回
	result := db.Model(&ProgramGORM{}).
		Where("program_id = ?", program.ProgramID().String()).
		Select("name", "active", "start_at", "end_at", "daily_free_spins", "points_per_spin", "updated_at").
		Updates(programToGORM(program))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return promotion.ErrProgramNotFound.WithContext(
			"program_id", program.ProgramID().String(),
		)
	}

	return nil
}

// getDB 獲取資料庫實例（可選事務參與模式）
func getDB(ctx shared.TransactionContext, fallback *gorm.DB) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return fallback
}
