package member

import (
	"errors"
	"strings"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// MemberRepositoryImpl
// ===========================

// MemberRepositoryImpl 會員倉儲實現（GORM）
//
// 設計原則：
// - 實作 member.MemberRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 封裝所有資料庫操作細節
// - 將 GORM 錯誤轉換為 Domain 錯誤
type MemberRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberRepository 創建新的會員倉儲實例
func NewMemberRepository(db *gorm.DB) member.MemberRepository {
	return &MemberRepositoryImpl{db: db}
}

// Save 保存新會員
//
// 錯誤處理：
// - 主鍵衝突 → ErrMemberAlreadyExists
// - 其他資料庫錯誤 → 原始錯誤
func (r *MemberRepositoryImpl) Save(ctx shared.TransactionContext, m *member.Member) error {
	db := r.getDB(ctx)

	result := db.Create(toGORM(m))
	if result.Error != nil {
		if isUniqueConstraintError(result.Error) {
			return member.ErrMemberAlreadyExists.WithContext(
				"member_id", m.MemberID().String(),
			)
		}
		return result.Error
	}

	return nil
}

// FindByID 根據會員 ID 查找會員
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → member.ErrMemberNotFound
// - 其他資料庫錯誤 → 原始錯誤
func (r *MemberRepositoryImpl) FindByID(ctx shared.TransactionContext, memberID member.MemberID) (*member.Member, error) {
	db := r.getDB(ctx)

	var gormModel MemberGORM
	result := db.Where("member_id = ?", memberID.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound.WithContext(
				"member_id", memberID.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// Update 更新會員（整個聚合寫回）
func (r *MemberRepositoryImpl) Update(ctx shared.TransactionContext, m *member.Member) error {
	db := r.getDB(ctx)

	result := db.Model(&MemberGORM{}).
		Where("member_id = ?", m.MemberID().String()).
		Updates(toGORM(m))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound.WithContext(
			"member_id", m.MemberID().String(),
		)
	}

	return nil
}

// DebitPoints 條件式扣減積分（樂觀 CAS）
//
// 實作：單一條件式 UPDATE，只有可用餘額足夠時才命中：
//
//   UPDATE members SET used_points = used_points + ?
//   WHERE member_id = ? AND earned_points - used_points >= ?
//
// RowsAffected 為 0 表示條件不成立：再查一次區分
// 「會員不存在」與「餘額不足」。檢查與扣減是同一個原子操作，
// 兩個併發扣減不可能同時觀察到足夠餘額並雙雙命中
func (r *MemberRepositoryImpl) DebitPoints(ctx shared.TransactionContext, memberID member.MemberID, amount member.Points) error {
	db := r.getDB(ctx)

	result := db.Model(&MemberGORM{}).
		Where("member_id = ? AND earned_points - used_points >= ?", memberID.String(), amount.Value()).
		UpdateColumn("used_points", gorm.Expr("used_points + ?", amount.Value()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// 條件未命中：區分不存在與餘額不足
	var count int64
	if err := db.Model(&MemberGORM{}).Where("member_id = ?", memberID.String()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return member.ErrMemberNotFound.WithContext("member_id", memberID.String())
	}
	return member.ErrInsufficientPoints.WithContext(
		"member_id", memberID.String(),
		"amount", amount.Value(),
	)
}

// getDB 獲取資料庫實例
//
// 可選事務參與模式：
// - ctx 是 gormTransactionContext：返回事務中的 DB
// - 否則返回預設的 DB（auto-commit 模式）
func (r *MemberRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

// ===========================
// Helper Functions
// ===========================

// isUniqueConstraintError 檢查是否為唯一約束錯誤
//
// 支援的資料庫：
// - SQLite: "UNIQUE constraint failed"
// - PostgreSQL: "duplicate key value violates unique constraint"
// - MySQL: "Duplicate entry"
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}
