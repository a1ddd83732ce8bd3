package spin

import (
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/spin"
	"gorm.io/gorm"
)

// gormTransactionContext GORM事務上下文（來自persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// SpinRecordRepositoryImpl
// ===========================

// SpinRecordRepositoryImpl 抽獎記錄倉儲實現（GORM，append-only）
//
// 併發契約：CountForDay 與 Append 必須在調用者的同一個事務中執行
// （由 Use Case 透過 TransactionManager 保證），
// 本倉儲只負責在傳入的事務上下文中操作
type SpinRecordRepositoryImpl struct {
	db *gorm.DB
}

// NewSpinRecordRepository 創建新的抽獎記錄倉儲實例
func NewSpinRecordRepository(db *gorm.DB) spin.SpinRecordRepository {
	return &SpinRecordRepositoryImpl{db: db}
}

// Append 寫入一筆抽獎記錄（不可變，永不更新或刪除）
func (r *SpinRecordRepositoryImpl) Append(ctx shared.TransactionContext, record *spin.SpinRecord) error {
	db := r.getDB(ctx)
	return db.Create(toGORM(record)).Error
}

// CountForDay 計算（會員、活動、種類、UTC 日）的抽獎次數
func (r *SpinRecordRepositoryImpl) CountForDay(
	ctx shared.TransactionContext,
	memberID member.MemberID,
	programID promotion.ProgramID,
	kind spin.SpinKind,
	date string,
) (int, error) {
	db := r.getDB(ctx)

	var count int64
	result := db.Model(&SpinRecordGORM{}).
		Where("member_id = ? AND program_id = ? AND kind = ? AND spin_date = ?",
			memberID.String(), programID.String(), string(kind), date).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

// CountAllForDay 計算（會員、活動、UTC 日）不分種類的總抽獎次數
func (r *SpinRecordRepositoryImpl) CountAllForDay(
	ctx shared.TransactionContext,
	memberID member.MemberID,
	programID promotion.ProgramID,
	date string,
) (int, error) {
	db := r.getDB(ctx)

	var count int64
	result := db.Model(&SpinRecordGORM{}).
		Where("member_id = ? AND program_id = ? AND spin_date = ?",
			memberID.String(), programID.String(), date).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

// ListByMember 查詢會員的抽獎歷史（新到舊，limit <= 0 表示不限制）
func (r *SpinRecordRepositoryImpl) ListByMember(ctx shared.TransactionContext, memberID member.MemberID, limit int) ([]*spin.SpinRecord, error) {
	db := r.getDB(ctx)

	query := db.
		Where("member_id = ?", memberID.String()).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var gormModels []SpinRecordGORM
	if err := query.Find(&gormModels).Error; err != nil {
		return nil, err
	}

	records := make([]*spin.SpinRecord, len(gormModels))
	for i := range gormModels {
		record, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	return records, nil
}

// getDB 獲取資料庫實例（可選事務參與模式）
func (r *SpinRecordRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}
