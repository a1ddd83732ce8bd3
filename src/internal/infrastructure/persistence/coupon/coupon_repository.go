package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
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
// CouponRepositoryImpl
// ===========================

// CouponRepositoryImpl 優惠券倉儲實現（GORM）
//
// 併發契約的落實點：MarkUsed / MarkExpired / ExpireDue 全部是
// 條件式 UPDATE（WHERE status = 'ACTIVE'），以受影響列數判斷
// 轉換是否發生，即使在不支援 SELECT FOR UPDATE 的資料庫上
// 也保證「恰好一個贏家」
type CouponRepositoryImpl struct {
	db *gorm.DB
}

// NewCouponRepository 創建新的優惠券倉儲實例
func NewCouponRepository(db *gorm.DB) coupon.CouponRepository {
	return &CouponRepositoryImpl{db: db}
}

// Save 保存新優惠券
//
// 錯誤處理：
// - code 唯一索引衝突 → ErrCodeAlreadyExists（調用者重新生成代碼）
// - 其他資料庫錯誤 → 原始錯誤
func (r *CouponRepositoryImpl) Save(ctx shared.TransactionContext, c *coupon.Coupon) error {
	db := r.getDB(ctx)

	result := db.Create(toGORM(c))
	if result.Error != nil {
		if isUniqueConstraintError(result.Error) {
			return coupon.ErrCodeAlreadyExists.WithContext("code", c.Code())
		}
		return result.Error
	}

	return nil
}

// FindByCode 根據代碼查找優惠券
func (r *CouponRepositoryImpl) FindByCode(ctx shared.TransactionContext, code string) (*coupon.Coupon, error) {
	db := r.getDB(ctx)

	var gormModel CouponGORM
	result := db.Where("code = ?", code).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, coupon.ErrCouponNotFound.WithContext("code", code)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// ListByOwner 查詢會員持有的優惠券（新到舊）
func (r *CouponRepositoryImpl) ListByOwner(ctx shared.TransactionContext, ownerID member.MemberID, onlyActive bool) ([]*coupon.Coupon, error) {
	db := r.getDB(ctx)

	query := db.
		Where("owner_id = ?", ownerID.String()).
		Order("issued_at DESC")
	if onlyActive {
		query = query.Where("status = ?", string(coupon.StatusActive))
	}

	var gormModels []CouponGORM
	if err := query.Find(&gormModels).Error; err != nil {
		return nil, err
	}

	coupons := make([]*coupon.Coupon, len(gormModels))
	for i := range gormModels {
		c, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		coupons[i] = c
	}

	return coupons, nil
}

// CountActive 計算會員持有的 ACTIVE 優惠券數量
func (r *CouponRepositoryImpl) CountActive(ctx shared.TransactionContext, ownerID member.MemberID) (int, error) {
	db := r.getDB(ctx)

	var count int64
	result := db.Model(&CouponGORM{}).
		Where("owner_id = ? AND status = ?", ownerID.String(), string(coupon.StatusActive)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

// MarkUsed 條件式核銷：status ACTIVE → USED，綁定訂單引用
//
// 兩個併發核銷同一張券的請求，恰好一個觀察到 updated = true
func (r *CouponRepositoryImpl) MarkUsed(ctx shared.TransactionContext, couponID coupon.CouponID, orderRef string, usedAt time.Time) (bool, error) {
	db := r.getDB(ctx)

	result := db.Model(&CouponGORM{}).
		Where("coupon_id = ? AND status = ?", couponID.String(), string(coupon.StatusActive)).
		Updates(map[string]interface{}{
			"status":    string(coupon.StatusUsed),
			"order_ref": orderRef,
			"used_at":   usedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// MarkExpired 條件式過期：status ACTIVE → EXPIRED
func (r *CouponRepositoryImpl) MarkExpired(ctx shared.TransactionContext, couponID coupon.CouponID) (bool, error) {
	db := r.getDB(ctx)

	result := db.Model(&CouponGORM{}).
		Where("coupon_id = ? AND status = ?", couponID.String(), string(coupon.StatusActive)).
		UpdateColumn("status", string(coupon.StatusExpired))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// ExpireDue 批次清掃：所有到期時間已過且仍為 ACTIVE 的券轉為 EXPIRED
//
// 冪等：第二次執行掃不到任何 ACTIVE 到期券，返回 0
func (r *CouponRepositoryImpl) ExpireDue(ctx shared.TransactionContext, now time.Time) (int64, error) {
	db := r.getDB(ctx)

	result := db.Model(&CouponGORM{}).
		Where("status = ? AND expires_at < ?", string(coupon.StatusActive), now).
		UpdateColumn("status", string(coupon.StatusExpired))
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// getDB 獲取資料庫實例（可選事務參與模式）
func (r *CouponRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

// ===========================
// Helper Functions
// ===========================

// isUniqueConstraintError 檢查是否為唯一約束錯誤
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}
