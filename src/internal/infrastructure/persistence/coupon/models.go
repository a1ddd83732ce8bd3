package coupon

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
)

// ===========================
// GORM Models
// ===========================

// CouponGORM 優惠券資料表模型
//
// 資料庫約束：
// - coupon_id: 主鍵（UUID）
// - code: 唯一索引（代碼唯一性的最終防線，碰撞由倉儲轉換為
//   ErrCodeAlreadyExists 交調用者重新生成）
// - (status, expires_at) 索引：過期清掃的掃描鍵
// - 折扣條款在鑄造當下複製進來，與獎項設定解耦
type CouponGORM struct {
	CouponID string `gorm:"column:coupon_id;type:varchar(36);primaryKey"`
	Code     string `gorm:"column:code;type:varchar(16);uniqueIndex;not null"`

	OwnerID   string `gorm:"column:owner_id;type:varchar(36);not null;index"`
	ProgramID string `gorm:"column:program_id;type:varchar(36);not null"`
	RewardID  string `gorm:"column:reward_id;type:varchar(36);not null"`

	Kind           string           `gorm:"column:kind;type:varchar(16);not null"`
	Value          decimal.Decimal  `gorm:"column:value;type:decimal(12,2);not null"`
	MaxDiscount    *decimal.Decimal `gorm:"column:max_discount;type:decimal(12,2)"`
	MinOrderAmount *decimal.Decimal `gorm:"column:min_order_amount;type:decimal(12,2)"`

	IssuedAt  time.Time `gorm:"column:issued_at;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index:idx_coupon_sweep,priority:2"`
	Status    string    `gorm:"column:status;type:varchar(10);not null;index:idx_coupon_sweep,priority:1"`

	OrderRef string     `gorm:"column:order_ref;type:varchar(64);not null;default:''"`
	UsedAt   *time.Time `gorm:"column:used_at"`
}

// TableName 指定資料表名稱
func (CouponGORM) TableName() string {
	return "coupons"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *CouponGORM) toDomain() (*coupon.Coupon, error) {
	couponID, err := coupon.CouponIDFromString(m.CouponID)
	if err != nil {
		return nil, err
	}
	ownerID, err := member.MemberIDFromString(m.OwnerID)
	if err != nil {
		return nil, err
	}
	programID, err := promotion.ProgramIDFromString(m.ProgramID)
	if err != nil {
		return nil, err
	}
	rewardID, err := promotion.RewardIDFromString(m.RewardID)
	if err != nil {
		return nil, err
	}

	terms, err := coupon.NewDiscountTerms(
		coupon.DiscountKind(m.Kind),
		m.Value,
		m.MaxDiscount, m.MinOrderAmount,
	)
	if err != nil {
		return nil, err
	}

	return coupon.ReconstructCoupon(
		couponID,
		m.Code,
		ownerID,
		programID,
		rewardID,
		terms,
		m.IssuedAt, m.ExpiresAt,
		coupon.Status(m.Status),
		m.OrderRef,
		m.UsedAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(c *coupon.Coupon) *CouponGORM {
	return &CouponGORM{
		CouponID:       c.CouponID().String(),
		Code:           c.Code(),
		OwnerID:        c.OwnerID().String(),
		ProgramID:      c.ProgramID().String(),
		RewardID:       c.RewardID().String(),
		Kind:           string(c.Terms().Kind()),
		Value:          c.Terms().Value(),
		MaxDiscount:    c.Terms().MaxDiscount(),
		MinOrderAmount: c.Terms().MinOrderAmount(),
		IssuedAt:       c.IssuedAt(),
		ExpiresAt:      c.ExpiresAt(),
		Status:         string(c.Status()),
		OrderRef:       c.OrderRef(),
		UsedAt:         c.UsedAt(),
	}
}
