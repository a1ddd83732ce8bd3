package spin

import (
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/spin"
)

// ===========================
// GORM Models
// ===========================

// SpinRecordGORM 抽獎記錄資料表模型（append-only）
//
// 資料庫約束：
// - (member_id, program_id, kind, spin_date) 複合索引：配額計數的熱查詢鍵
// - coupon_id 可為空（銘謝惠顧結果不鑄造優惠券）
// - 永不 UPDATE / DELETE
type SpinRecordGORM struct {
	SpinID    string `gorm:"column:spin_id;type:varchar(36);primaryKey"`
	MemberID  string `gorm:"column:member_id;type:varchar(36);not null;index:idx_spin_quota,priority:1"`
	ProgramID string `gorm:"column:program_id;type:varchar(36);not null;index:idx_spin_quota,priority:2"`
	RewardID  string `gorm:"column:reward_id;type:varchar(36);not null"`

	CouponID *string `gorm:"column:coupon_id;type:varchar(36)"`

	Kind        string `gorm:"column:kind;type:varchar(24);not null;index:idx_spin_quota,priority:3"`
	PointsSpent int    `gorm:"column:points_spent;not null;default:0"`
	SpinDate    string `gorm:"column:spin_date;type:varchar(10);not null;index:idx_spin_quota,priority:4"`

	CreatedAt time.Time `gorm:"column:created_at;not null;index"`
}

// TableName 指定資料表名稱
func (SpinRecordGORM) TableName() string {
	return "spin_records"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *SpinRecordGORM) toDomain() (*spin.SpinRecord, error) {
	spinID, err := spin.SpinIDFromString(m.SpinID)
	if err != nil {
		return nil, err
	}
	memberID, err := member.MemberIDFromString(m.MemberID)
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

	var couponID coupon.CouponID
	if m.CouponID != nil {
		couponID, err = coupon.CouponIDFromString(*m.CouponID)
		if err != nil {
			return nil, err
		}
	}

	return spin.ReconstructSpinRecord(
		spinID,
		memberID,
		programID,
		rewardID,
		couponID,
		spin.SpinKind(m.Kind),
		m.PointsSpent,
		m.SpinDate,
		m.CreatedAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(r *spin.SpinRecord) *SpinRecordGORM {
	var couponID *string
	if !r.CouponID().IsEmpty() {
		id := r.CouponID().String()
		couponID = &id
	}

	return &SpinRecordGORM{
		SpinID:      r.SpinID().String(),
		MemberID:    r.MemberID().String(),
		ProgramID:   r.ProgramID().String(),
		RewardID:    r.RewardID().String(),
		CouponID:    couponID,
		Kind:        string(r.Kind()),
		PointsSpent: r.PointsSpent(),
		SpinDate:    r.SpinDate(),
		CreatedAt:   r.CreatedAt(),
	}
}
