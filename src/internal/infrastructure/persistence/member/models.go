package member

import (
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
)

// ===========================
// GORM Models
// ===========================

// MemberGORM 會員資料表模型
//
// 設計原則：
// - 僅用於 Infrastructure Layer（不暴露給 Domain Layer）
// - 使用 GORM 標籤定義資料庫結構
// - 與 Domain Member 聚合分離（Mapper 轉換）
//
// 資料庫約束：
// - member_id: 主鍵（UUID）
// - earned_points / used_points: 積分帳本（used <= earned 由
//   Domain 不變條件與 DebitPoints 的條件式 UPDATE 共同保證）
type MemberGORM struct {
	MemberID    string `gorm:"column:member_id;type:varchar(36);primaryKey"`
	DisplayName string `gorm:"column:display_name;type:varchar(255);not null"`
	Tier        string `gorm:"column:tier;type:varchar(16);not null"`

	EarnedPoints int `gorm:"column:earned_points;not null;default:0"`
	UsedPoints   int `gorm:"column:used_points;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (MemberGORM) TableName() string {
	return "members"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *MemberGORM) toDomain() (*member.Member, error) {
	memberID, err := member.MemberIDFromString(m.MemberID)
	if err != nil {
		return nil, err
	}

	tier, err := member.TierFromString(m.Tier)
	if err != nil {
		return nil, err
	}

	return member.ReconstructMember(
		memberID,
		m.DisplayName,
		tier,
		m.EarnedPoints,
		m.UsedPoints,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(m *member.Member) *MemberGORM {
	return &MemberGORM{
		MemberID:     m.MemberID().String(),
		DisplayName:  m.DisplayName(),
		Tier:         m.Tier().String(),
		EarnedPoints: m.EarnedPoints().Value(),
		UsedPoints:   m.UsedPoints().Value(),
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}
}
