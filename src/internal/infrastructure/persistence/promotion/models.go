package promotion

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
)

// ===========================
// GORM Models
// ===========================

// ProgramGORM 抽獎活動資料表模型
type ProgramGORM struct {
	ProgramID string `gorm:"column:program_id;type:varchar(36);primaryKey"`
	Name      string `gorm:"column:name;type:varchar(255);not null"`
	Active    bool   `gorm:"column:active;not null;default:false;index"`

	StartAt time.Time `gorm:"column:start_at;not null"`
	EndAt   time.Time `gorm:"column:end_at;not null"`

	DailyFreeSpins int `gorm:"column:daily_free_spins;not null;default:0"`
	PointsPerSpin  int `gorm:"column:points_per_spin;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (ProgramGORM) TableName() string {
	return "spin_programs"
}

// RewardGORM 獎項資料表模型
//
// 等級乘數使用固定欄位而非 JSON：等級集合固定（四級），
// 固定欄位可以在 SQL 層檢視與修正設定，避免 JSON 解析層
type RewardGORM struct {
	RewardID  string `gorm:"column:reward_id;type:varchar(36);primaryKey"`
	ProgramID string `gorm:"column:program_id;type:varchar(36);not null;index"`

	Name string `gorm:"column:name;type:varchar(255);not null"`
	Kind string `gorm:"column:kind;type:varchar(16);not null"`

	Value          decimal.Decimal  `gorm:"column:value;type:decimal(12,2);not null"`
	MaxDiscount    *decimal.Decimal `gorm:"column:max_discount;type:decimal(12,2)"`
	MinOrderAmount *decimal.Decimal `gorm:"column:min_order_amount;type:decimal(12,2)"`

	BaseProbability   float64 `gorm:"column:base_probability;not null;default:0"`
	MultiplierBronze  float64 `gorm:"column:multiplier_bronze;not null;default:1"`
	MultiplierSilver  float64 `gorm:"column:multiplier_silver;not null;default:1"`
	MultiplierGold    float64 `gorm:"column:multiplier_gold;not null;default:1"`
	MultiplierDiamond float64 `gorm:"column:multiplier_diamond;not null;default:1"`

	CouponValidDays int  `gorm:"column:coupon_valid_days;not null;default:0"`
	Active          bool `gorm:"column:active;not null;default:true;index"`
	DisplayOrder    int  `gorm:"column:display_order;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (RewardGORM) TableName() string {
	return "spin_rewards"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *ProgramGORM) toDomain() (*promotion.Program, error) {
	programID, err := promotion.ProgramIDFromString(m.ProgramID)
	if err != nil {
		return nil, err
	}

	return promotion.ReconstructProgram(
		programID,
		m.Name,
		m.Active,
		m.StartAt, m.EndAt,
		m.DailyFreeSpins, m.PointsPerSpin,
		m.CreatedAt, m.UpdatedAt,
	)
}

// programToGORM 將 Domain 模型轉換為 GORM 模型
func programToGORM(p *promotion.Program) *ProgramGORM {
	return &ProgramGORM{
		ProgramID:      p.ProgramID().String(),
		Name:           p.Name(),
		Active:         p.Active(),
		StartAt:        p.StartAt(),
		EndAt:          p.EndAt(),
		DailyFreeSpins: p.DailyFreeSpins(),
		PointsPerSpin:  p.PointsPerSpin(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *RewardGORM) toDomain() (*promotion.Reward, error) {
	rewardID, err := promotion.RewardIDFromString(m.RewardID)
	if err != nil {
		return nil, err
	}
	programID, err := promotion.ProgramIDFromString(m.ProgramID)
	if err != nil {
		return nil, err
	}

	multipliers := promotion.TierMultipliers{
		member.TierBronze:  m.MultiplierBronze,
		member.TierSilver:  m.MultiplierSilver,
		member.TierGold:    m.MultiplierGold,
		member.TierDiamond: m.MultiplierDiamond,
	}

	return promotion.ReconstructReward(
		rewardID,
		programID,
		m.Name,
		promotion.RewardKind(m.Kind),
		m.Value,
		m.MaxDiscount, m.MinOrderAmount,
		m.BaseProbability,
		multipliers,
		m.CouponValidDays,
		m.Active,
		m.DisplayOrder,
		m.CreatedAt, m.UpdatedAt,
	)
}

// rewardToGORM 將 Domain 模型轉換為 GORM 模型
func rewardToGORM(r *promotion.Reward) *RewardGORM {
	multipliers := r.Multipliers()
	return &RewardGORM{
		RewardID:          r.RewardID().String(),
		ProgramID:         r.ProgramID().String(),
		Name:              r.Name(),
		Kind:              string(r.Kind()),
		Value:             r.Value(),
		MaxDiscount:       r.MaxDiscount(),
		MinOrderAmount:    r.MinOrderAmount(),
		BaseProbability:   r.BaseProbability(),
		MultiplierBronze:  multipliers.For(member.TierBronze),
		MultiplierSilver:  multipliers.For(member.TierSilver),
		MultiplierGold:    multipliers.For(member.TierGold),
		MultiplierDiamond: multipliers.For(member.TierDiamond),
		CouponValidDays:   r.CouponValidDays(),
		Active:            r.Active(),
		DisplayOrder:      r.DisplayOrder(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}
