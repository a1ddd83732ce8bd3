package promotion

import (
	"strings"
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/shopspring/decimal"
)

// ===========================
// RewardKind 獎項種類
// ===========================

// RewardKind 獎項種類
type RewardKind string

// 獎項種類常量
const (
	KindPercent      RewardKind = "PERCENT"       // 百分比折扣（value = 折扣 %）
	KindFixedAmount  RewardKind = "FIXED_AMOUNT"  // 固定金額折扣（value = 金額）
	KindFreeShipping RewardKind = "FREE_SHIPPING" // 免運費
	KindNoReward     RewardKind = "NO_REWARD"     // 銘謝惠顧（不鑄造優惠券）
)

// RewardKindFromString 從字串解析獎項種類
func RewardKindFromString(value string) (RewardKind, error) {
	switch RewardKind(value) {
	case KindPercent, KindFixedAmount, KindFreeShipping, KindNoReward:
		return RewardKind(value), nil
	default:
		return "", ErrInvalidRewardConfig.WithContext(
			"reason", "unknown reward kind",
			"kind", value,
		)
	}
}

// ===========================
// TierMultipliers 等級機率乘數
// ===========================

// TierMultipliers 每個會員等級一個機率乘數
//
// 業務規則：
// - 乘數 >= 0（0 表示該等級抽不到此獎項）
// - 未設定的等級視為 1.0（不調整）
type TierMultipliers map[member.Tier]float64

// UniformMultipliers 所有等級乘數為 1 的預設值
func UniformMultipliers() TierMultipliers {
	m := make(TierMultipliers, len(member.AllTiers()))
	for _, t := range member.AllTiers() {
		m[t] = 1.0
	}
	return m
}

// For 取出指定等級的乘數（未設定時為 1.0）
func (tm TierMultipliers) For(tier member.Tier) float64 {
	if tm == nil {
		return 1.0
	}
	if v, ok := tm[tier]; ok {
		return v
	}
	return 1.0
}

// validate 檢查所有乘數非負
func (tm TierMultipliers) validate() error {
	for tier, v := range tm {
		if v < 0 {
			return ErrInvalidRewardConfig.WithContext(
				"reason", "tier multiplier cannot be negative",
				"tier", tier.String(),
				"multiplier", v,
			)
		}
	}
	return nil
}

// ===========================
// Reward 實體
// ===========================

// Reward 轉盤上的一個獎項槽位，隸屬於唯一一個活動
//
// 屬性重點：
// - baseProbability: 基礎機率權重（>= 0，不要求總和為 1，抽取時正規化）
// - multipliers: 每等級機率乘數（實際權重 = base × multiplier[tier]）
// - couponValidDays: 中獎後鑄造的優惠券有效天數
// - 折扣條款（value / maxDiscount / minOrderAmount）在鑄造當下複製進優惠券，
//   之後編輯獎項不會回溯改變已發出的優惠券
//
// 不變條件：活動內啟用中的獎項集合（依 displayOrder 排序）非空；
// NO_REWARD 種類永不鑄造優惠券
type Reward struct {
	rewardID  RewardID
	programID ProgramID

	name            string
	kind            RewardKind
	value           decimal.Decimal
	maxDiscount     *decimal.Decimal
	minOrderAmount  *decimal.Decimal
	baseProbability float64
	multipliers     TierMultipliers
	couponValidDays int
	active          bool
	displayOrder    int

	createdAt time.Time
	updatedAt time.Time
}

// NewReward 創建新獎項
//
// 業務規則：
// - 名稱不能為空、種類必須有效
// - value >= 0、baseProbability >= 0、所有乘數 >= 0
// - 除 NO_REWARD 外 couponValidDays >= 1
func NewReward(
	programID ProgramID,
	name string,
	kind RewardKind,
	value decimal.Decimal,
	maxDiscount, minOrderAmount *decimal.Decimal,
	baseProbability float64,
	multipliers TierMultipliers,
	couponValidDays int,
	displayOrder int,
) (*Reward, error) {
	if programID.IsEmpty() {
		return nil, ErrInvalidProgramID.WithContext("reason", "reward requires a program")
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidRewardConfig.WithContext("reason", "name cannot be empty")
	}
	if _, err := RewardKindFromString(string(kind)); err != nil {
		return nil, err
	}
	if value.IsNegative() {
		return nil, ErrInvalidRewardConfig.WithContext(
			"reason", "value cannot be negative",
			"value", value.String(),
		)
	}
	if baseProbability < 0 {
		return nil, ErrInvalidRewardConfig.WithContext(
			"reason", "baseProbability cannot be negative",
			"base_probability", baseProbability,
		)
	}
	if multipliers == nil {
		multipliers = UniformMultipliers()
	}
	if err := multipliers.validate(); err != nil {
		return nil, err
	}
	if kind != KindNoReward && couponValidDays < 1 {
		return nil, ErrInvalidRewardConfig.WithContext(
			"reason", "couponValidDays must be at least 1",
			"coupon_valid_days", couponValidDays,
		)
	}

	now := time.Now()
	return &Reward{
		rewardID:        NewRewardID(),
		programID:       programID,
		name:            name,
		kind:            kind,
		value:           value,
		maxDiscount:     maxDiscount,
		minOrderAmount:  minOrderAmount,
		baseProbability: baseProbability,
		multipliers:     multipliers,
		couponValidDays: couponValidDays,
		active:          true,
		displayOrder:    displayOrder,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

// RewardID 獲取獎項 ID
func (r *Reward) RewardID() RewardID { return r.rewardID }

// ProgramID 獲取所屬活動 ID
func (r *Reward) ProgramID() ProgramID { return r.programID }

// Name 獲取顯示名稱
func (r *Reward) Name() string { return r.name }

// Kind 獲取獎項種類
func (r *Reward) Kind() RewardKind { return r.kind }

// Value 獲取折扣值（百分比或金額，依種類解讀）
func (r *Reward) Value() decimal.Decimal { return r.value }

// MaxDiscount 獲取折扣上限（nil 表示無上限）
func (r *Reward) MaxDiscount() *decimal.Decimal { return r.maxDiscount }

// MinOrderAmount 獲取最低訂單金額門檻（nil 表示無門檻）
func (r *Reward) MinOrderAmount() *decimal.Decimal { return r.minOrderAmount }

// BaseProbability 獲取基礎機率權重
func (r *Reward) BaseProbability() float64 { return r.baseProbability }

// Multipliers 獲取等級機率乘數
func (r *Reward) Multipliers() TierMultipliers { return r.multipliers }

// CouponValidDays 獲取優惠券有效天數
func (r *Reward) CouponValidDays() int { return r.couponValidDays }

// Active 獲取啟用旗標
func (r *Reward) Active() bool { return r.active }

// DisplayOrder 獲取轉盤顯示順序
func (r *Reward) DisplayOrder() int { return r.displayOrder }

// CreatedAt 獲取創建時間
func (r *Reward) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt 獲取最後更新時間
func (r *Reward) UpdatedAt() time.Time { return r.updatedAt }

// MintsCoupon 判斷中獎後是否鑄造優惠券
//
// 業務規則：NO_REWARD 永不鑄造
func (r *Reward) MintsCoupon() bool {
	return r.kind != KindNoReward
}

// EffectiveWeight 計算指定等級的實際權重
//
// actual = baseProbability × multiplier[tier]
func (r *Reward) EffectiveWeight(tier member.Tier) float64 {
	return r.baseProbability * r.multipliers.For(tier)
}

// ===========================
// 命令方法（管理端設定）
// ===========================

// SetActive 設定啟用旗標
func (r *Reward) SetActive(active bool) {
	r.active = active
	r.updatedAt = time.Now()
}

// UpdateTerms 修改折扣條款
//
// 注意：只影響之後鑄造的優惠券（條款在鑄造當下複製）
func (r *Reward) UpdateTerms(value decimal.Decimal, maxDiscount, minOrderAmount *decimal.Decimal) error {
	if value.IsNegative() {
		return ErrInvalidRewardConfig.WithContext(
			"reason", "value cannot be negative",
			"value", value.String(),
		)
	}
	r.value = value
	r.maxDiscount = maxDiscount
	r.minOrderAmount = minOrderAmount
	r.updatedAt = time.Now()
	return nil
}

// UpdateProbability 修改機率設定
func (r *Reward) UpdateProbability(baseProbability float64, multipliers TierMultipliers) error {
	if baseProbability < 0 {
		return ErrInvalidRewardConfig.WithContext(
			"reason", "baseProbability cannot be negative",
			"base_probability", baseProbability,
		)
	}
	if multipliers == nil {
		multipliers = UniformMultipliers()
	}
	if err := multipliers.validate(); err != nil {
		return err
	}
	r.baseProbability = baseProbability
	r.multipliers = multipliers
	r.updatedAt = time.Now()
	return nil
}

// ===========================
// 聚合重建方法（僅供 Infrastructure Layer 使用）
// ===========================

// ReconstructReward 從持久化存儲重建獎項
func ReconstructReward(
	rewardID RewardID,
	programID ProgramID,
	name string,
	kind RewardKind,
	value decimal.Decimal,
	maxDiscount, minOrderAmount *decimal.Decimal,
	baseProbability float64,
	multipliers TierMultipliers,
	couponValidDays int,
	active bool,
	displayOrder int,
	createdAt, updatedAt time.Time,
) (*Reward, error) {
	if rewardID.IsEmpty() {
		return nil, ErrInvalidRewardID.WithContext("reason", "invalid reward ID in database")
	}
	if _, err := RewardKindFromString(string(kind)); err != nil {
		return nil, err
	}
	if baseProbability < 0 {
		return nil, ErrInvalidRewardConfig.WithContext(
			"reason", "negative probability in database",
			"base_probability", baseProbability,
		)
	}
	if multipliers == nil {
		multipliers = UniformMultipliers()
	}

	return &Reward{
		rewardID:        rewardID,
		programID:       programID,
		name:            name,
		kind:            kind,
		value:           value,
		maxDiscount:     maxDiscount,
		minOrderAmount:  minOrderAmount,
		baseProbability: baseProbability,
		multipliers:     multipliers,
		couponValidDays: couponValidDays,
		active:          active,
		displayOrder:    displayOrder,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}
