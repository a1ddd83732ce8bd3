package member

// ===========================
// Tier 會員等級值對象
// ===========================

// Tier 會員等級
//
// 業務規則：
// - 等級由外部忠誠度子系統晉升，本引擎只讀取
// - 等級決定轉盤上每個獎項機率的乘數欄（tier multiplier）
// - 抽獎時必須讀取「當下」等級，不得跨請求快取（等級可能併發變更）
type Tier string

// 會員等級常量（固定集合，依序遞增）
const (
	TierBronze  Tier = "BRONZE"
	TierSilver  Tier = "SILVER"
	TierGold    Tier = "GOLD"
	TierDiamond Tier = "DIAMOND"
)

// AllTiers 返回所有等級（順序固定，供獎項乘數欄位與測試使用）
func AllTiers() []Tier {
	return []Tier{TierBronze, TierSilver, TierGold, TierDiamond}
}

// TierFromString 從字串解析會員等級
//
// 驗證規則：必須是已定義的等級之一
func TierFromString(value string) (Tier, error) {
	switch Tier(value) {
	case TierBronze, TierSilver, TierGold, TierDiamond:
		return Tier(value), nil
	default:
		return "", ErrInvalidTier.WithContext("input", value)
	}
}

// String 轉換為字串表示
func (t Tier) String() string {
	return string(t)
}
