package promotion

import (
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
)

// ===========================
// Wheel 轉盤抽取領域服務
// ===========================

// Wheel 加權隨機抽取領域服務
//
// 設計原則：
// 1. Domain Service 封裝不屬於任何單一實體的業務邏輯
//    （抽取需要協調整個獎項集合與會員等級）
// 2. 無狀態（stateless）- 所有數據通過參數傳入
// 3. 隨機性外部化：均勻變量 u 由調用者提供，服務本身是純函數，
//    測試不需要任何 mock 即可覆蓋所有分支
type Wheel struct{}

// NewWheel 建構函數
// Domain Service 通常是無狀態的，但保留建構函數用於未來擴展
func NewWheel() *Wheel {
	return &Wheel{}
}

// PickResult 抽取結果
type PickResult struct {
	Index int  // 中獎槽位在獎項列表中的索引（供前端轉盤動畫）
	// Degenerate 表示退化設定路徑：該等級所有實際權重皆為 0，
	// 依「永不讓顧客沒有結果」規則固定選中最後一個獎項。
	// 這是設定錯誤的訊號，調用者應記錄營運警告，但不回傳錯誤給顧客。
	Degenerate bool
}

// EffectiveWeights 計算每個獎項在指定等級下的實際權重與總和
//
// actual(r) = r.baseProbability × r.multiplier[tier]
func (w *Wheel) EffectiveWeights(rewards []*Reward, tier member.Tier) ([]float64, float64) {
	weights := make([]float64, len(rewards))
	total := 0.0
	for i, r := range rewards {
		weights[i] = r.EffectiveWeight(tier)
		total += weights[i]
	}
	return weights, total
}

// Normalize 將實際權重正規化為機率分布
//
// 業務規則：
// - total > 0 時 p(r) = actual(r) / total，Σ p(r) = 1（浮點誤差內）
// - total = 0 時返回 nil（退化設定，由 Pick 的 fallback 處理）
func (w *Wheel) Normalize(rewards []*Reward, tier member.Tier) []float64 {
	weights, total := w.EffectiveWeights(rewards, tier)
	if total <= 0 {
		return nil
	}
	probs := make([]float64, len(weights))
	for i, weight := range weights {
		probs[i] = weight / total
	}
	return probs
}

// Pick 加權隨機抽取
//
// 參數：
//   rewards - 啟用中的獎項集合（依 displayOrder 排序，非空）
//   tier - 會員當下的等級（抽獎時讀取，不跨請求快取）
//   u - 均勻分布於 [0, 1) 的隨機變量（由調用者提供）
//
// 演算法：
// 1. 計算每個獎項的實際權重並正規化
// 2. 沿獎項順序累加 p(r)，選中第一個累計和 >= u 的獎項
// 3. 退化情況（total = 0）：固定選中最後一個獎項並標記 Degenerate
//
// 錯誤：
// - ErrEmptyRewardSet: 空集合（正常流程 fail closed 在載入階段，此為防禦）
func (w *Wheel) Pick(rewards []*Reward, tier member.Tier, u float64) (PickResult, error) {
	if len(rewards) == 0 {
		return PickResult{}, ErrEmptyRewardSet
	}

	probs := w.Normalize(rewards, tier)
	if probs == nil {
		// 全零權重：固定落在最後一個獎項（保留原行為，交由調用者告警）
		return PickResult{Index: len(rewards) - 1, Degenerate: true}, nil
	}

	cumulative := 0.0
	for i, p := range probs {
		cumulative += p
		if cumulative >= u {
			return PickResult{Index: i}, nil
		}
	}

	// 浮點累加誤差可能使最終累計和略小於 1；收斂到最後一個槽位
	return PickResult{Index: len(rewards) - 1}, nil
}
