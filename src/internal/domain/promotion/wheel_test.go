package promotion_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== 測試輔助 =====

// buildRewards 依序建立指定基礎機率的獎項（乘數可選）
func buildRewards(t *testing.T, probs []float64, multipliers promotion.TierMultipliers) []*promotion.Reward {
	t.Helper()

	programID := promotion.NewProgramID()
	rewards := make([]*promotion.Reward, 0, len(probs))
	for i, p := range probs {
		r, err := promotion.NewReward(
			programID,
			"獎項",
			promotion.KindPercent,
			decimal.NewFromInt(10),
			nil, nil,
			p,
			multipliers,
			7,
			i,
		)
		require.NoError(t, err)
		rewards = append(rewards, r)
	}
	return rewards
}

// ===== Wheel 測試 =====

// Test 1: 全正權重時正規化後 Σ p(r) = 1（浮點誤差內）
func TestWheel_Normalize_PositiveWeights_SumsToOne(t *testing.T) {
	// Arrange
	wheel := promotion.NewWheel()
	rewards := buildRewards(t, []float64{0.3, 1.7, 0.05, 2.95}, nil)

	// Act
	probs := wheel.Normalize(rewards, member.TierBronze)

	// Assert
	require.NotNil(t, probs)
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// Test 2: 累計走訪選中第一個累計和 >= u 的槽位
func TestWheel_Pick_CumulativeWalk_SelectsCorrectSlot(t *testing.T) {
	// Arrange: 機率分布 [0.2, 0.3, 0.5]
	wheel := promotion.NewWheel()
	rewards := buildRewards(t, []float64{0.2, 0.3, 0.5}, nil)

	cases := []struct {
		u    float64
		want int
	}{
		{0.0, 0},   // 累計 0.2 >= 0
		{0.19, 0},  // 仍在第一槽
		{0.21, 1},  // 累計 0.5 >= 0.21
		{0.5, 1},   // 邊界：累計 0.5 >= 0.5
		{0.51, 2},  // 第三槽
		{0.999, 2}, // 尾端
	}

	for _, tc := range cases {
		// Act
		result, err := wheel.Pick(rewards, member.TierBronze, tc.u)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, tc.want, result.Index, "u=%v", tc.u)
		assert.False(t, result.Degenerate)
	}
}

// Test 3: 等級乘數改變實際權重
//
// 獎項 A base=1 乘數 GOLD=0、獎項 B base=1 乘數預設 1
// → GOLD 會員永遠抽中 B
func TestWheel_Pick_TierMultiplier_ExcludesZeroWeightSlot(t *testing.T) {
	// Arrange
	wheel := promotion.NewWheel()
	programID := promotion.NewProgramID()

	a, err := promotion.NewReward(
		programID, "A", promotion.KindPercent, decimal.NewFromInt(10),
		nil, nil, 1.0,
		promotion.TierMultipliers{member.TierGold: 0},
		7, 0,
	)
	require.NoError(t, err)
	b, err := promotion.NewReward(
		programID, "B", promotion.KindPercent, decimal.NewFromInt(20),
		nil, nil, 1.0, nil, 7, 1,
	)
	require.NoError(t, err)
	rewards := []*promotion.Reward{a, b}

	// Act & Assert: GOLD 任何 u 都抽中 B
	for _, u := range []float64{0.0, 0.5, 0.99} {
		result, err := wheel.Pick(rewards, member.TierGold, u)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Index)
	}

	// BRONZE 權重均等：u < 0.5 抽中 A
	result, err := wheel.Pick(rewards, member.TierBronze, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Index)
}

// Test 4: 退化設定（該等級全零權重）固定選中最後一個槽位
//
// 退化設定：tier X 所有乘數為 0 → 確定性選中最後一個獎項並標記退化
func TestWheel_Pick_AllZeroWeights_FallsBackToLastSlotDeterministically(t *testing.T) {
	// Arrange
	wheel := promotion.NewWheel()
	rewards := buildRewards(t, []float64{1, 2, 3},
		promotion.TierMultipliers{
			member.TierBronze:  0,
			member.TierSilver:  0,
			member.TierGold:    0,
			member.TierDiamond: 0,
		})

	// Act & Assert: 任何 u 都落在最後一個槽位
	for _, u := range []float64{0.0, 0.42, 0.99} {
		result, err := wheel.Pick(rewards, member.TierSilver, u)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Index)
		assert.True(t, result.Degenerate)
	}
}

// Test 5: 空獎項集合返回錯誤（防禦路徑）
func TestWheel_Pick_EmptyRewardSet_ReturnsError(t *testing.T) {
	// Arrange
	wheel := promotion.NewWheel()

	// Act
	_, err := wheel.Pick(nil, member.TierBronze, 0.5)

	// Assert
	assert.ErrorIs(t, err, promotion.ErrEmptyRewardSet)
}

// ===== Program 測試 =====

// Test 6: IsRunning 邊界判斷
func TestProgram_IsRunning_Boundaries(t *testing.T) {
	// Arrange
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	program, err := promotion.NewProgram("夏季抽獎", start, end, 1, 50)
	require.NoError(t, err)

	// Act & Assert
	assert.False(t, program.IsRunning(start.Add(-time.Second)))
	assert.True(t, program.IsRunning(start))                 // 含起點
	assert.True(t, program.IsRunning(start.Add(time.Hour)))
	assert.False(t, program.IsRunning(end))                  // 不含終點
	program.SetActive(false)
	assert.False(t, program.IsRunning(start.Add(time.Hour))) // 停用旗標優先
}

// Test 7: 活動設定驗證
func TestNewProgram_InvalidConfig_ReturnsError(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// 結束早於開始
	_, err := promotion.NewProgram("倒轉", end, start, 1, 50)
	assert.ErrorIs(t, err, promotion.ErrInvalidProgramConfig)

	// 負數免費次數
	_, err = promotion.NewProgram("負數", start, end, -1, 50)
	assert.ErrorIs(t, err, promotion.ErrInvalidProgramConfig)

	// 負數兌換成本
	_, err = promotion.NewProgram("負數", start, end, 1, -50)
	assert.ErrorIs(t, err, promotion.ErrInvalidProgramConfig)
}

// ===== Reward 測試 =====

// Test 8: NO_REWARD 不鑄造優惠券、一般獎項鑄造
func TestReward_MintsCoupon(t *testing.T) {
	programID := promotion.NewProgramID()

	noReward, err := promotion.NewReward(
		programID, "銘謝惠顧", promotion.KindNoReward, decimal.Zero,
		nil, nil, 1.0, nil, 0, 0,
	)
	require.NoError(t, err)
	assert.False(t, noReward.MintsCoupon())

	percent, err := promotion.NewReward(
		programID, "九折券", promotion.KindPercent, decimal.NewFromInt(10),
		nil, nil, 1.0, nil, 7, 1,
	)
	require.NoError(t, err)
	assert.True(t, percent.MintsCoupon())
}

// Test 9: 一般獎項有效天數必須 >= 1
func TestNewReward_CouponValidDays_Validation(t *testing.T) {
	programID := promotion.NewProgramID()

	_, err := promotion.NewReward(
		programID, "九折券", promotion.KindPercent, decimal.NewFromInt(10),
		nil, nil, 1.0, nil, 0, 0,
	)
	assert.ErrorIs(t, err, promotion.ErrInvalidRewardConfig)
}

// Test 10: 負數乘數驗證失敗
func TestNewReward_NegativeMultiplier_ReturnsError(t *testing.T) {
	programID := promotion.NewProgramID()

	_, err := promotion.NewReward(
		programID, "九折券", promotion.KindPercent, decimal.NewFromInt(10),
		nil, nil, 1.0,
		promotion.TierMultipliers{member.TierGold: -0.5},
		7, 0,
	)
	assert.ErrorIs(t, err, promotion.ErrInvalidRewardConfig)
}
