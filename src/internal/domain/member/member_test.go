package member_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== Member 聚合測試 =====

// Test 1: 成功創建會員
func TestNewMember_ValidInput_CreatesMember(t *testing.T) {
	// Act
	m, err := member.NewMember("王小明", member.TierBronze)

	// Assert
	require.NoError(t, err)
	assert.False(t, m.MemberID().IsEmpty())
	assert.Equal(t, "王小明", m.DisplayName())
	assert.Equal(t, member.TierBronze, m.Tier())
	assert.Equal(t, 0, m.AvailablePoints().Value())

	// 發布 MemberRegistered 事件
	events := m.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "member.registered", events[0].EventType())
}

// Test 2: 顯示名稱為空，創建失敗
func TestNewMember_EmptyDisplayName_ReturnsError(t *testing.T) {
	// Act
	m, err := member.NewMember("   ", member.TierBronze)

	// Assert
	assert.Nil(t, m)
	assert.ErrorIs(t, err, member.ErrInvalidDisplayName)
}

// Test 3: 無效等級，創建失敗
func TestNewMember_InvalidTier_ReturnsError(t *testing.T) {
	// Act
	m, err := member.NewMember("王小明", member.Tier("PLATINUM"))

	// Assert
	assert.Nil(t, m)
	assert.ErrorIs(t, err, member.ErrInvalidTier)
}

// Test 4: 扣減積分成功，餘額正確
func TestMember_DebitPoints_SufficientBalance_Succeeds(t *testing.T) {
	// Arrange
	m, _ := member.NewMember("王小明", member.TierGold)
	hundred, _ := member.NewPoints(100)
	m.EarnPoints(hundred)
	m.PullEvents() // 清空註冊事件

	cost, _ := member.NewPoints(50)

	// Act
	err := m.DebitPoints(cost, "points_exchange_spin")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 50, m.AvailablePoints().Value())
	assert.Equal(t, 100, m.EarnedPoints().Value())
	assert.Equal(t, 50, m.UsedPoints().Value())

	events := m.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "member.points_debited", events[0].EventType())
}

// Test 5: 餘額不足，扣減失敗且餘額不變
//
// 情境：餘額 40 點、每次兌換需 50 點 → 積分不足，餘額不變
func TestMember_DebitPoints_InsufficientBalance_ReturnsErrorAndNoChange(t *testing.T) {
	// Arrange
	m, _ := member.NewMember("王小明", member.TierBronze)
	forty, _ := member.NewPoints(40)
	m.EarnPoints(forty)

	cost, _ := member.NewPoints(50)

	// Act
	err := m.DebitPoints(cost, "points_exchange_spin")

	// Assert
	assert.ErrorIs(t, err, member.ErrInsufficientPoints)
	assert.Equal(t, 40, m.AvailablePoints().Value())
	assert.Equal(t, 0, m.UsedPoints().Value())
}

// Test 6: CanAfford 前置判斷
func TestMember_CanAfford(t *testing.T) {
	// Arrange
	m, _ := member.NewMember("王小明", member.TierBronze)
	fifty, _ := member.NewPoints(50)
	m.EarnPoints(fifty)

	// Act & Assert
	exact, _ := member.NewPoints(50)
	more, _ := member.NewPoints(51)
	assert.True(t, m.CanAfford(exact))
	assert.False(t, m.CanAfford(more))
}

// Test 7: 重建時驗證不變條件（used > earned 為損壞資料）
func TestReconstructMember_UsedExceedsEarned_ReturnsCorruptedError(t *testing.T) {
	// Arrange
	memberID := member.NewMemberID()

	// Act
	m, err := member.ReconstructMember(
		memberID, "王小明", member.TierSilver,
		100, 150, // used > earned
		timeNow(), timeNow(),
	)

	// Assert
	assert.Nil(t, m)
	assert.ErrorIs(t, err, member.ErrCorruptedPoints)
}

// Test 8: 重建成功，不發布事件
func TestReconstructMember_ValidData_NoEvents(t *testing.T) {
	// Arrange
	memberID := member.NewMemberID()

	// Act
	m, err := member.ReconstructMember(
		memberID, "王小明", member.TierDiamond,
		500, 200,
		timeNow(), timeNow(),
	)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 300, m.AvailablePoints().Value())
	assert.Empty(t, m.PullEvents())
}

func timeNow() time.Time { return time.Now() }

// ===== Points 值對象測試 =====

// Test 9: 負數積分建構失敗
func TestNewPoints_NegativeValue_ReturnsError(t *testing.T) {
	// Act
	p, err := member.NewPoints(-10)

	// Assert
	assert.ErrorIs(t, err, member.ErrNegativePoints)
	assert.Equal(t, 0, p.Value())
}

// Test 10: Subtract 餘額不足返回錯誤
func TestPoints_Subtract_InsufficientBalance_ReturnsError(t *testing.T) {
	// Arrange
	a, _ := member.NewPoints(30)
	b, _ := member.NewPoints(50)

	// Act
	_, err := a.Subtract(b)

	// Assert
	assert.ErrorIs(t, err, member.ErrInsufficientPoints)
}

// ===== Tier 值對象測試 =====

// Test 11: 解析有效與無效等級
func TestTierFromString(t *testing.T) {
	// Act & Assert
	tier, err := member.TierFromString("GOLD")
	require.NoError(t, err)
	assert.Equal(t, member.TierGold, tier)

	_, err = member.TierFromString("IRON")
	assert.ErrorIs(t, err, member.ErrInvalidTier)
}
