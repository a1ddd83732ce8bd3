package coupon_test

import (
	"testing"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== DiscountTerms 測試 =====

func d(v int64) decimal.Decimal      { return decimal.NewFromInt(v) }
func dp(v int64) *decimal.Decimal    { dec := decimal.NewFromInt(v); return &dec }

// Test 1: 典型場景：10% 折扣、上限 50,000、門檻 100,000
//
// 小計 80,000 → 未達門檻，無效
// 小計 300,000 → 折扣 = min(30,000, 50,000) = 30,000
func TestDiscountTerms_PercentWithCapAndMinOrder(t *testing.T) {
	// Arrange
	terms, err := coupon.NewDiscountTerms(coupon.DiscountPercent, d(10), dp(50000), dp(100000))
	require.NoError(t, err)

	// Act & Assert: 低於門檻
	_, err = terms.DiscountFor(d(80000))
	assert.ErrorIs(t, err, coupon.ErrBelowMinOrder)

	// Act & Assert: 達門檻，百分比折扣未觸頂
	discount, err := terms.DiscountFor(d(300000))
	require.NoError(t, err)
	assert.True(t, discount.Amount.Equal(d(30000)), "got %s", discount.Amount)
	assert.False(t, discount.FreeShipping)
}

// Test 2: 百分比折扣觸頂
//
// 10% 折扣、上限 50,000，小計 800,000 → 折扣 = min(80,000, 50,000) = 50,000
func TestDiscountTerms_PercentHitsCap(t *testing.T) {
	// Arrange
	terms, _ := coupon.NewDiscountTerms(coupon.DiscountPercent, d(10), dp(50000), nil)

	// Act
	discount, err := terms.DiscountFor(d(800000))

	// Assert
	require.NoError(t, err)
	assert.True(t, discount.Amount.Equal(d(50000)))
}

// Test 3: 無上限的百分比折扣不封頂
func TestDiscountTerms_PercentWithoutCap(t *testing.T) {
	// Arrange
	terms, _ := coupon.NewDiscountTerms(coupon.DiscountPercent, d(25), nil, nil)

	// Act
	discount, err := terms.DiscountFor(d(200000))

	// Assert
	require.NoError(t, err)
	assert.True(t, discount.Amount.Equal(d(50000)))
}

// Test 4: 固定金額折扣不超過小計
func TestDiscountTerms_FixedAmount_ClampedToSubtotal(t *testing.T) {
	// Arrange
	terms, _ := coupon.NewDiscountTerms(coupon.DiscountFixedAmount, d(50000), nil, nil)

	// Act: 小計低於折扣面額
	discount, err := terms.DiscountFor(d(30000))

	// Assert: min(50,000, 30,000) = 30,000
	require.NoError(t, err)
	assert.True(t, discount.Amount.Equal(d(30000)))

	// Act: 小計高於折扣面額
	discount, err = terms.DiscountFor(d(120000))
	require.NoError(t, err)
	assert.True(t, discount.Amount.Equal(d(50000)))
}

// Test 5: 免運費返回哨兵，不是小計折扣
func TestDiscountTerms_FreeShipping_ReturnsSentinel(t *testing.T) {
	// Arrange
	terms, _ := coupon.NewDiscountTerms(coupon.DiscountFreeShipping, decimal.Zero, nil, dp(50000))

	// Act
	discount, err := terms.DiscountFor(d(60000))

	// Assert
	require.NoError(t, err)
	assert.True(t, discount.FreeShipping)
	assert.True(t, discount.Amount.IsZero())
}

// Test 6: 建構驗證：負數值拒絕
func TestNewDiscountTerms_NegativeValue_ReturnsError(t *testing.T) {
	// Act
	_, err := coupon.NewDiscountTerms(coupon.DiscountPercent, d(-10), nil, nil)

	// Assert
	assert.ErrorIs(t, err, coupon.ErrInvalidTerms)
}

// Test 7: 建構驗證：未知折扣種類拒絕
func TestNewDiscountTerms_UnknownKind_ReturnsError(t *testing.T) {
	// Act
	_, err := coupon.NewDiscountTerms(coupon.DiscountKind("BOGOF"), d(10), nil, nil)

	// Assert
	assert.ErrorIs(t, err, coupon.ErrInvalidTerms)
}
