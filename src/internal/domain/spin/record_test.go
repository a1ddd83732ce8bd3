package spin_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/spin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1: 免費抽獎記錄：spinDate 取 UTC 日、積分花費為 0
func TestNewSpinRecord_FreeSpin(t *testing.T) {
	// Arrange
	now := time.Date(2025, 6, 1, 23, 30, 0, 0, time.FixedZone("UTC+8", 8*3600))

	// Act
	record, err := spin.NewSpinRecord(
		member.NewMemberID(),
		promotion.NewProgramID(),
		promotion.NewRewardID(),
		coupon.CouponID{}, // 銘謝惠顧：無優惠券
		spin.KindFree,
		0,
		now,
	)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", record.SpinDate()) // UTC 15:30 同日
	assert.True(t, record.CouponID().IsEmpty())
	assert.Equal(t, 0, record.PointsSpent())
}

// Test 2: 免費抽獎不可花費積分
func TestNewSpinRecord_FreeSpinWithPoints_ReturnsError(t *testing.T) {
	// Act
	_, err := spin.NewSpinRecord(
		member.NewMemberID(),
		promotion.NewProgramID(),
		promotion.NewRewardID(),
		coupon.CouponID{},
		spin.KindFree,
		50,
		time.Now(),
	)

	// Assert
	assert.ErrorIs(t, err, spin.ErrInvalidRecord)
}

// Test 3: 未知抽獎種類拒絕
func TestSpinKindFromString_Unknown_ReturnsError(t *testing.T) {
	// Act
	_, err := spin.SpinKindFromString("LUCKY_DIP")

	// Assert
	assert.ErrorIs(t, err, spin.ErrInvalidSpinKind)
}
