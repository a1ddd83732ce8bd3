package coupon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// Mocks
// ===========================

// MockCouponRepository mock implementation of coupon.CouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Save(ctx shared.TransactionContext, c *coupon.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCouponRepository) FindByCode(ctx shared.TransactionContext, code string) (*coupon.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *MockCouponRepository) ListByOwner(ctx shared.TransactionContext, ownerID member.MemberID, onlyActive bool) ([]*coupon.Coupon, error) {
	args := m.Called(ctx, ownerID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coupon.Coupon), args.Error(1)
}

func (m *MockCouponRepository) CountActive(ctx shared.TransactionContext, ownerID member.MemberID) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockCouponRepository) MarkUsed(ctx shared.TransactionContext, couponID coupon.CouponID, orderRef string, usedAt time.Time) (bool, error) {
	args := m.Called(ctx, couponID, orderRef, usedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockCouponRepository) MarkExpired(ctx shared.TransactionContext, couponID coupon.CouponID) (bool, error) {
	args := m.Called(ctx, couponID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCouponRepository) ExpireDue(ctx shared.TransactionContext, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionManager mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	// Directly execute the function with nil context (for unit tests)
	return fn(nil)
}

// ===========================
// Test Fixtures
// ===========================

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// fixtureCoupon 九折券：上限 500、最低訂單 1000、7 天有效
func fixtureCoupon(t *testing.T, ownerID member.MemberID) *coupon.Coupon {
	t.Helper()
	maxDiscount := decimal.NewFromInt(500)
	minOrder := decimal.NewFromInt(1000)
	terms, err := coupon.NewDiscountTerms(
		coupon.DiscountPercent,
		decimal.NewFromInt(10),
		&maxDiscount, &minOrder,
	)
	require.NoError(t, err)

	c, err := coupon.MintCoupon(
		"LS-TESTCODE", ownerID,
		promotion.NewProgramID(), promotion.NewRewardID(),
		terms, 7, fixedNow.AddDate(0, 0, -1),
	)
	require.NoError(t, err)
	c.PullEvents()
	return c
}
