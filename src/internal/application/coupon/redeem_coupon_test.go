package coupon

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

func newRedeemUseCase(repo *MockCouponRepository) RedeemCouponUseCase {
	return NewRedeemCouponUseCase(
		repo, new(MockTransactionManager),
		shared.FixedClock(fixedNow), zerolog.Nop(),
	)
}

// Test 1: 核銷成功：條件式轉換並返回折扣
func TestRedeemCouponUseCase_Execute_Success(t *testing.T) {
	// Arrange
	ownerID := member.NewMemberID()
	c := fixtureCoupon(t, ownerID)

	mockRepo := new(MockCouponRepository)
	mockRepo.On("FindByCode", mock.Anything, "LS-TESTCODE").Return(c, nil)
	mockRepo.On("MarkUsed", mock.Anything, c.CouponID(), "ORDER-001", fixedNow).
		Return(true, nil)

	useCase := newRedeemUseCase(mockRepo)

	// Act
	result, err := useCase.Execute(RedeemCouponCommand{
		Code:     "LS-TESTCODE",
		MemberID: ownerID.String(),
		OrderRef: "ORDER-001",
		Subtotal: decimal.NewFromInt(2000),
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Redeemed)
	assert.True(t, decimal.NewFromInt(200).Equal(result.DiscountAmount))
	assert.Equal(t, fixedNow, result.UsedAt)
	mockRepo.AssertExpectations(t)
}

// Test 2: 條件式 UPDATE 沒有命中：輸掉競態，無部分效果
func TestRedeemCouponUseCase_Execute_LostRace_NotRedeemed(t *testing.T) {
	// Arrange
	ownerID := member.NewMemberID()
	c := fixtureCoupon(t, ownerID)

	mockRepo := new(MockCouponRepository)
	mockRepo.On("FindByCode", mock.Anything, "LS-TESTCODE").Return(c, nil)
	mockRepo.On("MarkUsed", mock.Anything, c.CouponID(), "ORDER-002", fixedNow).
		Return(false, nil)

	useCase := newRedeemUseCase(mockRepo)

	// Act
	result, err := useCase.Execute(RedeemCouponCommand{
		Code:     "LS-TESTCODE",
		MemberID: ownerID.String(),
		OrderRef: "ORDER-002",
		Subtotal: decimal.NewFromInt(2000),
	})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Redeemed)
	assert.Equal(t, "COUPON_ALREADY_USED", result.Reason)
}

// Test 3: 已核銷的券再次核銷被拒絕
func TestRedeemCouponUseCase_Execute_AlreadyUsed_NotRedeemed(t *testing.T) {
	// Arrange
	ownerID := member.NewMemberID()
	c := fixtureCoupon(t, ownerID)
	require.NoError(t, c.Redeem(ownerID, "ORDER-EARLIER", fixedNow))

	mockRepo := new(MockCouponRepository)
	mockRepo.On("FindByCode", mock.Anything, "LS-TESTCODE").Return(c, nil)

	useCase := newRedeemUseCase(mockRepo)

	// Act
	result, err := useCase.Execute(RedeemCouponCommand{
		Code:     "LS-TESTCODE",
		MemberID: ownerID.String(),
		OrderRef: "ORDER-003",
		Subtotal: decimal.NewFromInt(2000),
	})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Redeemed)
	assert.Equal(t, "COUPON_ALREADY_USED", result.Reason)
	mockRepo.AssertNotCalled(t, "MarkUsed")
}

// Test 4: 低於最低訂單門檻時不觸發轉換
func TestRedeemCouponUseCase_Execute_BelowMinOrder_NotRedeemed(t *testing.T) {
	// Arrange
	ownerID := member.NewMemberID()
	c := fixtureCoupon(t, ownerID)

	mockRepo := new(MockCouponRepository)
	mockRepo.On("FindByCode", mock.Anything, "LS-TESTCODE").Return(c, nil)

	useCase := newRedeemUseCase(mockRepo)

	// Act
	result, err := useCase.Execute(RedeemCouponCommand{
		Code:     "LS-TESTCODE",
		MemberID: ownerID.String(),
		OrderRef: "ORDER-004",
		Subtotal: decimal.NewFromInt(800),
	})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Redeemed)
	assert.Equal(t, "COUPON_BELOW_MIN_ORDER", result.Reason)
	mockRepo.AssertNotCalled(t, "MarkUsed")
}

// Test 5: 非擁有者且未達門檻：擁有者檢查優先於門檻檢查
func TestRedeemCouponUseCase_Execute_NotOwned_ChecksOwnerBeforeMinOrder(t *testing.T) {
	// Arrange
	c := fixtureCoupon(t, member.NewMemberID())
	otherID := member.NewMemberID()

	mockRepo := new(MockCouponRepository)
	mockRepo.On("FindByCode", mock.Anything, "LS-TESTCODE").Return(c, nil)

	useCase := newRedeemUseCase(mockRepo)

	// Act: 小計同時低於門檻，判定仍應是擁有者不符
	result, err := useCase.Execute(RedeemCouponCommand{
		Code:     "LS-TESTCODE",
		MemberID: otherID.String(),
		OrderRef: "ORDER-005",
		Subtotal: decimal.NewFromInt(800),
	})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Redeemed)
	assert.Equal(t, "COUPON_NOT_OWNED", result.Reason)
	mockRepo.AssertNotCalled(t, "MarkUsed")
}

// Test 6: 空訂單引用在觸及倉儲前被拒絕
func TestRedeemCouponUseCase_Execute_EmptyOrderRef_ReturnsError(t *testing.T) {
	// Arrange
	mockRepo := new(MockCouponRepository)
	useCase := newRedeemUseCase(mockRepo)

	// Act
	result, err := useCase.Execute(RedeemCouponCommand{
		Code:     "LS-TESTCODE",
		MemberID: member.NewMemberID().String(),
		OrderRef: "",
		Subtotal: decimal.NewFromInt(2000),
	})

	// Assert
	assert.ErrorIs(t, err, coupon.ErrInvalidCode)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "FindByCode")
}

// ===========================
// ExpireCouponsUseCase Tests
// ===========================

// Test 7: 批次清掃返回轉換數量
func TestExpireCouponsUseCase_Execute_ReturnsCount(t *testing.T) {
	// Arrange
	mockRepo := new(MockCouponRepository)
	mockRepo.On("ExpireDue", mock.Anything, fixedNow).Return(int64(7), nil)

	useCase := NewExpireCouponsUseCase(
		mockRepo, new(MockTransactionManager),
		shared.FixedClock(fixedNow), zerolog.Nop(),
	)

	// Act
	result, err := useCase.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ExpiredCount)
	mockRepo.AssertExpectations(t)
}
