package spin

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/spin"
)

// ===========================
// Mocks
// ===========================

// MockMemberRepository mock implementation of member.MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Save(ctx shared.TransactionContext, mem *member.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByID(ctx shared.TransactionContext, memberID member.MemberID) (*member.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) Update(ctx shared.TransactionContext, mem *member.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MockMemberRepository) DebitPoints(ctx shared.TransactionContext, memberID member.MemberID, amount member.Points) error {
	args := m.Called(ctx, memberID, amount)
	return args.Error(0)
}

// MockProgramRepository mock implementation of promotion.ProgramRepository
type MockProgramRepository struct {
	mock.Mock
}

func (m *MockProgramRepository) Save(ctx shared.TransactionContext, program *promotion.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockProgramRepository) FindByID(ctx shared.TransactionContext, programID promotion.ProgramID) (*promotion.Program, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Program), args.Error(1)
}

func (m *MockProgramRepository) FindRunning(ctx shared.TransactionContext, now time.Time) (*promotion.Program, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Program), args.Error(1)
}

func (m *MockProgramRepository) Update(ctx shared.TransactionContext, program *promotion.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

// MockRewardRepository mock implementation of promotion.RewardRepository
type MockRewardRepository struct {
	mock.Mock
}

func (m *MockRewardRepository) Save(ctx shared.TransactionContext, reward *promotion.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *MockRewardRepository) FindByID(ctx shared.TransactionContext, rewardID promotion.RewardID) (*promotion.Reward, error) {
	args := m.Called(ctx, rewardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Reward), args.Error(1)
}

func (m *MockRewardRepository) FindActiveByProgram(ctx shared.TransactionContext, programID promotion.ProgramID) ([]*promotion.Reward, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*promotion.Reward), args.Error(1)
}

func (m *MockRewardRepository) Update(ctx shared.TransactionContext, reward *promotion.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

// MockSpinRecordRepository mock implementation of spin.SpinRecordRepository
type MockSpinRecordRepository struct {
	mock.Mock
}

func (m *MockSpinRecordRepository) Append(ctx shared.TransactionContext, record *spin.SpinRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSpinRecordRepository) CountForDay(
	ctx shared.TransactionContext,
	memberID member.MemberID,
	programID promotion.ProgramID,
	kind spin.SpinKind,
	date string,
) (int, error) {
	args := m.Called(ctx, memberID, programID, kind, date)
	return args.Int(0), args.Error(1)
}

func (m *MockSpinRecordRepository) CountAllForDay(
	ctx shared.TransactionContext,
	memberID member.MemberID,
	programID promotion.ProgramID,
	date string,
) (int, error) {
	args := m.Called(ctx, memberID, programID, date)
	return args.Int(0), args.Error(1)
}

func (m *MockSpinRecordRepository) ListByMember(ctx shared.TransactionContext, memberID member.MemberID, limit int) ([]*spin.SpinRecord, error) {
	args := m.Called(ctx, memberID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*spin.SpinRecord), args.Error(1)
}

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
