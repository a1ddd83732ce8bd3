package coupon

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
)

// setupTestDB 創建測試用的 SQLite in-memory 資料庫
func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&CouponGORM{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cleanup := func() {
		sqlDB.Close()
	}

	return db, cleanup
}

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// mintTestCoupon 鑄造測試優惠券（code 由調用者指定，validDays 7）
func mintTestCoupon(t *testing.T, code string, ownerID member.MemberID, issuedAt time.Time) *coupon.Coupon {
	t.Helper()
	maxDiscount := decimal.NewFromInt(500)
	terms, err := coupon.NewDiscountTerms(
		coupon.DiscountPercent, decimal.NewFromInt(10), &maxDiscount, nil,
	)
	require.NoError(t, err)

	c, err := coupon.MintCoupon(
		code, ownerID,
		promotion.NewProgramID(), promotion.NewRewardID(),
		terms, 7, issuedAt,
	)
	require.NoError(t, err)
	c.PullEvents()
	return c
}

// Test 1: 保存與查找往返：折扣條款完整還原
func TestCouponRepository_SaveAndFindByCode_RoundTrip(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewCouponRepository(db)

	ownerID := member.NewMemberID()
	c := mintTestCoupon(t, "LS-AAAA2345", ownerID, testNow)

	// Act
	require.NoError(t, repo.Save(nil, c))
	found, err := repo.FindByCode(nil, "LS-AAAA2345")

	// Assert
	require.NoError(t, err)
	assert.True(t, found.CouponID().Equals(c.CouponID()))
	assert.True(t, found.OwnerID().Equals(ownerID))
	assert.Equal(t, coupon.StatusActive, found.Status())
	assert.Equal(t, coupon.DiscountPercent, found.Terms().Kind())
	require.NotNil(t, found.Terms().MaxDiscount())
	assert.True(t, decimal.NewFromInt(500).Equal(*found.Terms().MaxDiscount()))
	assert.Equal(t, c.ExpiresAt().UTC(), found.ExpiresAt().UTC())
}

// Test 2: 代碼唯一索引衝突返回 ErrCodeAlreadyExists
func TestCouponRepository_Save_DuplicateCode_ReturnsError(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewCouponRepository(db)

	require.NoError(t, repo.Save(nil, mintTestCoupon(t, "LS-DUP23456", member.NewMemberID(), testNow)))

	// Act
	err := repo.Save(nil, mintTestCoupon(t, "LS-DUP23456", member.NewMemberID(), testNow))

	// Assert
	assert.ErrorIs(t, err, coupon.ErrCodeAlreadyExists)
}

// Test 3: ListByOwner 的 onlyActive 過濾
func TestCouponRepository_ListByOwner_OnlyActiveFilter(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewCouponRepository(db)

	ownerID := member.NewMemberID()
	active := mintTestCoupon(t, "LS-ACT23456", ownerID, testNow)
	used := mintTestCoupon(t, "LS-USE23456", ownerID, testNow.Add(time.Hour))
	require.NoError(t, repo.Save(nil, active))
	require.NoError(t, repo.Save(nil, used))

	updated, err := repo.MarkUsed(nil, used.CouponID(), "ORDER-001", testNow.Add(2*time.Hour))
	require.NoError(t, err)
	require.True(t, updated)

	// Act
	all, err := repo.ListByOwner(nil, ownerID, false)
	require.NoError(t, err)
	activeOnly, err := repo.ListByOwner(nil, ownerID, true)
	require.NoError(t, err)
	count, err := repo.CountActive(nil, ownerID)
	require.NoError(t, err)

	// Assert: 新到舊
	require.Len(t, all, 2)
	assert.Equal(t, "LS-USE23456", all[0].Code())
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "LS-ACT23456", activeOnly[0].Code())
	assert.Equal(t, 1, count)
}

// Test 4: 核銷後狀態與訂單引用持久化
func TestCouponRepository_MarkUsed_PersistsTransition(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewCouponRepository(db)

	c := mintTestCoupon(t, "LS-MKU23456", member.NewMemberID(), testNow)
	require.NoError(t, repo.Save(nil, c))

	// Act
	usedAt := testNow.Add(time.Hour)
	updated, err := repo.MarkUsed(nil, c.CouponID(), "ORDER-777", usedAt)

	// Assert
	require.NoError(t, err)
	assert.True(t, updated)

	found, err := repo.FindByCode(nil, "LS-MKU23456")
	require.NoError(t, err)
	assert.Equal(t, coupon.StatusUsed, found.Status())
	assert.Equal(t, "ORDER-777", found.OrderRef())
	require.NotNil(t, found.UsedAt())
	assert.Equal(t, usedAt.UTC(), found.UsedAt().UTC())
}

// Test 5: 恰好一個贏家：併發核銷同一張券
func TestCouponRepository_MarkUsed_Concurrent_ExactlyOneWinner(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewCouponRepository(db)

	c := mintTestCoupon(t, "LS-RACE2345", member.NewMemberID(), testNow)
	require.NoError(t, repo.Save(nil, c))

	// Act: 8 個併發核銷請求
	var wg sync.WaitGroup
	wins := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			updated, err := repo.MarkUsed(nil, c.CouponID(), "ORDER-RACE", testNow)
			if err == nil && updated {
				wins <- true
			}
		}()
	}
	wg.Wait()
	close(wins)

	// Assert
	winners := 0
	for range wins {
		winners++
	}
	assert.Equal(t, 1, winners)
}

// Test 6: 終態上的 MarkExpired 返回 updated = false
func TestCouponRepository_MarkExpired_TerminalState_NoOp(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewCouponRepository(db)

	c := mintTestCoupon(t, "LS-EXP23456", member.NewMemberID(), testNow)
	require.NoError(t, repo.Save(nil, c))

	updated, err := repo.MarkUsed(nil, c.CouponID(), "ORDER-001", testNow)
	require.NoError(t, err)
	require.True(t, updated)

	// Act: 已 USED 的券不可再過期
	updated, err = repo.MarkExpired(nil, c.CouponID())

	// Assert
	require.NoError(t, err)
	assert.False(t, updated)

	found, err := repo.FindByCode(nil, "LS-EXP23456")
	require.NoError(t, err)
	assert.Equal(t, coupon.StatusUsed, found.Status())
}

// Test 7: 批次清掃只轉換到期的 ACTIVE 券，且冪等
func TestCouponRepository_ExpireDue_SweepsOnlyDueAndIdempotent(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewCouponRepository(db)

	ownerID := member.NewMemberID()
	// 10 天前鑄造（7 天有效）：到期
	due := mintTestCoupon(t, "LS-DUE23456", ownerID, testNow.AddDate(0, 0, -10))
	// 昨天鑄造：未到期
	fresh := mintTestCoupon(t, "LS-FRS23456", ownerID, testNow.AddDate(0, 0, -1))
	// 到期但已核銷：不轉換
	usedDue := mintTestCoupon(t, "LS-UDU23456", ownerID, testNow.AddDate(0, 0, -10))
	require.NoError(t, repo.Save(nil, due))
	require.NoError(t, repo.Save(nil, fresh))
	require.NoError(t, repo.Save(nil, usedDue))
	updated, err := repo.MarkUsed(nil, usedDue.CouponID(), "ORDER-001", testNow.AddDate(0, 0, -5))
	require.NoError(t, err)
	require.True(t, updated)

	// Act
	count, err := repo.ExpireDue(nil, testNow)
	require.NoError(t, err)
	second, err := repo.ExpireDue(nil, testNow)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(0), second) // 冪等

	foundDue, err := repo.FindByCode(nil, "LS-DUE23456")
	require.NoError(t, err)
	assert.Equal(t, coupon.StatusExpired, foundDue.Status())

	foundFresh, err := repo.FindByCode(nil, "LS-FRS23456")
	require.NoError(t, err)
	assert.Equal(t, coupon.StatusActive, foundFresh.Status())

	foundUsed, err := repo.FindByCode(nil, "LS-UDU23456")
	require.NoError(t, err)
	assert.Equal(t, coupon.StatusUsed, foundUsed.Status())
}
