package shared_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== EntityID 測試 =====

type testMarker struct{}

var errInvalidTestID = shared.NewDomainError("TEST_ID_INVALID", "無效的測試 ID")

// Test 1: 生成的 ID 唯一且非空
func TestNewEntityID_GeneratesUniqueIDs(t *testing.T) {
	// Act
	id1 := shared.NewEntityID[testMarker]()
	id2 := shared.NewEntityID[testMarker]()

	// Assert
	assert.False(t, id1.IsEmpty())
	assert.False(t, id2.IsEmpty())
	assert.False(t, id1.Equals(id2))
}

// Test 2: 字串往返
func TestEntityIDFromString_RoundTrip(t *testing.T) {
	// Arrange
	original := shared.NewEntityID[testMarker]()

	// Act
	parsed, err := shared.EntityIDFromString[testMarker](original.String(), errInvalidTestID)

	// Assert
	require.NoError(t, err)
	assert.True(t, original.Equals(parsed))
}

// Test 3: 無效 UUID 返回調用者提供的錯誤
func TestEntityIDFromString_InvalidUUID_ReturnsTemplateError(t *testing.T) {
	// Act
	id, err := shared.EntityIDFromString[testMarker]("not-a-uuid", errInvalidTestID)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidTestID))
	assert.True(t, id.IsEmpty())
}

// ===== DomainError 測試 =====

// Test 4: WithContext 保持錯誤身份（errors.Is 以 Code 判等）
func TestDomainError_WithContext_PreservesIdentity(t *testing.T) {
	// Arrange
	base := shared.NewDomainError("TEST_SOMETHING_WRONG", "出錯了")

	// Act
	wrapped := base.WithContext("member_id", "abc", "attempt", 3)

	// Assert
	assert.True(t, errors.Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), "TEST_SOMETHING_WRONG")
	assert.Contains(t, wrapped.Error(), "member_id")
}

// Test 5: WithContext 不修改原錯誤（不可變性）
func TestDomainError_WithContext_DoesNotMutateOriginal(t *testing.T) {
	// Arrange
	base := shared.NewDomainError("TEST_IMMUTABLE", "不可變")

	// Act
	_ = base.WithContext("key", "value")

	// Assert
	assert.Empty(t, base.Context)
}

// ===== Clock 測試 =====

// Test 6: DateOf 以 UTC 日為界
func TestDateOf_UsesUTCDate(t *testing.T) {
	// Arrange: UTC 2025-03-01 23:30，在 UTC+8 已是 3 月 2 日
	loc := time.FixedZone("UTC+8", 8*3600)
	instant := time.Date(2025, 3, 2, 7, 30, 0, 0, loc) // = 2025-03-01 23:30 UTC

	// Act
	date := shared.DateOf(instant)

	// Assert
	assert.Equal(t, "2025-03-01", date)
}
