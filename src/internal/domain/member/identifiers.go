package member

import (
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// MemberID Value Object (Generic Pattern)
// ===========================

// MemberMarker 會員 ID 標記類型
//
// 設計原則：
// - 用於泛型類型區分（MemberID ≠ ProgramID ≠ CouponID）
// - 空結構體，不佔用記憶體，僅用於編譯時類型檢查
type MemberMarker struct{}

// MemberID 會員 ID 值對象（基於泛型 EntityID）
//
// 使用範例：
//   memberID := NewMemberID()                 // 生成新 ID
//   memberID, err := MemberIDFromString(str)  // 從字串解析
type MemberID = shared.EntityID[MemberMarker]

// NewMemberID 生成新的會員 ID（UUID v4）
func NewMemberID() MemberID {
	return shared.NewEntityID[MemberMarker]()
}

// MemberIDFromString 從字串解析會員 ID
//
// 使用場景：
// - 從資料庫載入會員
// - 從 API 請求解析會員 ID（身分由外部認證層解析後傳入）
func MemberIDFromString(value string) (MemberID, error) {
	return shared.EntityIDFromString[MemberMarker](value, ErrInvalidMemberID)
}
