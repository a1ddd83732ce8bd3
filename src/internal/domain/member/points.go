package member

import "fmt"

// ===========================
// Points 積分數量值對象
// ===========================

// Points 積分數量值對象
// 設計原則：值對象不可變、自我驗證
type Points struct {
	value int
}

// NewPoints 建構函數（checked 版本）
// 對外部輸入進行完整驗證
//
// 建構約束：積分數量必須 >= 0（不存在負數積分的概念）
func NewPoints(value int) (Points, error) {
	if value < 0 {
		return Points{}, fmt.Errorf(
			"%w: attempted to create Points with value %d",
			ErrNegativePoints,
			value,
		)
	}
	return Points{value: value}, nil
}

// newPointsUnchecked 內部建構函數（unchecked 版本）
// 僅供內部使用，當我們確定值有效時使用
//
// 前提條件：調用者必須保證 value >= 0
func newPointsUnchecked(value int) Points {
	return Points{value: value}
}

// Value 獲取積分數量
func (p Points) Value() int {
	return p.value
}

// Add 相加（返回新的 Points，保持不變性）
//
// 設計假設：
// 積分受業務規則限制（每次抽獎消耗固定點數，點數級別為數十到數百），
// 整數溢位在實際業務場景中不會發生
func (p Points) Add(other Points) Points {
	return newPointsUnchecked(p.value + other.value)
}

// Subtract 相減（返回新的 Points）
// 業務規則：不能扣除超過當前數量的積分
func (p Points) Subtract(other Points) (Points, error) {
	if p.value < other.value {
		// 業務規則違反，不是建構約束違反
		return Points{}, fmt.Errorf(
			"%w: cannot subtract %d from %d (insufficient balance)",
			ErrInsufficientPoints,
			other.value,
			p.value,
		)
	}
	return newPointsUnchecked(p.value - other.value), nil
}

// Equals 比較兩個 Points 是否相等
func (p Points) Equals(other Points) bool {
	return p.value == other.value
}

// GreaterThan 判斷是否大於另一個 Points
func (p Points) GreaterThan(other Points) bool {
	return p.value > other.value
}

// GreaterThanOrEqual 判斷是否大於等於另一個 Points
func (p Points) GreaterThanOrEqual(other Points) bool {
	return p.value >= other.value
}

// LessThan 判斷是否小於另一個 Points
func (p Points) LessThan(other Points) bool {
	return p.value < other.value
}
