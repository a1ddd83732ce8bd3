package shared

import "time"

// Clock 時間來源
//
// 設計原則：
// - 抽獎配額以「日」為單位、優惠券有效期以到期時間判斷，
//   所有與時間相關的業務規則都必須可以在測試中控制時間
// - Use Case 依賴 Clock 而非直接調用 time.Now()
type Clock func() time.Time

// SystemClock 系統時鐘（生產環境預設）
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock 固定時鐘（測試用）
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// DateOf 取出 UTC 日曆日（YYYY-MM-DD）
//
// 業務規則：每日免費抽獎配額以 UTC 日為界
// 使用 UTC 避免多實例部署時因時區設定不同導致配額日界漂移
func DateOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
