package shared

// TransactionContext 事務上下文介面
//
// 設計決策：可選事務參與模式（Optional Transaction Participation）
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行（事務傳播）
// - ctx == nil: 使用 auto-commit 模式（適用於單一讀操作）
//
// 使用場景：
//
// 1. 寫操作：必須在事務中（通過 TransactionManager.InTransaction）
//    - 抽獎是本系統最關鍵的原子單元：配額檢查、積分扣減、優惠券鑄造、
//      抽獎記錄寫入必須全部成功或全部回滾
//    - 優惠券核銷：狀態檢查與 ACTIVE→USED 轉換必須在同一臨界區
//
// 2. 讀操作：可選事務參與
//    - 獨立查詢：傳入 nil（性能優先，auto-commit 模式）
//    - 在事務中讀取：傳入調用者的 ctx（保證一致性）
//    - 例如：查詢優惠券列表（獨立）vs 抽獎時讀取當日配額（在事務中）
//
// 範例：
//
// 寫操作（必須在事務中）：
//   txManager.InTransaction(func(ctx TransactionContext) error {
//       used, _ := spinRepo.CountForDay(ctx, memberID, programID, spin.KindFree, today)
//       if used >= program.DailyFreeSpins() {
//           return spin.ErrQuotaExceeded
//       }
//       // ... 鑄造優惠券、寫入抽獎記錄 ...
//       return spinRepo.Append(ctx, record)
//   })
//
// 讀操作（獨立查詢，不需要事務）：
//   count, _ := couponRepo.CountActive(nil, memberID)
//
// 架構原則：
// - 這是一個標記介面（Marker Interface），不暴露任何方法
// - Infrastructure Layer 負責實作具體的事務封裝（GORM）
// - Domain Layer 和 Application Layer 只依賴此介面，不依賴具體實作
// - 保持依賴方向：Infrastructure → Domain（依賴倒置原則）
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
//
// 契約：
// - fn 返回 nil：提交事務
// - fn 返回 error：回滾事務，原樣返回該 error
// - fn panic：回滾事務後重新拋出（由調用者決定如何處理）
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
