package spin

import (
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// SpinRecord Repository 介面
// ===========================

// SpinRecordRepository 抽獎記錄倉儲介面（append-only）
//
// 併發契約（每日配額不變條件的基石）：
// CountForDay 與 Append 必須在同一個 TransactionManager.InTransaction
// 事務中執行，且該事務必須提供可序列化（或等效重試）的隔離，
// 使兩個同時到達、只剩一次免費額度的抽獎請求不可能同時觀察到
// 「配額可用」並雙雙提交。
//
//   txManager.InTransaction(func(ctx shared.TransactionContext) error {
//       used, err := repo.CountForDay(ctx, memberID, programID, KindFree, today)
//       if err != nil {
//           return err
//       }
//       if used >= program.DailyFreeSpins() {
//           return ErrQuotaExceeded
//       }
//       // ... 扣積分（兌換）、鑄造優惠券 ...
//       return repo.Append(ctx, record)
//   })
type SpinRecordRepository interface {
	// Append 寫入一筆抽獎記錄（不可變，永不更新或刪除）
	Append(ctx shared.TransactionContext, record *SpinRecord) error

	// CountForDay 計算（會員、活動、種類、UTC 日）的抽獎次數
	//
	// date 為 YYYY-MM-DD 格式（shared.DateOf）
	CountForDay(
		ctx shared.TransactionContext,
		memberID member.MemberID,
		programID promotion.ProgramID,
		kind SpinKind,
		date string,
	) (int, error)

	// CountAllForDay 計算（會員、活動、UTC 日）不分種類的總抽獎次數
	// 用途：抽獎狀態面板的「今日總抽獎次數」
	CountAllForDay(
		ctx shared.TransactionContext,
		memberID member.MemberID,
		programID promotion.ProgramID,
		date string,
	) (int, error)

	// ListByMember 查詢會員的抽獎歷史（新到舊，limit <= 0 表示不限制）
	ListByMember(ctx shared.TransactionContext, memberID member.MemberID, limit int) ([]*SpinRecord, error)
}
