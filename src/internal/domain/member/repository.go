package member

import "github.com/jackyeh168/lucky_spin/src/internal/domain/shared"

// ===========================
// Member Repository 介面
// ===========================

// MemberRepository 會員倉儲介面
//
// 設計原則：
// 1. 依賴倒置原則（DIP）：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 事務支持：使用 TransactionContext 封裝事務，避免基礎設施洩漏
//
// 事務使用範例（積分兌換抽獎的原子單元）：
//   txManager.InTransaction(func(ctx shared.TransactionContext) error {
//       if err := repo.DebitPoints(ctx, memberID, cost); err != nil {
//           return err // 餘額不足，整個抽獎回滾
//       }
//       // ... 轉盤抽取、鑄造優惠券、寫入抽獎記錄 ...
//       return nil
//   })
type MemberRepository interface {
	// Save 保存新會員
	// 錯誤：ErrMemberAlreadyExists（如果 MemberID 已存在）
	Save(ctx shared.TransactionContext, m *Member) error

	// FindByID 根據會員 ID 查找會員
	// 返回：找到的會員，或 ErrMemberNotFound
	FindByID(ctx shared.TransactionContext, memberID MemberID) (*Member, error)

	// Update 更新會員（整個聚合寫回）
	// 錯誤：ErrMemberNotFound（如果會員不存在）
	Update(ctx shared.TransactionContext, m *Member) error

	// DebitPoints 條件式扣減積分（樂觀 CAS）
	//
	// 實作要求：單一條件式 UPDATE：只有在可用餘額 >= amount 時才扣減，
	// 以 RowsAffected 判斷成敗。這使「檢查餘額」與「扣減」成為同一個
	// 原子操作，即使在不支援 SELECT FOR UPDATE 的資料庫上也不會超扣。
	//
	// 錯誤：
	// - ErrInsufficientPoints: 餘額不足（無任何變更）
	// - ErrMemberNotFound: 會員不存在
	DebitPoints(ctx shared.TransactionContext, memberID MemberID, amount Points) error
}
