package coupon

import (
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// Coupon Repository 介面
// ===========================

// CouponRepository 優惠券倉儲介面
//
// 寫入權屬：優惠券狀態只能經由本倉儲變更；結帳協作方只能透過
// 核銷 Use Case 請求轉換，永不直接改寫狀態。
//
// 併發契約（恰好一個贏家）：
// MarkUsed / MarkExpired 必須實作為條件式 UPDATE（WHERE status = 'ACTIVE'），
// 以受影響列數判斷轉換是否發生。兩個併發核銷同一張券的請求，
// 恰好一個觀察到 updated = true。
type CouponRepository interface {
	// Save 保存新優惠券
	// 錯誤：ErrCodeAlreadyExists（代碼唯一索引衝突，調用者重新生成代碼）
	Save(ctx shared.TransactionContext, c *Coupon) error

	// FindByCode 根據代碼查找優惠券
	// 返回：找到的優惠券，或 ErrCouponNotFound
	FindByCode(ctx shared.TransactionContext, code string) (*Coupon, error)

	// ListByOwner 查詢會員持有的優惠券（新到舊）
	// onlyActive 為真時只返回 ACTIVE 狀態的券
	ListByOwner(ctx shared.TransactionContext, ownerID member.MemberID, onlyActive bool) ([]*Coupon, error)

	// CountActive 計算會員持有的 ACTIVE 優惠券數量
	CountActive(ctx shared.TransactionContext, ownerID member.MemberID) (int, error)

	// MarkUsed 條件式核銷：status ACTIVE → USED，綁定訂單引用
	//
	// 返回 updated = false 表示條件不成立（已被併發核銷、已過期清掃、
	// 或代碼不存在）：無任何變更發生
	MarkUsed(ctx shared.TransactionContext, couponID CouponID, orderRef string, usedAt time.Time) (bool, error)

	// MarkExpired 條件式過期：status ACTIVE → EXPIRED
	//
	// 驗證流程的惰性過期發現使用此方法；終態上的呼叫返回 updated = false
	MarkExpired(ctx shared.TransactionContext, couponID CouponID) (bool, error)

	// ExpireDue 批次清掃：所有到期時間已過且仍為 ACTIVE 的券轉為 EXPIRED
	//
	// 每日排程觸發；多次執行冪等（第二次掃不到任何 ACTIVE 到期券）
	// 返回本次轉換的數量
	ExpireDue(ctx shared.TransactionContext, now time.Time) (int64, error)
}
