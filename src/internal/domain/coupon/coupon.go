package coupon

import (
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// CouponID 值對象
// ===========================

// CouponMarker 優惠券 ID 標記類型
type CouponMarker struct{}

// CouponID 優惠券的唯一標識符
type CouponID = shared.EntityID[CouponMarker]

// NewCouponID 生成新的優惠券 ID（UUID v4）
func NewCouponID() CouponID {
	return shared.NewEntityID[CouponMarker]()
}

// CouponIDFromString 從字串解析優惠券 ID
func CouponIDFromString(s string) (CouponID, error) {
	return shared.EntityIDFromString[CouponMarker](s, ErrInvalidCouponID)
}

// ===========================
// Status 狀態機
// ===========================

// Status 優惠券狀態
//
// 狀態機：
//   ACTIVE ──(成功核銷，綁定一張訂單)──> USED     （終態）
//   ACTIVE ──(過期：驗證時惰性發現，或排程清掃)──> EXPIRED （終態）
//
// USED 與 EXPIRED 永不再轉換（終態冪等）
type Status string

// 狀態常量
const (
	StatusActive  Status = "ACTIVE"
	StatusUsed    Status = "USED"
	StatusExpired Status = "EXPIRED"
)

// StatusFromString 從字串解析優惠券狀態
func StatusFromString(value string) (Status, error) {
	switch Status(value) {
	case StatusActive, StatusUsed, StatusExpired:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus.WithContext("input", value)
	}
}

// ===========================
// Coupon 聚合根
// ===========================

// Coupon 優惠券聚合根
//
// 一張由中獎抽獎鑄造、綁定擁有者、限時單次使用的折扣工具。
//
// 不變條件：
// - 擁有者終身不變（ownership never transfers）
// - 折扣條款在鑄造當下凍結（獎項後續編輯不回溯）
// - 狀態只沿 ACTIVE→USED 或 ACTIVE→EXPIRED 轉換
// - orderRef 恰在轉為 USED 時綁定，且只綁定一張訂單
type Coupon struct {
	couponID CouponID
	code     string
	ownerID  member.MemberID

	// 鑄造來源（審計用途）
	programID promotion.ProgramID
	rewardID  promotion.RewardID

	terms     DiscountTerms
	issuedAt  time.Time
	expiresAt time.Time
	status    Status
	orderRef  string
	usedAt    *time.Time

	events []shared.DomainEvent
}

// MintCoupon 鑄造優惠券（中獎抽獎的產物）
//
// 業務規則：
// - code 非空（由 CodeGenerator 生成，唯一性由資料庫唯一索引保證）
// - validDays >= 1，expiresAt = now + validDays 天
// - 初始狀態 ACTIVE
//
// 副作用：發布 CouponMintedEvent
func MintCoupon(
	code string,
	ownerID member.MemberID,
	programID promotion.ProgramID,
	rewardID promotion.RewardID,
	terms DiscountTerms,
	validDays int,
	now time.Time,
) (*Coupon, error) {
	if code == "" {
		return nil, ErrInvalidCode.WithContext("reason", "code cannot be empty")
	}
	if ownerID.IsEmpty() {
		return nil, ErrInvalidCouponID.WithContext("reason", "owner cannot be empty")
	}
	if validDays < 1 {
		return nil, ErrInvalidTerms.WithContext(
			"reason", "validDays must be at least 1",
			"valid_days", validDays,
		)
	}

	c := &Coupon{
		couponID:  NewCouponID(),
		code:      code,
		ownerID:   ownerID,
		programID: programID,
		rewardID:  rewardID,
		terms:     terms,
		issuedAt:  now,
		expiresAt: now.AddDate(0, 0, validDays),
		status:    StatusActive,
		events:    make([]shared.DomainEvent, 0),
	}

	c.addEvent(NewCouponMintedEvent(c.couponID, ownerID, code))
	return c, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

// CouponID 獲取優惠券 ID
func (c *Coupon) CouponID() CouponID { return c.couponID }

// Code 獲取人類可讀代碼
func (c *Coupon) Code() string { return c.code }

// OwnerID 獲取擁有者會員 ID
func (c *Coupon) OwnerID() member.MemberID { return c.ownerID }

// ProgramID 獲取鑄造來源活動 ID
func (c *Coupon) ProgramID() promotion.ProgramID { return c.programID }

// RewardID 獲取鑄造來源獎項 ID
func (c *Coupon) RewardID() promotion.RewardID { return c.rewardID }

// Terms 獲取折扣條款（鑄造當下凍結）
func (c *Coupon) Terms() DiscountTerms { return c.terms }

// IssuedAt 獲取鑄造時間
func (c *Coupon) IssuedAt() time.Time { return c.issuedAt }

// ExpiresAt 獲取到期時間
func (c *Coupon) ExpiresAt() time.Time { return c.expiresAt }

// Status 獲取當前狀態
func (c *Coupon) Status() Status { return c.status }

// OrderRef 獲取消費此券的訂單引用（USED 之前為空）
func (c *Coupon) OrderRef() string { return c.orderRef }

// UsedAt 獲取核銷時間（USED 之前為 nil）
func (c *Coupon) UsedAt() *time.Time { return c.usedAt }

// IsExpired 判斷指定時刻是否已過到期時間
//
// 注意：這是時間判斷，與 status 欄位獨立，過期可能尚未被惰性發現或清掃
func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

// ===========================
// 命令方法（狀態轉換）
// ===========================

// Validate 結帳前驗證（唯讀，不改變狀態）
//
// 檢查順序（第一個失敗即返回）：
// 1. 擁有者：優惠券不屬於此會員 → ErrCouponNotOwned
// 2. 終態：USED → ErrCouponAlreadyUsed；EXPIRED → ErrCouponExpired
// 3. 到期時間已過（即使狀態仍為 ACTIVE）→ ErrCouponExpired
//    （調用者應隨後惰性轉換狀態，見 Use Case）
// 4. 折扣條款：低於最低訂單門檻 → ErrBelowMinOrder（由 DiscountFor 檢查）
func (c *Coupon) Validate(requesterID member.MemberID, now time.Time) error {
	if !c.ownerID.Equals(requesterID) {
		return ErrCouponNotOwned.WithContext(
			"code", c.code,
			"requester", requesterID.String(),
		)
	}

	switch c.status {
	case StatusUsed:
		return ErrCouponAlreadyUsed.WithContext("code", c.code)
	case StatusExpired:
		return ErrCouponExpired.WithContext("code", c.code)
	}

	if c.IsExpired(now) {
		return ErrCouponExpired.WithContext(
			"code", c.code,
			"expired_at", c.expiresAt,
		)
	}

	return nil
}

// Redeem 核銷：ACTIVE → USED 並綁定訂單引用
//
// 前置條件：Validate 通過（狀態 ACTIVE、未過期、擁有者正確）
// 終態冪等：USED / EXPIRED 上的核銷請求返回錯誤，不產生任何變更
//
// 併發注意：聚合方法保證業務規則；「兩個併發核銷恰好一個成功」由
// Repository.MarkUsed 的條件式 UPDATE 保證（見 Repository 契約）
func (c *Coupon) Redeem(requesterID member.MemberID, orderRef string, now time.Time) error {
	if err := c.Validate(requesterID, now); err != nil {
		return err
	}

	c.status = StatusUsed
	c.orderRef = orderRef
	usedAt := now
	c.usedAt = &usedAt

	c.addEvent(NewCouponRedeemedEvent(c.couponID, c.ownerID, orderRef))
	return nil
}

// MarkExpired 過期轉換：ACTIVE → EXPIRED
//
// 觸發來源：驗證時的惰性發現，或每日排程清掃
// 業務規則：只從 ACTIVE 轉換；終態上的呼叫是錯誤（調用者應忽略已終態的券）
func (c *Coupon) MarkExpired() error {
	if c.status != StatusActive {
		return ErrInvalidStatus.WithContext(
			"reason", "only ACTIVE coupons can expire",
			"status", string(c.status),
		)
	}

	c.status = StatusExpired
	c.addEvent(NewCouponExpiredEvent(c.couponID, c.ownerID))
	return nil
}

// ===========================
// 事件管理
// ===========================

func (c *Coupon) addEvent(event shared.DomainEvent) {
	c.events = append(c.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
func (c *Coupon) PullEvents() []shared.DomainEvent {
	events := c.events
	c.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// 聚合重建方法（僅供 Infrastructure Layer 使用）
// ===========================

// ReconstructCoupon 從持久化存儲重建優惠券聚合
func ReconstructCoupon(
	couponID CouponID,
	code string,
	ownerID member.MemberID,
	programID promotion.ProgramID,
	rewardID promotion.RewardID,
	terms DiscountTerms,
	issuedAt, expiresAt time.Time,
	status Status,
	orderRef string,
	usedAt *time.Time,
) (*Coupon, error) {
	if couponID.IsEmpty() {
		return nil, ErrInvalidCouponID.WithContext("reason", "invalid coupon ID in database")
	}
	if code == "" {
		return nil, ErrInvalidCode.WithContext("reason", "empty code in database")
	}
	parsedStatus, err := StatusFromString(string(status))
	if err != nil {
		return nil, err
	}

	return &Coupon{
		couponID:  couponID,
		code:      code,
		ownerID:   ownerID,
		programID: programID,
		rewardID:  rewardID,
		terms:     terms,
		issuedAt:  issuedAt,
		expiresAt: expiresAt,
		status:    parsedStatus,
		orderRef:  orderRef,
		usedAt:    usedAt,
		events:    make([]shared.DomainEvent, 0),
	}, nil
}
