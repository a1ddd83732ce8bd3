package coupon

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
)

// ===========================
// Coupon 領域事件
// ===========================

// CouponMintedEvent 優惠券鑄造事件
type CouponMintedEvent struct {
	eventID    string
	couponID   CouponID
	ownerID    member.MemberID
	code       string
	occurredAt time.Time
}

// NewCouponMintedEvent 創建鑄造事件
func NewCouponMintedEvent(couponID CouponID, ownerID member.MemberID, code string) *CouponMintedEvent {
	return &CouponMintedEvent{
		eventID:    uuid.New().String(),
		couponID:   couponID,
		ownerID:    ownerID,
		code:       code,
		occurredAt: time.Now(),
	}
}

func (e *CouponMintedEvent) EventID() string          { return e.eventID }
func (e *CouponMintedEvent) EventType() string        { return "coupon.minted" }
func (e *CouponMintedEvent) OccurredAt() time.Time    { return e.occurredAt }
func (e *CouponMintedEvent) AggregateID() string      { return e.couponID.String() }
func (e *CouponMintedEvent) OwnerID() member.MemberID { return e.ownerID }
func (e *CouponMintedEvent) Code() string             { return e.code }

// CouponRedeemedEvent 優惠券核銷事件
type CouponRedeemedEvent struct {
	eventID    string
	couponID   CouponID
	ownerID    member.MemberID
	orderRef   string
	occurredAt time.Time
}

// NewCouponRedeemedEvent 創建核銷事件
func NewCouponRedeemedEvent(couponID CouponID, ownerID member.MemberID, orderRef string) *CouponRedeemedEvent {
	return &CouponRedeemedEvent{
		eventID:    uuid.New().String(),
		couponID:   couponID,
		ownerID:    ownerID,
		orderRef:   orderRef,
		occurredAt: time.Now(),
	}
}

func (e *CouponRedeemedEvent) EventID() string          { return e.eventID }
func (e *CouponRedeemedEvent) EventType() string        { return "coupon.redeemed" }
func (e *CouponRedeemedEvent) OccurredAt() time.Time    { return e.occurredAt }
func (e *CouponRedeemedEvent) AggregateID() string      { return e.couponID.String() }
func (e *CouponRedeemedEvent) OwnerID() member.MemberID { return e.ownerID }
func (e *CouponRedeemedEvent) OrderRef() string         { return e.orderRef }

// CouponExpiredEvent 優惠券過期事件
type CouponExpiredEvent struct {
	eventID    string
	couponID   CouponID
	ownerID    member.MemberID
	occurredAt time.Time
}

// NewCouponExpiredEvent 創建過期事件
func NewCouponExpiredEvent(couponID CouponID, ownerID member.MemberID) *CouponExpiredEvent {
	return &CouponExpiredEvent{
		eventID:    uuid.New().String(),
		couponID:   couponID,
		ownerID:    ownerID,
		occurredAt: time.Now(),
	}
}

func (e *CouponExpiredEvent) EventID() string          { return e.eventID }
func (e *CouponExpiredEvent) EventType() string        { return "coupon.expired" }
func (e *CouponExpiredEvent) OccurredAt() time.Time    { return e.occurredAt }
func (e *CouponExpiredEvent) AggregateID() string      { return e.couponID.String() }
func (e *CouponExpiredEvent) OwnerID() member.MemberID { return e.ownerID }
