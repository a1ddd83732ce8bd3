package member

import (
	"time"

	"github.com/google/uuid"
)

// ===========================
// Member 領域事件
// ===========================

// MemberRegisteredEvent 會員註冊事件
type MemberRegisteredEvent struct {
	eventID    string
	memberID   MemberID
	tier       Tier
	occurredAt time.Time
}

// NewMemberRegisteredEvent 創建會員註冊事件
func NewMemberRegisteredEvent(memberID MemberID, tier Tier) *MemberRegisteredEvent {
	return &MemberRegisteredEvent{
		eventID:    uuid.New().String(),
		memberID:   memberID,
		tier:       tier,
		occurredAt: time.Now(),
	}
}

func (e *MemberRegisteredEvent) EventID() string        { return e.eventID }
func (e *MemberRegisteredEvent) EventType() string      { return "member.registered" }
func (e *MemberRegisteredEvent) OccurredAt() time.Time  { return e.occurredAt }
func (e *MemberRegisteredEvent) AggregateID() string    { return e.memberID.String() }
func (e *MemberRegisteredEvent) Tier() Tier             { return e.tier }

// PointsDebitedEvent 積分扣減事件（積分兌換抽獎）
type PointsDebitedEvent struct {
	eventID    string
	memberID   MemberID
	amount     Points
	reason     string
	occurredAt time.Time
}

// NewPointsDebitedEvent 創建積分扣減事件
func NewPointsDebitedEvent(memberID MemberID, amount Points, reason string) *PointsDebitedEvent {
	return &PointsDebitedEvent{
		eventID:    uuid.New().String(),
		memberID:   memberID,
		amount:     amount,
		reason:     reason,
		occurredAt: time.Now(),
	}
}

func (e *PointsDebitedEvent) EventID() string       { return e.eventID }
func (e *PointsDebitedEvent) EventType() string     { return "member.points_debited" }
func (e *PointsDebitedEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *PointsDebitedEvent) AggregateID() string   { return e.memberID.String() }
func (e *PointsDebitedEvent) Amount() Points        { return e.amount }
func (e *PointsDebitedEvent) Reason() string        { return e.reason }
