package member

import (
	"strings"
	"time"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// Member 聚合根
// ===========================

// Member 會員聚合根（忠誠度帳本切片）
//
// 聚合邊界：
// - 會員識別（MemberID, DisplayName）
// - 會員等級（Tier）：由外部忠誠度子系統晉升，本引擎只讀
// - 積分帳本（EarnedPoints / UsedPoints）：本引擎唯一允許的寫入是
//   「以活動設定的每次兌換成本扣減」，永不增加
//
// 業務不變條件：
// - EarnedPoints >= 0（累積獲得的積分總數）
// - UsedPoints >= 0（累積使用的積分總數）
// - UsedPoints <= EarnedPoints（使用積分不能超過獲得積分）
// - AvailablePoints = EarnedPoints - UsedPoints（派生值，永遠 >= 0）
//
// 設計原則：
// - Tell, Don't Ask：封裝業務邏輯，不暴露內部狀態供外部判斷
// - 事件驅動：關鍵狀態變更發布領域事件
type Member struct {
	memberID    MemberID
	displayName string
	tier        Tier

	earnedPoints Points
	usedPoints   Points

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewMember 創建新會員
//
// 業務規則：
// - 顯示名稱不能為空
// - 新會員初始積分為 0、等級由註冊來源決定（預設 BRONZE）
// - 發布 MemberRegistered 事件
func NewMember(displayName string, tier Tier) (*Member, error) {
	if strings.TrimSpace(displayName) == "" {
		return nil, ErrInvalidDisplayName.WithContext("display_name", displayName)
	}
	if _, err := TierFromString(tier.String()); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &Member{
		memberID:     NewMemberID(),
		displayName:  displayName,
		tier:         tier,
		earnedPoints: newPointsUnchecked(0),
		usedPoints:   newPointsUnchecked(0),
		createdAt:    now,
		updatedAt:    now,
		events:       make([]shared.DomainEvent, 0),
	}

	m.addEvent(NewMemberRegisteredEvent(m.memberID, tier))
	return m, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================
//
// ⚠️ 警告：不應在業務邏輯中使用這些 getter 做判斷
// 正確做法：在聚合根內部提供業務方法（如 DebitPoints 的前置檢查）

// MemberID 獲取會員 ID
func (m *Member) MemberID() MemberID {
	return m.memberID
}

// DisplayName 獲取顯示名稱
func (m *Member) DisplayName() string {
	return m.displayName
}

// Tier 獲取當前會員等級
//
// 業務規則：抽獎引擎必須在抽獎當下讀取，不得跨請求快取
func (m *Member) Tier() Tier {
	return m.tier
}

// EarnedPoints 獲取累積獲得積分
func (m *Member) EarnedPoints() Points {
	return m.earnedPoints
}

// UsedPoints 獲取累積使用積分
func (m *Member) UsedPoints() Points {
	return m.usedPoints
}

// CreatedAt 獲取創建時間
func (m *Member) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt 獲取最後更新時間
func (m *Member) UpdatedAt() time.Time {
	return m.updatedAt
}

// AvailablePoints 獲取可用積分（派生值）
//
// 不變條件保證：
// - 由於 usedPoints <= earnedPoints 不變條件，結果永遠 >= 0
func (m *Member) AvailablePoints() Points {
	available, _ := m.earnedPoints.Subtract(m.usedPoints)
	return available
}

// CanAfford 判斷是否足以支付指定成本（積分兌換抽獎的前置條件）
func (m *Member) CanAfford(cost Points) bool {
	return m.AvailablePoints().GreaterThanOrEqual(cost)
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// EarnPoints 獲得積分
//
// 注意：積分的賺取政策屬於外部忠誠度子系統；抽獎引擎本身永不調用此方法。
// 保留在聚合上是因為帳本切片的完整性（註冊贈點、測試佈置）需要它。
func (m *Member) EarnPoints(amount Points) {
	// 只增加 earnedPoints，永遠不會違反 usedPoints <= earnedPoints
	m.earnedPoints = m.earnedPoints.Add(amount)
	m.updatedAt = time.Now()
}

// DebitPoints 扣減積分（積分兌換抽獎的資金來源）
//
// 業務規則：
// - 必須先檢查可用積分是否足夠（前置條件）
// - 扣減數量固定等於活動設定的 PointsPerSpin，由 Use Case 保證
//
// 副作用：
// - 更新 usedPoints（累加）
// - 發布 PointsDebitedEvent
//
// 不變條件維護：前置檢查確保扣減後 usedPoints <= earnedPoints
func (m *Member) DebitPoints(amount Points, reason string) error {
	if amount.GreaterThan(m.AvailablePoints()) {
		return ErrInsufficientPoints.WithContext(
			"requested", amount.Value(),
			"available", m.AvailablePoints().Value(),
			"reason", reason,
		)
	}

	m.usedPoints = m.usedPoints.Add(amount)
	m.updatedAt = time.Now()

	m.addEvent(NewPointsDebitedEvent(m.memberID, amount, reason))
	return nil
}

// ===========================
// 事件管理
// ===========================

func (m *Member) addEvent(event shared.DomainEvent) {
	m.events = append(m.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
//
// 設計原則：
// - Pull 模式：聚合根不依賴 EventPublisher
// - 只讀取一次：獲取後清空，避免重複發布
func (m *Member) PullEvents() []shared.DomainEvent {
	events := m.events
	m.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// 聚合重建方法（僅供 Infrastructure Layer 使用）
// ===========================

// ReconstructMember 從持久化存儲重建聚合根
//
// 與 NewMember 的區別：
// - New: 創建新聚合，執行完整驗證，發布 MemberRegistered 事件
// - Reconstruct: 重建已存在的聚合，不發布事件（事件已發生過）
//
// 重要：即使是從資料庫重建，也必須驗證不變條件，防止損壞資料污染領域層
func ReconstructMember(
	memberID MemberID,
	displayName string,
	tier Tier,
	earnedPoints int,
	usedPoints int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Member, error) {
	if memberID.IsEmpty() {
		return nil, ErrInvalidMemberID.WithContext("reason", "invalid member ID in database")
	}

	parsedTier, err := TierFromString(tier.String())
	if err != nil {
		return nil, err
	}

	earned, err := NewPoints(earnedPoints)
	if err != nil {
		return nil, ErrCorruptedPoints.WithContext(
			"field", "earned_points",
			"value", earnedPoints,
		)
	}

	used, err := NewPoints(usedPoints)
	if err != nil {
		return nil, ErrCorruptedPoints.WithContext(
			"field", "used_points",
			"value", usedPoints,
		)
	}

	// 關鍵不變條件：usedPoints <= earnedPoints
	if used.GreaterThan(earned) {
		return nil, ErrCorruptedPoints.WithContext(
			"used_points", usedPoints,
			"earned_points", earnedPoints,
		)
	}

	return &Member{
		memberID:     memberID,
		displayName:  displayName,
		tier:         parsedTier,
		earnedPoints: earned,
		usedPoints:   used,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		events:       make([]shared.DomainEvent, 0),
	}, nil
}
