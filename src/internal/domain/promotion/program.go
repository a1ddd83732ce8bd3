package promotion

import (
	"strings"
	"time"
)

// ===========================
// Program 聚合根
// ===========================

// Program 抽獎活動聚合根
//
// 一個時間區間內的促銷活動設定，定義抽獎經濟：
// - DailyFreeSpins: 每人每日免費抽獎次數上限（>= 0）
// - PointsPerSpin: 每次積分兌換抽獎的成本（>= 0）
//
// 生命週期：由管理端建立與編輯；抽獎引擎視角為唯讀。
// 查詢時刻最多只有一個「進行中」的活動；若無，功能呈現「未開放」。
//
// 設計原則（動態設定 × 熱路徑）：
// 每次抽獎都將活動與獎項載入為不可變快照，而非長駐快取的單例，
// 因此管理端編輯無需任何跨程序協調即可生效
type Program struct {
	programID      ProgramID
	name           string
	active         bool
	startAt        time.Time
	endAt          time.Time
	dailyFreeSpins int
	pointsPerSpin  int

	createdAt time.Time
	updatedAt time.Time
}

// NewProgram 創建新的抽獎活動
//
// 業務規則：
// - 名稱不能為空
// - endAt 必須晚於 startAt
// - dailyFreeSpins >= 0、pointsPerSpin >= 0
func NewProgram(
	name string,
	startAt, endAt time.Time,
	dailyFreeSpins, pointsPerSpin int,
) (*Program, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidProgramConfig.WithContext("reason", "name cannot be empty")
	}
	if !endAt.After(startAt) {
		return nil, ErrInvalidProgramConfig.WithContext(
			"reason", "endAt must be after startAt",
			"start_at", startAt,
			"end_at", endAt,
		)
	}
	if dailyFreeSpins < 0 {
		return nil, ErrInvalidProgramConfig.WithContext(
			"reason", "dailyFreeSpins cannot be negative",
			"daily_free_spins", dailyFreeSpins,
		)
	}
	if pointsPerSpin < 0 {
		return nil, ErrInvalidProgramConfig.WithContext(
			"reason", "pointsPerSpin cannot be negative",
			"points_per_spin", pointsPerSpin,
		)
	}

	now := time.Now()
	return &Program{
		programID:      NewProgramID(),
		name:           name,
		active:         true,
		startAt:        startAt,
		endAt:          endAt,
		dailyFreeSpins: dailyFreeSpins,
		pointsPerSpin:  pointsPerSpin,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

// ProgramID 獲取活動 ID
func (p *Program) ProgramID() ProgramID { return p.programID }

// Name 獲取活動名稱
func (p *Program) Name() string { return p.name }

// Active 獲取啟用旗標
func (p *Program) Active() bool { return p.active }

// StartAt 獲取活動起始時間
func (p *Program) StartAt() time.Time { return p.startAt }

// EndAt 獲取活動結束時間
func (p *Program) EndAt() time.Time { return p.endAt }

// DailyFreeSpins 獲取每日免費抽獎次數上限
func (p *Program) DailyFreeSpins() int { return p.dailyFreeSpins }

// PointsPerSpin 獲取每次積分兌換抽獎的成本
func (p *Program) PointsPerSpin() int { return p.pointsPerSpin }

// CreatedAt 獲取創建時間
func (p *Program) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt 獲取最後更新時間
func (p *Program) UpdatedAt() time.Time { return p.updatedAt }

// IsRunning 判斷活動在指定時刻是否進行中
//
// 業務規則：active 旗標為真 且 startAt <= now < endAt
func (p *Program) IsRunning(now time.Time) bool {
	return p.active && !now.Before(p.startAt) && now.Before(p.endAt)
}

// ===========================
// 命令方法（管理端設定，不在抽獎熱路徑上）
// ===========================

// Rename 修改活動名稱
func (p *Program) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidProgramConfig.WithContext("reason", "name cannot be empty")
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

// SetActive 設定啟用旗標
func (p *Program) SetActive(active bool) {
	p.active = active
	p.updatedAt = time.Now()
}

// Reschedule 修改活動時間區間
func (p *Program) Reschedule(startAt, endAt time.Time) error {
	if !endAt.After(startAt) {
		return ErrInvalidProgramConfig.WithContext(
			"reason", "endAt must be after startAt",
			"start_at", startAt,
			"end_at", endAt,
		)
	}
	p.startAt = startAt
	p.endAt = endAt
	p.updatedAt = time.Now()
	return nil
}

// UpdateEconomics 修改抽獎經濟設定
//
// 注意：修改只影響之後的抽獎；已鑄造的優惠券與已寫入的抽獎記錄不受影響
func (p *Program) UpdateEconomics(dailyFreeSpins, pointsPerSpin int) error {
	if dailyFreeSpins < 0 {
		return ErrInvalidProgramConfig.WithContext(
			"reason", "dailyFreeSpins cannot be negative",
			"daily_free_spins", dailyFreeSpins,
		)
	}
	if pointsPerSpin < 0 {
		return ErrInvalidProgramConfig.WithContext(
			"reason", "pointsPerSpin cannot be negative",
			"points_per_spin", pointsPerSpin,
		)
	}
	p.dailyFreeSpins = dailyFreeSpins
	p.pointsPerSpin = pointsPerSpin
	p.updatedAt = time.Now()
	return nil
}

// ===========================
// 聚合重建方法（僅供 Infrastructure Layer 使用）
// ===========================

// ReconstructProgram 從持久化存儲重建活動聚合
func ReconstructProgram(
	programID ProgramID,
	name string,
	active bool,
	startAt, endAt time.Time,
	dailyFreeSpins, pointsPerSpin int,
	createdAt, updatedAt time.Time,
) (*Program, error) {
	if programID.IsEmpty() {
		return nil, ErrInvalidProgramID.WithContext("reason", "invalid program ID in database")
	}
	if dailyFreeSpins < 0 || pointsPerSpin < 0 {
		return nil, ErrInvalidProgramConfig.WithContext(
			"reason", "negative economics in database",
			"daily_free_spins", dailyFreeSpins,
			"points_per_spin", pointsPerSpin,
		)
	}

	return &Program{
		programID:      programID,
		name:           name,
		active:         active,
		startAt:        startAt,
		endAt:          endAt,
		dailyFreeSpins: dailyFreeSpins,
		pointsPerSpin:  pointsPerSpin,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}
