package spin

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/member"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/spin"
)

// ===========================
// UC-101: PlaySpin Use Case
// ===========================

// UniformSource 均勻分布於 [0, 1) 的隨機變量來源
//
// 設計原則：隨機性注入點。生產環境使用 DefaultUniformSource，
// 測試注入固定值即可讓轉盤結果完全可預測，不需要 mock Wheel
type UniformSource func() float64

// DefaultUniformSource 生產環境預設隨機來源（math/rand/v2，無需手動播種）
func DefaultUniformSource() float64 {
	return rand.Float64()
}

// PlaySpinCommand 執行抽獎指令（Input DTO）
type PlaySpinCommand struct {
	MemberID string // 會員 ID (UUID)
	Kind     string // 抽獎種類：FREE 或 POINTS_EXCHANGE
}

// PlaySpinResult 抽獎結果（Output DTO）
//
// SlotIndex 供前端轉盤動畫定位；WonCoupon 為 false 時
// 優惠券欄位皆為零值（銘謝惠顧）
type PlaySpinResult struct {
	SpinID     string
	SlotIndex  int
	RewardID   string
	RewardName string
	RewardKind string

	WonCoupon       bool
	CouponID        string
	CouponCode      string
	CouponExpiresAt time.Time

	PointsSpent        int
	PointsBalance      int
	FreeSpinsRemaining int
	CanExchange        bool // 扣減後的餘額是否仍足夠再一次積分兌換
}

// PlaySpinUseCase 執行抽獎 Use Case 接口
//
// 業務規則：
// 1. 會員必須存在、活動必須進行中（否則 fail closed）
// 2. FREE：當日（UTC 日界）免費次數未用盡
// 3. POINTS_EXCHANGE：可用積分 >= 活動的 PointsPerSpin
// 4. 配額檢查 / 積分扣減、轉盤抽取、優惠券鑄造、抽獎記錄寫入
//    構成單一原子單元：任一步驟失敗，全部回滾，不留部分效果
type PlaySpinUseCase interface {
	Execute(cmd PlaySpinCommand) (*PlaySpinResult, error)
}

// ===========================
// PlaySpinUseCaseImpl
// ===========================

// PlaySpinUseCaseImpl 執行抽獎 Use Case 實作
//
// 職責：
// 1. 驗證輸入並轉換為 Value Object
// 2. 在事務中編排前置條件檢查、抽取、鑄造、記錄
// 3. 業務邏輯本身在 Domain Layer（Wheel、Coupon、SpinRecord）
type PlaySpinUseCaseImpl struct {
	memberRepo  member.MemberRepository
	programRepo promotion.ProgramRepository
	rewardRepo  promotion.RewardRepository
	spinRepo    spin.SpinRecordRepository
	couponRepo  coupon.CouponRepository
	txManager   shared.TransactionManager

	wheel   *promotion.Wheel
	codeGen *coupon.CodeGenerator
	clock   shared.Clock
	uniform UniformSource
	logger  zerolog.Logger
}

// NewPlaySpinUseCase 創建 PlaySpinUseCase 實例
func NewPlaySpinUseCase(
	memberRepo member.MemberRepository,
	programRepo promotion.ProgramRepository,
	rewardRepo promotion.RewardRepository,
	spinRepo spin.SpinRecordRepository,
	couponRepo coupon.CouponRepository,
	txManager shared.TransactionManager,
	codeGen *coupon.CodeGenerator,
	clock shared.Clock,
	uniform UniformSource,
	logger zerolog.Logger,
) PlaySpinUseCase {
	return &PlaySpinUseCaseImpl{
		memberRepo:  memberRepo,
		programRepo: programRepo,
		rewardRepo:  rewardRepo,
		spinRepo:    spinRepo,
		couponRepo:  couponRepo,
		txManager:   txManager,
		wheel:       promotion.NewWheel(),
		codeGen:     codeGen,
		clock:       clock,
		uniform:     uniform,
		logger:      logger,
	}
}

// Execute 執行抽獎
//
// 業務流程（全部在同一事務中）：
// 1. 載入會員與進行中活動（快照語義，管理端編輯即時生效）
// 2. 依種類檢查並消耗資格：
//    - FREE: 當日計數 < DailyFreeSpins，否則 ErrQuotaExceeded
//    - POINTS_EXCHANGE: 條件式扣減 PointsPerSpin，否則 ErrInsufficientPoints
// 3. 以會員當下等級調整權重，抽取中獎槽位
// 4. 中獎且非銘謝惠顧時鑄造優惠券（代碼碰撞重試，上限 MaxCodeAttempts）
// 5. 寫入抽獎審計記錄
func (uc *PlaySpinUseCaseImpl) Execute(cmd PlaySpinCommand) (*PlaySpinResult, error) {
	// Step 1: 驗證輸入並轉換為 Value Object
	memberID, err := member.MemberIDFromString(cmd.MemberID)
	if err != nil {
		return nil, err
	}
	kind, err := spin.SpinKindFromString(cmd.Kind)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	today := shared.DateOf(now)

	var result *PlaySpinResult

	// Step 2: 原子單元
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		m, err := uc.memberRepo.FindByID(ctx, memberID)
		if err != nil {
			return err
		}

		program, err := uc.programRepo.FindRunning(ctx, now)
		if err != nil {
			return err
		}

		rewards, err := uc.rewardRepo.FindActiveByProgram(ctx, program.ProgramID())
		if err != nil {
			return err
		}
		if len(rewards) == 0 {
			// 啟用中的獎項集合為空視同活動未開放（fail closed）
			return promotion.ErrProgramUnavailable.WithContext(
				"reason", "active reward set is empty",
				"program_id", program.ProgramID().String(),
			)
		}

		// Step 2a: 消耗資格
		pointsSpent := 0
		switch kind {
		case spin.KindFree:
			used, err := uc.spinRepo.CountForDay(ctx, memberID, program.ProgramID(), spin.KindFree, today)
			if err != nil {
				return err
			}
			if used >= program.DailyFreeSpins() {
				return spin.ErrQuotaExceeded.WithContext(
					"member_id", memberID.String(),
					"used_today", used,
					"daily_limit", program.DailyFreeSpins(),
				)
			}
		case spin.KindPointsExchange:
			cost, err := member.NewPoints(program.PointsPerSpin())
			if err != nil {
				return err
			}
			if err := uc.memberRepo.DebitPoints(ctx, memberID, cost); err != nil {
				return err
			}
			pointsSpent = program.PointsPerSpin()
		}

		// Step 3: 轉盤抽取（等級在抽獎時讀取，不跨請求快取）
		pick, err := uc.wheel.Pick(rewards, m.Tier(), uc.uniform())
		if err != nil {
			return err
		}
		if pick.Degenerate {
			uc.logger.Warn().
				Str("program_id", program.ProgramID().String()).
				Str("tier", m.Tier().String()).
				Msg("所有獎項在此等級的實際權重皆為 0，固定落在最後一個槽位")
		}
		won := rewards[pick.Index]

		// Step 4: 鑄造優惠券（NO_REWARD 不鑄造）
		var minted *coupon.Coupon
		if won.MintsCoupon() {
			minted, err = uc.mintCoupon(ctx, memberID, won, now)
			if err != nil {
				return err
			}
		}

		// Step 5: 寫入審計記錄
		var couponID coupon.CouponID
		if minted != nil {
			couponID = minted.CouponID()
		}
		record, err := spin.NewSpinRecord(
			memberID, program.ProgramID(), won.RewardID(),
			couponID, kind, pointsSpent, now,
		)
		if err != nil {
			return err
		}
		if err := uc.spinRepo.Append(ctx, record); err != nil {
			return err
		}

		// 組裝結果（事務內重讀剩餘次數與餘額，保證與本次提交一致）
		usedAfter, err := uc.spinRepo.CountForDay(ctx, memberID, program.ProgramID(), spin.KindFree, today)
		if err != nil {
			return err
		}
		remaining := program.DailyFreeSpins() - usedAfter
		if remaining < 0 {
			remaining = 0
		}

		balance := m.AvailablePoints().Value() - pointsSpent

		result = &PlaySpinResult{
			SpinID:             record.SpinID().String(),
			SlotIndex:          pick.Index,
			RewardID:           won.RewardID().String(),
			RewardName:         won.Name(),
			RewardKind:         string(won.Kind()),
			PointsSpent:        pointsSpent,
			PointsBalance:      balance,
			FreeSpinsRemaining: remaining,
			CanExchange:        balance >= program.PointsPerSpin(),
		}
		if minted != nil {
			result.WonCoupon = true
			result.CouponID = minted.CouponID().String()
			result.CouponCode = minted.Code()
			result.CouponExpiresAt = minted.ExpiresAt()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// mintCoupon 以獎項條款鑄造優惠券
//
// 折扣條款在鑄造當下複製，之後編輯獎項不回溯已發出的券。
// 代碼唯一性由資料庫唯一索引保證；碰撞時重新生成，
// 重試 coupon.MaxCodeAttempts 次後返回 ErrCodePoolSaturated
func (uc *PlaySpinUseCaseImpl) mintCoupon(
	ctx shared.TransactionContext,
	ownerID member.MemberID,
	won *promotion.Reward,
	now time.Time,
) (*coupon.Coupon, error) {
	terms, err := coupon.NewDiscountTerms(
		coupon.DiscountKind(won.Kind()),
		won.Value(),
		won.MaxDiscount(),
		won.MinOrderAmount(),
	)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < coupon.MaxCodeAttempts; attempt++ {
		code, err := uc.codeGen.Generate()
		if err != nil {
			return nil, err
		}
		c, err := coupon.MintCoupon(
			code, ownerID,
			won.ProgramID(), won.RewardID(),
			terms, won.CouponValidDays(), now,
		)
		if err != nil {
			return nil, err
		}
		err = uc.couponRepo.Save(ctx, c)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, coupon.ErrCodeAlreadyExists) {
			return nil, err
		}
		uc.logger.Debug().
			Str("code", code).
			Int("attempt", attempt+1).
			Msg("優惠券代碼碰撞，重新生成")
	}

	return nil, coupon.ErrCodePoolSaturated.WithContext(
		"owner_id", ownerID.String(),
		"reward_id", won.RewardID().String(),
		"attempts", coupon.MaxCodeAttempts,
	)
}
