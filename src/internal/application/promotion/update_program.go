package promotion

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/promotion"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// UC-301: UpdateProgram Use Case (Admin)
// ===========================

// UpdateProgramCommand 更新活動設定指令（Input DTO，整份覆寫）
type UpdateProgramCommand struct {
	ProgramID      string
	Name           string
	Active         bool
	StartAt        time.Time
	EndAt          time.Time
	DailyFreeSpins int
	PointsPerSpin  int
}

// UpdateProgramResult 更新結果（Output DTO）
type UpdateProgramResult struct {
	ProgramID string
	UpdatedAt time.Time
}

// UpdateProgramUseCase 更新活動設定 Use Case 接口（管理端）
//
// 設定立即生效：抽獎熱路徑每次載入活動快照，
// 不需要任何跨程序協調或快取失效
type UpdateProgramUseCase interface {
	Execute(cmd UpdateProgramCommand) (*UpdateProgramResult, error)
}

// UpdateProgramUseCaseImpl 更新活動設定 Use Case 實作
type UpdateProgramUseCaseImpl struct {
	programRepo promotion.ProgramRepository
	txManager   shared.TransactionManager
	logger      zerolog.Logger
}

// NewUpdateProgramUseCase 創建 UpdateProgramUseCase 實例
func NewUpdateProgramUseCase(
	programRepo promotion.ProgramRepository,
	txManager shared.TransactionManager,
	logger zerolog.Logger,
) UpdateProgramUseCase {
	return &UpdateProgramUseCaseImpl{
		programRepo: programRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute 更新活動設定
func (uc *UpdateProgramUseCaseImpl) Execute(cmd UpdateProgramCommand) (*UpdateProgramResult, error) {
	programID, err := promotion.ProgramIDFromString(cmd.ProgramID)
	if err != nil {
		return nil, err
	}

	var result *UpdateProgramResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		program, err := uc.programRepo.FindByID(ctx, programID)
		if err != nil {
			return err
		}

		if err := program.Rename(cmd.Name); err != nil {
			return err
		}
		if err := program.Reschedule(cmd.StartAt, cmd.EndAt); err != nil {
			return err
		}
		if err := program.UpdateEconomics(cmd.DailyFreeSpins, cmd.PointsPerSpin); err != nil {
			return err
		}
		program.SetActive(cmd.Active)

		if err := uc.programRepo.Update(ctx, program); err != nil {
			return err
		}

		uc.logger.Info().
			Str("program_id", programID.String()).
			Bool("active", cmd.Active).
			Int("daily_free_spins", cmd.DailyFreeSpins).
			Int("points_per_spin", cmd.PointsPerSpin).
			Msg("活動設定已更新")

		result = &UpdateProgramResult{
			ProgramID: program.ProgramID().String(),
			UpdatedAt: program.UpdatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
