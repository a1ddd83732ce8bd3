package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	apppromotion "github.com/jackyeh168/lucky_spin/src/internal/application/promotion"
)

// ===========================
// 管理端 HTTP Handler
// ===========================

// --- Request / Response DTOs ---

type updateProgramRequest struct {
	Name           string    `json:"name"`
	Active         bool      `json:"active"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	DailyFreeSpins int       `json:"daily_free_spins"`
	PointsPerSpin  int       `json:"points_per_spin"`
}

type updateRewardRequest struct {
	Active          bool               `json:"active"`
	Value           decimal.Decimal    `json:"value"`
	MaxDiscount     *decimal.Decimal   `json:"max_discount,omitempty"`
	MinOrderAmount  *decimal.Decimal   `json:"min_order_amount,omitempty"`
	BaseProbability float64            `json:"base_probability"`
	Multipliers     map[string]float64 `json:"multipliers,omitempty"`
}

type rewardDetailResponse struct {
	RewardID        string             `json:"reward_id"`
	Name            string             `json:"name"`
	Kind            string             `json:"kind"`
	Value           decimal.Decimal    `json:"value"`
	MaxDiscount     *decimal.Decimal   `json:"max_discount,omitempty"`
	MinOrderAmount  *decimal.Decimal   `json:"min_order_amount,omitempty"`
	BaseProbability float64            `json:"base_probability"`
	Multipliers     map[string]float64 `json:"multipliers"`
	CouponValidDays int                `json:"coupon_valid_days"`
	Active          bool               `json:"active"`
	DisplayOrder    int                `json:"display_order"`
}

type programResponse struct {
	ProgramID      string                 `json:"program_id"`
	Name           string                 `json:"name"`
	Active         bool                   `json:"active"`
	StartAt        time.Time              `json:"start_at"`
	EndAt          time.Time              `json:"end_at"`
	DailyFreeSpins int                    `json:"daily_free_spins"`
	PointsPerSpin  int                    `json:"points_per_spin"`
	Rewards        []rewardDetailResponse `json:"rewards"`
}

type updatedResponse struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Handler ---

// AdminHandler 活動與獎項設定端點
type AdminHandler struct {
	getProgram    apppromotion.GetProgramUseCase
	updateProgram apppromotion.UpdateProgramUseCase
	updateReward  apppromotion.UpdateRewardUseCase
	logger        zerolog.Logger
}

// NewAdminHandler 創建 AdminHandler
func NewAdminHandler(
	getProgram apppromotion.GetProgramUseCase,
	updateProgram apppromotion.UpdateProgramUseCase,
	updateReward apppromotion.UpdateRewardUseCase,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		getProgram:    getProgram,
		updateProgram: updateProgram,
		updateReward:  updateReward,
		logger:        logger,
	}
}

// GetProgram 處理 GET /admin/programs/{id}
func (h *AdminHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	result, err := h.getProgram.Execute(apppromotion.GetProgramQuery{
		ProgramID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := programResponse{
		ProgramID:      result.ProgramID,
		Name:           result.Name,
		Active:         result.Active,
		StartAt:        result.StartAt,
		EndAt:          result.EndAt,
		DailyFreeSpins: result.DailyFreeSpins,
		PointsPerSpin:  result.PointsPerSpin,
		Rewards:        make([]rewardDetailResponse, 0, len(result.Rewards)),
	}
	for _, reward := range result.Rewards {
		resp.Rewards = append(resp.Rewards, rewardDetailResponse{
			RewardID:        reward.RewardID,
			Name:            reward.Name,
			Kind:            reward.Kind,
			Value:           reward.Value,
			MaxDiscount:     reward.MaxDiscount,
			MinOrderAmount:  reward.MinOrderAmount,
			BaseProbability: reward.BaseProbability,
			Multipliers:     reward.Multipliers,
			CouponValidDays: reward.CouponValidDays,
			Active:          reward.Active,
			DisplayOrder:    reward.DisplayOrder,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdateProgram 處理 PUT /admin/programs/{id}
func (h *AdminHandler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	var req updateProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorPayload(w, http.StatusBadRequest, "BODY_INVALID", "無法解析請求內容")
		return
	}

	result, err := h.updateProgram.Execute(apppromotion.UpdateProgramCommand{
		ProgramID:      chi.URLParam(r, "id"),
		Name:           req.Name,
		Active:         req.Active,
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
		DailyFreeSpins: req.DailyFreeSpins,
		PointsPerSpin:  req.PointsPerSpin,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, updatedResponse{ID: result.ProgramID, UpdatedAt: result.UpdatedAt})
}

// UpdateReward 處理 PUT /admin/rewards/{id}
func (h *AdminHandler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	var req updateRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorPayload(w, http.StatusBadRequest, "BODY_INVALID", "無法解析請求內容")
		return
	}

	result, err := h.updateReward.Execute(apppromotion.UpdateRewardCommand{
		RewardID:        chi.URLParam(r, "id"),
		Active:          req.Active,
		Value:           req.Value,
		MaxDiscount:     req.MaxDiscount,
		MinOrderAmount:  req.MinOrderAmount,
		BaseProbability: req.BaseProbability,
		Multipliers:     req.Multipliers,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, updatedResponse{ID: result.RewardID, UpdatedAt: result.UpdatedAt})
}
