package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	appspin "github.com/jackyeh168/lucky_spin/src/internal/application/spin"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/spin"
)

// ===========================
// 抽獎 HTTP Handler
// ===========================

// --- Response DTOs ---

type slotResponse struct {
	RewardID    string  `json:"reward_id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Probability float64 `json:"probability"`
}

type spinInfoResponse struct {
	ProgramID   string         `json:"program_id"`
	ProgramName string         `json:"program_name"`
	EndAt       time.Time      `json:"end_at"`
	Slots       []slotResponse `json:"slots"`

	Tier               string `json:"tier"`
	FreeSpinsRemaining int    `json:"free_spins_remaining"`
	PointsPerSpin      int    `json:"points_per_spin"`
	PointsBalance      int    `json:"points_balance"`
	CanExchange        bool   `json:"can_exchange"`
	SpinsToday         int    `json:"spins_today"`
	ActiveCoupons      int    `json:"active_coupons"`
}

type wonCouponResponse struct {
	CouponID  string    `json:"coupon_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type spinResultResponse struct {
	SpinID     string `json:"spin_id"`
	SlotIndex  int    `json:"slot_index"`
	RewardID   string `json:"reward_id"`
	RewardName string `json:"reward_name"`
	RewardKind string `json:"reward_kind"`

	Coupon *wonCouponResponse `json:"coupon,omitempty"`

	PointsSpent        int  `json:"points_spent"`
	PointsBalance      int  `json:"points_balance"`
	FreeSpinsRemaining int  `json:"free_spins_remaining"`
	CanExchange        bool `json:"can_exchange"`
}

type spinHistoryItemResponse struct {
	SpinID      string    `json:"spin_id"`
	RewardID    string    `json:"reward_id"`
	CouponID    string    `json:"coupon_id,omitempty"`
	Kind        string    `json:"kind"`
	PointsSpent int       `json:"points_spent"`
	SpinDate    string    `json:"spin_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type spinHistoryResponse struct {
	Items []spinHistoryItemResponse `json:"items"`
}

// --- Handler ---

// SpinHandler 抽獎相關端點
type SpinHandler struct {
	getSpinInfo appspin.GetSpinInfoUseCase
	playSpin    appspin.PlaySpinUseCase
	listHistory appspin.ListSpinHistoryUseCase
	logger      zerolog.Logger
}

// NewSpinHandler 創建 SpinHandler
func NewSpinHandler(
	getSpinInfo appspin.GetSpinInfoUseCase,
	playSpin appspin.PlaySpinUseCase,
	listHistory appspin.ListSpinHistoryUseCase,
	logger zerolog.Logger,
) *SpinHandler {
	return &SpinHandler{
		getSpinInfo: getSpinInfo,
		playSpin:    playSpin,
		listHistory: listHistory,
		logger:      logger,
	}
}

// GetInfo 處理 GET /spin/info
func (h *SpinHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	result, err := h.getSpinInfo.Execute(appspin.GetSpinInfoQuery{
		MemberID: memberIDFrom(r),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := spinInfoResponse{
		ProgramID:          result.ProgramID,
		ProgramName:        result.ProgramName,
		EndAt:              result.EndAt,
		Slots:              make([]slotResponse, 0, len(result.Slots)),
		Tier:               result.Tier,
		FreeSpinsRemaining: result.FreeSpinsRemaining,
		PointsPerSpin:      result.PointsPerSpin,
		PointsBalance:      result.PointsBalance,
		CanExchange:        result.CanExchange,
		SpinsToday:         result.SpinsToday,
		ActiveCoupons:      result.ActiveCoupons,
	}
	for _, s := range result.Slots {
		resp.Slots = append(resp.Slots, slotResponse{
			RewardID:    s.RewardID,
			Name:        s.Name,
			Kind:        s.Kind,
			Probability: s.Probability,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// PlayFree 處理 POST /spin/free
func (h *SpinHandler) PlayFree(w http.ResponseWriter, r *http.Request) {
	h.play(w, r, spin.KindFree)
}

// PlayExchange 處理 POST /spin/exchange
func (h *SpinHandler) PlayExchange(w http.ResponseWriter, r *http.Request) {
	h.play(w, r, spin.KindPointsExchange)
}

func (h *SpinHandler) play(w http.ResponseWriter, r *http.Request, kind spin.SpinKind) {
	result, err := h.playSpin.Execute(appspin.PlaySpinCommand{
		MemberID: memberIDFrom(r),
		Kind:     string(kind),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := spinResultResponse{
		SpinID:             result.SpinID,
		SlotIndex:          result.SlotIndex,
		RewardID:           result.RewardID,
		RewardName:         result.RewardName,
		RewardKind:         result.RewardKind,
		PointsSpent:        result.PointsSpent,
		PointsBalance:      result.PointsBalance,
		FreeSpinsRemaining: result.FreeSpinsRemaining,
		CanExchange:        result.CanExchange,
	}
	if result.WonCoupon {
		resp.Coupon = &wonCouponResponse{
			CouponID:  result.CouponID,
			Code:      result.CouponCode,
			ExpiresAt: result.CouponExpiresAt,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetHistory 處理 GET /spin/history?limit=N
func (h *SpinHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeErrorPayload(w, http.StatusBadRequest, "QUERY_INVALID", "limit 必須為非負整數")
			return
		}
		limit = parsed
	}

	result, err := h.listHistory.Execute(appspin.ListSpinHistoryQuery{
		MemberID: memberIDFrom(r),
		Limit:    limit,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := spinHistoryResponse{Items: make([]spinHistoryItemResponse, 0, len(result.Items))}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, spinHistoryItemResponse{
			SpinID:      item.SpinID,
			RewardID:    item.RewardID,
			CouponID:    item.CouponID,
			Kind:        item.Kind,
			PointsSpent: item.PointsSpent,
			SpinDate:    item.SpinDate,
			CreatedAt:   item.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
