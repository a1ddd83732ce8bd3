package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
)

// ===========================
// JSON 回應與錯誤映射
// ===========================

// errorResponse JSON 錯誤負載，code 攜帶 DomainError 代碼
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError 將錯誤映射為 HTTP 狀態碼與 JSON 錯誤負載
//
// DomainError 以代碼後綴分類：
// - *_INVALID → 400（請求本身有問題）
// - *_NOT_FOUND → 404
// - 業務狀態衝突（配額用盡、積分不足、活動未開放等）→ 409
// 非領域錯誤一律 500，細節只進日誌不出協定
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("internal error")
		writeErrorPayload(w, http.StatusInternalServerError, "INTERNAL_ERROR", "內部錯誤")
		return
	}

	status := statusForCode(domainErr.Code)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("internal error")
	}
	writeErrorPayload(w, status, string(domainErr.Code), domainErr.Message)
}

func writeErrorPayload(w http.ResponseWriter, status int, code, message string) {
	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	writeJSON(w, status, resp)
}

func statusForCode(code shared.ErrorCode) int {
	switch code {
	case "MEMBER_ID_INVALID", "SPIN_KIND_INVALID", "COUPON_CODE_INVALID",
		"PROGRAM_ID_INVALID", "REWARD_ID_INVALID",
		"PROGRAM_CONFIG_INVALID", "REWARD_CONFIG_INVALID",
		"MEMBER_TIER_INVALID", "POINTS_NEGATIVE":
		return http.StatusBadRequest
	case "MEMBER_NOT_FOUND", "PROGRAM_NOT_FOUND", "REWARD_NOT_FOUND",
		"COUPON_NOT_FOUND":
		return http.StatusNotFound
	case "PROGRAM_UNAVAILABLE", "SPIN_QUOTA_EXCEEDED", "POINTS_INSUFFICIENT",
		"COUPON_ALREADY_USED", "COUPON_EXPIRED", "COUPON_NOT_OWNED",
		"COUPON_BELOW_MIN_ORDER":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
