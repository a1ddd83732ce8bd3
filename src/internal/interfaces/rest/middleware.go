package rest

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// ===========================
// HTTP 中介層
// ===========================

// RequestLogger 以 zerolog 記錄每個請求的方法、路徑、狀態碼與耗時
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// memberIDHeader 會員身份標頭
//
// 認證由外部協作方（API gateway）完成，這裡只讀取其注入的會員 ID
const memberIDHeader = "X-Member-ID"

// memberIDFrom 讀取請求的會員 ID，缺失時返回空字串
func memberIDFrom(r *http.Request) string {
	return r.Header.Get(memberIDHeader)
}
