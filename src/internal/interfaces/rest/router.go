package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ===========================
// HTTP 路由
// ===========================

// NewRouter 組裝服務的 HTTP 路由
func NewRouter(
	spinHandler *SpinHandler,
	couponHandler *CouponHandler,
	adminHandler *AdminHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(logger))

	// 會員端抽獎
	r.Route("/spin", func(r chi.Router) {
		r.Get("/info", spinHandler.GetInfo)
		r.Post("/free", spinHandler.PlayFree)
		r.Post("/exchange", spinHandler.PlayExchange)
		r.Get("/history", spinHandler.GetHistory)
	})

	// 會員端優惠券
	r.Route("/coupons", func(r chi.Router) {
		r.Get("/", couponHandler.List)
		r.Get("/active/count", couponHandler.CountActive)
		r.Post("/validate", couponHandler.Validate)
		r.Post("/redeem", couponHandler.Redeem)
	})

	// 管理端活動設定
	r.Route("/admin", func(r chi.Router) {
		r.Get("/programs/{id}", adminHandler.GetProgram)
		r.Put("/programs/{id}", adminHandler.UpdateProgram)
		r.Put("/rewards/{id}", adminHandler.UpdateReward)
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
