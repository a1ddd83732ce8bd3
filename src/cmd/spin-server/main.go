package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appcoupon "github.com/jackyeh168/lucky_spin/src/internal/application/coupon"
	apppromotion "github.com/jackyeh168/lucky_spin/src/internal/application/promotion"
	appspin "github.com/jackyeh168/lucky_spin/src/internal/application/spin"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/coupon"
	"github.com/jackyeh168/lucky_spin/src/internal/domain/shared"
	"github.com/jackyeh168/lucky_spin/src/internal/infrastructure/config"
	"github.com/jackyeh168/lucky_spin/src/internal/infrastructure/persistence"
	couponpersist "github.com/jackyeh168/lucky_spin/src/internal/infrastructure/persistence/coupon"
	memberpersist "github.com/jackyeh168/lucky_spin/src/internal/infrastructure/persistence/member"
	promotionpersist "github.com/jackyeh168/lucky_spin/src/internal/infrastructure/persistence/promotion"
	spinpersist "github.com/jackyeh168/lucky_spin/src/internal/infrastructure/persistence/spin"
	"github.com/jackyeh168/lucky_spin/src/internal/infrastructure/scheduler"
	"github.com/jackyeh168/lucky_spin/src/internal/interfaces/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("loading config")
	}

	logger := newLogger(cfg.Log.Level)

	db, err := openDatabase(cfg.Database.DSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("opening database")
	}

	// 倉儲與事務管理
	memberRepo := memberpersist.NewMemberRepository(db)
	programRepo := promotionpersist.NewProgramRepository(db)
	rewardRepo := promotionpersist.NewRewardRepository(db)
	spinRepo := spinpersist.NewSpinRecordRepository(db)
	couponRepo := couponpersist.NewCouponRepository(db)
	txManager := persistence.NewGORMTransactionManager(db)

	// 領域服務
	codeGen := coupon.NewCodeGenerator(cfg.Coupon.CodePrefix)

	// Use Cases
	getSpinInfo := appspin.NewGetSpinInfoUseCase(
		memberRepo, programRepo, rewardRepo, spinRepo, couponRepo,
		shared.SystemClock,
	)
	playSpin := appspin.NewPlaySpinUseCase(
		memberRepo, programRepo, rewardRepo, spinRepo, couponRepo, txManager,
		codeGen, shared.SystemClock, appspin.DefaultUniformSource, logger,
	)
	listHistory := appspin.NewListSpinHistoryUseCase(spinRepo)

	validateCoupon := appcoupon.NewValidateCouponUseCase(couponRepo, shared.SystemClock, logger)
	redeemCoupon := appcoupon.NewRedeemCouponUseCase(couponRepo, txManager, shared.SystemClock, logger)
	listCoupons := appcoupon.NewListMyCouponsUseCase(couponRepo)
	countActive := appcoupon.NewCountActiveCouponsUseCase(couponRepo)
	expireCoupons := appcoupon.NewExpireCouponsUseCase(couponRepo, txManager, shared.SystemClock, logger)

	getProgram := apppromotion.NewGetProgramUseCase(programRepo, rewardRepo)
	updateProgram := apppromotion.NewUpdateProgramUseCase(programRepo, txManager, logger)
	updateReward := apppromotion.NewUpdateRewardUseCase(rewardRepo, txManager, logger)

	// HTTP 路由
	router := rest.NewRouter(
		rest.NewSpinHandler(getSpinInfo, playSpin, listHistory, logger),
		rest.NewCouponHandler(validateCoupon, redeemCoupon, listCoupons, countActive, logger),
		rest.NewAdminHandler(getProgram, updateProgram, updateReward, logger),
		logger,
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}

	// 過期清掃排程
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	sweeper := scheduler.NewExpirySweeper(expireCoupons, cfg.Sweep.Interval.Std(), logger)
	sweeperDone := make(chan struct{})
	go func() {
		sweeper.Run(sweepCtx)
		close(sweeperDone)
	}()

	// 優雅關機
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		logger.Info().Msg("shutting down")
		stopSweep()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("http server shutdown")
		}
		close(idleConnsClosed)
	}()

	logger.Info().Str("addr", cfg.Server.Addr).Msg("lucky-spin server starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
	<-sweeperDone
	logger.Info().Msg("server stopped")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}

func openDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&memberpersist.MemberGORM{},
		&promotionpersist.ProgramGORM{},
		&promotionpersist.RewardGORM{},
		&spinpersist.SpinRecordGORM{},
		&couponpersist.CouponGORM{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
