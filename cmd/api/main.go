package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanlift-backend/internal/adapter/http"
	"loanlift-backend/internal/adapter/middleware"
	"loanlift-backend/internal/adapter/repository/mysql"
	"loanlift-backend/internal/config"
	"loanlift-backend/internal/infrastructure/cache"
	"loanlift-backend/internal/infrastructure/db"
	appuc "loanlift-backend/internal/usecase/application"
	offeruc "loanlift-backend/internal/usecase/loanoffer"
	payuc "loanlift-backend/internal/usecase/payment"
	useruc "loanlift-backend/internal/usecase/user"
	"loanlift-backend/pkg/payclient"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	appRepo := mysql.NewApplicationRepository(gdb)
	payRepo := mysql.NewPaymentRepository(gdb)
	offerRepo := mysql.NewLoanOfferRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	users := useruc.NewUsecase(userRepo)
	offers := offeruc.NewUsecase(offerRepo)
	applications := appuc.NewUsecase(appRepo, tx)
	payments := payuc.NewUsecase(tx, payRepo, payclient.New(cfg.PayBaseURL, cfg.PaySecretKey), cache.NewLocker(rdb), payuc.Config{
		SuccessURL: cfg.PaySuccessURL,
		CancelURL:  cfg.PayCancelURL,
		Currency:   cfg.PayCurrency,
	})

	// handlers
	h := httpadp.NewHandler()
	userH := httpadp.NewUserHandler(users)
	offerH := httpadp.NewLoanOfferHandler(offers, users)
	appH := httpadp.NewApplicationHandler(applications, users)
	payH := httpadp.NewPaymentHandler(payments, users)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	auth := middleware.Auth(cfg.JWTSecret)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/users", userH.Register, auth)
	e.GET("/users", userH.List, auth)
	e.PATCH("/users/role/:email", userH.SetRole, auth)
	e.PATCH("/users/suspend/:email", userH.SetSuspended, auth)

	e.GET("/loans", offerH.List)
	e.GET("/loans/home", offerH.ListHome)
	e.GET("/loans/search", offerH.List)
	e.GET("/loans/:offer_id", offerH.Get)
	e.POST("/loans", offerH.Create, auth)
	e.PUT("/loans/:offer_id", offerH.Update, auth)
	e.DELETE("/loans/:offer_id", offerH.Delete, auth)

	e.POST("/applications", appH.Submit, auth, idemp)
	e.GET("/applications/user/:email", appH.ListForUser, auth)
	e.GET("/applications/pending", appH.ListPending, auth)
	e.GET("/applications/approved", appH.ListApproved, auth)
	e.PATCH("/applications/approve/:application_id", appH.Approve, auth)
	e.PATCH("/applications/reject/:application_id", appH.Reject, auth)
	e.PATCH("/applications/cancel/:application_id", appH.Cancel, auth)

	e.POST("/payment-checkout-system", payH.CreateCheckout, auth)
	// processor redirect target; the session reference is revalidated upstream
	e.PATCH("/payment-success", payH.Settle)
	e.GET("/payments", payH.ListPayments, auth)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
