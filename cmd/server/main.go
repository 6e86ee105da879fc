package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/config"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/database"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/router"

	authCtrlImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/auth/controllerImp"
	farmerRepoImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/auth/repositoryImp"

	fieldCtrlImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/field/controllerImp"
	fieldRepoImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/field/repositoryImp"

	productCtrlImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/product/controllerImp"
	harvestRepoImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/product/repositoryImp"

	suggestionCtrlImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/suggestion/controllerImp"
	suggestionRepoImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/suggestion/repositoryImp"
	suggestionSvc "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/suggestion/serviceImp"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/ai"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/geo"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/weather"
	weatherCtrlImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/weather/controllerImp"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/payment"
	paymentCtrlImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/payment/controllerImp"

	healthCtrlImp "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) External clients (mock fallbacks when unconfigured)
	var llm ai.Client
	if cfg.GeminiAPIKey != "" {
		llm = ai.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Printf("[ai] GEMINI_API_KEY not set, using mock client")
		llm = ai.NewMock()
	}

	var payments payment.Client
	if cfg.StripeSecretKey != "" {
		payments = payment.NewStripe(cfg.StripeSecretKey)
	} else {
		log.Printf("[stripe] STRIPE_SECRET_KEY not set, using mock client")
		payments = payment.NewMock()
	}

	weatherSvc := weather.NewService(cfg.OpenWeatherAPIKey)
	resolver := geo.NewResolver()

	// 5) Repos
	farmerRepo := farmerRepoImp.New(db)
	fieldRepo := fieldRepoImp.New(db)
	harvestRepo := harvestRepoImp.New(db)
	suggestionRepo := suggestionRepoImp.New(db)

	// 6) Controllers
	authCtrl := authCtrlImp.New(farmerRepo, cfg.JWTSecret)
	fieldCtrl := fieldCtrlImp.New(fieldRepo)
	productCtrl := productCtrlImp.New(harvestRepo, farmerRepo)
	suggestionCtrl := suggestionCtrlImp.New(suggestionSvc.New(llm, fieldRepo, suggestionRepo))
	weatherCtrl := weatherCtrlImp.New(weatherSvc, resolver)
	paymentCtrl := paymentCtrlImp.New(payments, harvestRepo, cfg.StripeWebhookSecret)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		authCtrl,
		fieldCtrl,
		productCtrl,
		suggestionCtrl,
		weatherCtrl,
		paymentCtrl,
		healthCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
