package router

import (
	"github.com/labstack/echo/v4"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Profile(echo.Context) error
	},
	fieldCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	productCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Buy(echo.Context) error
	},
	suggestionCtrl interface {
		Generate(echo.Context) error
		Saved(echo.Context) error
	},
	weatherCtrl interface {
		ByCoordinates(echo.Context) error
		ByLocation(echo.Context) error
		Current(echo.Context) error
		Forecast(echo.Context) error
	},
	paymentCtrl interface {
		CreateIntent(echo.Context) error
		Webhook(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	verify := middleware.VerifyToken(jwtSecret)

	e.GET("/health", healthCtrl.Health)

	auth := e.Group("/api/auth")
	auth.POST("/register", authCtrl.Register)
	auth.POST("/login", authCtrl.Login)
	auth.GET("/get", authCtrl.Profile, verify)

	fields := e.Group("/api/fields")
	fields.POST("/create", fieldCtrl.Create)
	fields.GET("/", fieldCtrl.List)
	fields.PATCH("/:id", fieldCtrl.Update)
	fields.DELETE("/:id", fieldCtrl.Delete)

	products := e.Group("/api/products")
	products.POST("/create", productCtrl.Create, verify)
	products.GET("/", productCtrl.List)
	products.POST("/harvests/:id/buy", productCtrl.Buy)

	suggestions := e.Group("/api/suggestions")
	suggestions.GET("/:fieldId", suggestionCtrl.Generate)
	suggestions.GET("/:fieldId/saved", suggestionCtrl.Saved)

	weather := e.Group("/api/weather")
	weather.GET("/coordinates", weatherCtrl.ByCoordinates)
	weather.GET("/location", weatherCtrl.ByLocation)
	weather.GET("/current", weatherCtrl.Current)
	weather.GET("/forecast", weatherCtrl.Forecast)

	payments := e.Group("/api/payments")
	payments.POST("/create-payment-intent", paymentCtrl.CreateIntent, verify)
	// Webhook reads the raw body itself; signature check replaces auth.
	payments.POST("/webhook", paymentCtrl.Webhook)

	return e
}
