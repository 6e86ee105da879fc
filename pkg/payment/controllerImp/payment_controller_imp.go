package controllerImp

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/middleware"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/payment"
	productRepo "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/product/repository"
)

type PaymentCtrl struct {
	client        payment.Client
	harvests      productRepo.HarvestRepository
	webhookSecret string
}

func New(client payment.Client, harvests productRepo.HarvestRepository, webhookSecret string) *PaymentCtrl {
	return &PaymentCtrl{client: client, harvests: harvests, webhookSecret: webhookSecret}
}

type intentReq struct {
	Amount    *float64 `json:"amount"`
	ProductID string   `json:"productId"`
}

func (h *PaymentCtrl) CreateIntent(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "error": "Authorization token required"})
	}

	var req intentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "bad json"})
	}
	if req.Amount == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Amount is missing"})
	}
	if *req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Amount must be greater than 0"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Product ID is required"})
	}

	harvest, err := h.harvests.FindByID(req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"success": false, "error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": "Failed to create payment intent"})
	}
	if harvest.FarmerID != userID {
		return c.JSON(http.StatusForbidden, map[string]any{"success": false, "error": "You do not have permission to pay for this product"})
	}

	// The processor requires integer minor-currency units. The key embeds
	// a wall-clock timestamp, so a client retry gets a fresh key and a
	// second intent; kept as the source system behaves.
	amount := int64(math.Round(*req.Amount))
	idempotencyKey := fmt.Sprintf("payment_%s_%s_%d", req.ProductID, userID, time.Now().UnixMilli())

	intent, err := h.client.CreateIntent(c.Request().Context(), payment.IntentRequest{
		Amount:         amount,
		ProductID:      req.ProductID,
		UserID:         userID,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":         true,
		"paymentIntent":   intent.ClientSecret,
		"paymentIntentId": intent.PaymentIntentID,
		"ephemeralKey":    intent.EphemeralKey,
		"customer":        intent.CustomerID,
	})
}

// Webhook verifies the provider signature over the raw body. After a valid
// signature it always answers 200 so the provider does not retry; events
// are logged, not persisted.
func (h *PaymentCtrl) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusBadRequest, "Webhook Error: cannot read body")
	}

	event, err := webhook.ConstructEvent(payload, c.Request().Header.Get("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		return c.String(http.StatusBadRequest, "Webhook Error: "+err.Error())
	}

	switch event.Type {
	case "payment_intent.succeeded":
		log.Printf("[stripe] PaymentIntent %s succeeded", eventObjectID(event.Data.Object))
	case "payment_intent.payment_failed":
		log.Printf("[stripe] PaymentIntent %s failed", eventObjectID(event.Data.Object))
	default:
		log.Printf("[stripe] Unhandled event type %s", event.Type)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

func eventObjectID(obj map[string]interface{}) string {
	if id, ok := obj["id"].(string); ok {
		return id
	}
	return "unknown"
}
