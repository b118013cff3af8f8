package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"storely/config"
	"storely/services/payment"
	"storely/utils"
)

const (
	maxWebhookBody  = 64 * 1024
	webhookDedupTTL = 24 * time.Hour
)

// WebhookHandler receives asynchronous invoice events from the payment
// processor. It lives on its own route, decoupled from the booking request
// path: it only ever reconciles payment status.
type WebhookHandler struct {
	Service payment.PaymentService
	Cache   *redis.Client
	logger  *zap.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(svc payment.PaymentService, cache *redis.Client, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Service: svc, Cache: cache, logger: logger}
}

// HandleStripeEvent verifies the event signature, deduplicates (delivery is
// at least once), and applies invoice status changes.
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read webhook payload", err.Error())
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		h.logger.Warn("webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	// Replays of an already-seen event are acknowledged without processing.
	seenKey := "stripe:event:" + event.ID
	set, err := h.Cache.SetNX(c.Request.Context(), seenKey, 1, webhookDedupTTL).Result()
	if err != nil {
		h.logger.Warn("webhook dedupe check failed, processing anyway", zap.Error(err))
	} else if !set {
		c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
		return
	}

	switch event.Type {
	case "invoice.finalized", "invoice.paid", "invoice.voided",
		"invoice.marked_uncollectible", "invoice.payment_failed":
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to parse invoice event", err.Error())
			return
		}
		if err := h.Service.UpdateStatusFromWebhook(c.Request.Context(), inv.ID, string(inv.Status)); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to apply invoice event", err.Error())
			return
		}
	default:
		h.logger.Debug("ignoring webhook event", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
