package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storely/services/payment"
	"storely/utils"
)

// PaymentHandler exposes the payment workflow over HTTP.
type PaymentHandler struct {
	Service payment.PaymentService
	logger  *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, logger: logger}
}

// IssueInvoice runs the invoice workflow for a booking. Safe to retry: a
// payment already past draft is returned unchanged.
func (h *PaymentHandler) IssueInvoice(c *gin.Context) {
	pay, err := h.Service.CreateAndIssueInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, paymentErrStatus(err), "failed to issue invoice", err.Error())
		return
	}
	c.JSON(http.StatusCreated, pay)
}

// GetPayment returns one payment record.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	pay, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, paymentErrStatus(err), "failed to fetch payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, pay)
}

// GetInvoiceURL returns the externally hosted invoice page for a payment.
func (h *PaymentHandler) GetInvoiceURL(c *gin.Context) {
	url, err := h.Service.GetInvoiceURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, paymentErrStatus(err), "failed to fetch invoice url", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
