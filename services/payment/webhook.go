package payment

import (
	"context"

	"go.uber.org/zap"

	"storely/models"
	"storely/utils"
)

// canAdvance guards the payment status lattice: status only moves forward
// through the processor lifecycle, never backwards, except that open
// invoices may still land on a terminal failure state.
func canAdvance(from, to string) bool {
	if from == to {
		return false
	}
	switch from {
	case models.PaymentStatusDraft:
		return true
	case models.PaymentStatusOpen:
		return to == models.PaymentStatusPaid ||
			to == models.PaymentStatusVoid ||
			to == models.PaymentStatusUncollectible
	}
	// paid / void / uncollectible are terminal.
	return false
}

// UpdateStatusFromWebhook applies an asynchronous processor status change by
// external invoice id. Unknown invoice ids are ignored: the event may belong
// to an external object this service never created. Delivery is at least
// once, so replays of an already-applied status are a no-op.
func (s *DefaultPaymentService) UpdateStatusFromWebhook(ctx context.Context, invoiceID, processorStatus string) error {
	logger := utils.GetLogger()

	pay, err := s.Repo.GetByInvoiceID(invoiceID)
	if err != nil {
		logger.Error("webhook: payment lookup failed", zap.String("invoiceID", invoiceID), zap.Error(err))
		return NewInternalError("failed to load payment for webhook event")
	}
	if pay == nil {
		logger.Info("webhook: no payment for invoice, ignoring", zap.String("invoiceID", invoiceID))
		return nil
	}

	next := mapProcessorStatus(processorStatus)
	if !canAdvance(pay.Status, next) {
		logger.Info("webhook: status change skipped",
			zap.String("paymentID", pay.ID),
			zap.String("from", pay.Status),
			zap.String("to", next))
		return nil
	}

	pay.Status = next
	if err := s.Repo.Update(pay); err != nil {
		logger.Error("webhook: persist failed", zap.String("paymentID", pay.ID), zap.Error(err))
		return NewInternalError("failed to persist webhook status update")
	}

	logger.Info("payment status updated from webhook",
		zap.String("paymentID", pay.ID),
		zap.String("invoiceID", invoiceID),
		zap.String("status", next))
	return nil
}

// ReconcilePending re-polls the processor for payments stuck in non-terminal
// states and applies the reported status. This recovers records left behind
// when finalization or the final persist failed mid-workflow.
func (s *DefaultPaymentService) ReconcilePending(ctx context.Context) error {
	logger := utils.GetLogger()

	pending, err := s.Repo.ListByStatuses([]string{models.PaymentStatusDraft, models.PaymentStatusOpen})
	if err != nil {
		return NewInternalError("failed to list pending payments")
	}

	for i := range pending {
		pay := &pending[i]
		if pay.StripeInvoiceID == "" {
			continue
		}
		info, err := s.Gateway.GetInvoice(ctx, pay.StripeInvoiceID)
		if err != nil {
			logger.Warn("reconcile: upstream fetch failed",
				zap.String("invoiceID", pay.StripeInvoiceID), zap.Error(err))
			continue
		}
		next := mapProcessorStatus(info.Status)
		if !canAdvance(pay.Status, next) {
			continue
		}
		pay.Status = next
		if err := s.Repo.Update(pay); err != nil {
			logger.Error("reconcile: persist failed", zap.String("paymentID", pay.ID), zap.Error(err))
			continue
		}
		logger.Info("payment reconciled",
			zap.String("paymentID", pay.ID), zap.String("status", next))
	}
	return nil
}
