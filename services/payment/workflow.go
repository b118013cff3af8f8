package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storely/models"
	"storely/utils"
)

// mapProcessorStatus maps the external invoice status onto the local payment
// status. Anything unrecognized keeps the record in draft.
func mapProcessorStatus(processorStatus string) string {
	switch processorStatus {
	case "open":
		return models.PaymentStatusOpen
	case "paid":
		return models.PaymentStatusPaid
	case "void":
		return models.PaymentStatusVoid
	case "uncollectible":
		return models.PaymentStatusUncollectible
	}
	return models.PaymentStatusDraft
}

// CreateAndIssueInvoice runs the invoice workflow for a booking: load the
// booking with its parties, guard on prior issuance, compute the fee split,
// open and finalize an invoice at the processor, and persist the reported
// state. The sequence is not transactional end to end; the external invoice
// id is persisted as soon as it is known so a retry resumes instead of
// issuing a duplicate.
func (s *DefaultPaymentService) CreateAndIssueInvoice(ctx context.Context, bookingID string) (*models.Payment, error) {
	logger := utils.GetLogger()

	// Step 1: load the booking and its related records.
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		logger.Error("CreateAndIssueInvoice: booking lookup failed", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, NewInternalError("failed to load booking")
	}
	if booking == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", bookingID))
	}

	renter, err := s.UserRepo.GetByID(booking.RenterID)
	if err != nil {
		return nil, NewInternalError("failed to load renter")
	}
	unit, err := s.UnitRepo.GetByID(booking.UnitID)
	if err != nil {
		return nil, NewInternalError("failed to load storage unit")
	}
	if renter == nil || unit == nil {
		return nil, NewMissingRelatedDataError(
			fmt.Sprintf("booking %s is missing renter or unit data", bookingID))
	}
	host, err := s.UserRepo.GetByID(unit.HostID)
	if err != nil {
		return nil, NewInternalError("failed to load host")
	}
	if host == nil {
		return nil, NewMissingRelatedDataError(
			fmt.Sprintf("unit %s is missing its host record", unit.ID))
	}

	// Step 2: both parties must have completed processor onboarding.
	if renter.Renter == nil || renter.Renter.StripeCustomerID == "" {
		return nil, NewExternalAccountMissingError(
			fmt.Sprintf("renter %s has no billing customer at the payment provider", renter.ID))
	}
	if host.Host == nil || host.Host.StripeAccountID == "" {
		return nil, NewExternalAccountMissingError(
			fmt.Sprintf("host %s has no payee account at the payment provider", host.ID))
	}

	// Step 3: idempotency guard. A payment past draft means an invoice was
	// already issued; return it unchanged.
	pay, err := s.Repo.GetByBookingID(bookingID)
	if err != nil {
		return nil, NewInternalError("failed to load payment")
	}
	if pay != nil && pay.Status != models.PaymentStatusDraft {
		logger.Info("invoice already issued, skipping",
			zap.String("bookingID", bookingID), zap.String("paymentID", pay.ID))
		return pay, nil
	}

	// Step 4: compute amounts once; they are never recomputed later.
	split := ComputeFeeSplit(booking.TotalPrice, s.FeePercent)
	currency := unit.Currency
	if currency == "" {
		currency = "usd"
	}

	if pay == nil {
		pay = &models.Payment{
			ID:               uuid.New().String(),
			BookingID:        booking.ID,
			RenterID:         renter.ID,
			HostID:           host.ID,
			StripeCustomerID: renter.Renter.StripeCustomerID,
			StripeAccountID:  host.Host.StripeAccountID,
			Status:           models.PaymentStatusDraft,
		}
		pay.Amount = split.Amount
		pay.Currency = currency
		pay.PlatformFee = split.PlatformFee
		pay.AmountTransferred = split.Transferred
		if err := s.Repo.Create(pay); err != nil {
			logger.Error("CreateAndIssueInvoice: payment create failed", zap.String("bookingID", bookingID), zap.Error(err))
			return nil, NewInternalError("failed to persist payment draft")
		}
		booking.PaymentID = pay.ID
		if err := s.BookingRepo.Update(booking); err != nil {
			logger.Error("CreateAndIssueInvoice: booking backlink failed", zap.String("bookingID", bookingID), zap.Error(err))
			return nil, NewInternalError("failed to link payment to booking")
		}
	} else {
		pay.Amount = split.Amount
		pay.Currency = currency
		pay.PlatformFee = split.PlatformFee
		pay.AmountTransferred = split.Transferred
	}

	// Step 5a: open a draft invoice, unless a retry already did.
	if pay.StripeInvoiceID == "" {
		draft := DraftInvoice{
			CustomerID:     pay.StripeCustomerID,
			DestinationID:  pay.StripeAccountID,
			ApplicationFee: pay.PlatformFee,
			LineItems: []LineItem{{
				Amount:   pay.Amount,
				Currency: pay.Currency,
				Description: fmt.Sprintf("Storage rental: %s, %s to %s",
					unit.Title, booking.StartDate, booking.EndDate),
			}},
			Metadata: map[string]string{
				"booking_id": booking.ID,
				"payment_id": pay.ID,
			},
		}
		invoiceID, err := s.Gateway.CreateDraftInvoice(ctx, draft)
		if err != nil {
			logger.Error("CreateAndIssueInvoice: draft invoice failed",
				zap.String("bookingID", bookingID), zap.Error(err))
			return nil, NewUpstreamFailureError("payment provider rejected invoice creation")
		}

		// Persist the invoice id before finalizing so a crash here is
		// recoverable by lookup instead of a duplicate invoice.
		pay.StripeInvoiceID = invoiceID
		if err := s.Repo.Update(pay); err != nil {
			logger.Error("CreateAndIssueInvoice: persist invoice id failed",
				zap.String("paymentID", pay.ID), zap.Error(err))
			return nil, NewInternalError("failed to persist invoice reference")
		}
	}

	// Step 5b: request finalization. A failure here does not roll back the
	// invoice; the record keeps whatever state the processor reports.
	info, err := s.Gateway.FinalizeInvoice(ctx, pay.StripeInvoiceID)
	if err != nil {
		logger.Error("CreateAndIssueInvoice: finalize failed",
			zap.String("invoiceID", pay.StripeInvoiceID), zap.Error(err))
		if current, getErr := s.Gateway.GetInvoice(ctx, pay.StripeInvoiceID); getErr == nil {
			pay.Status = mapProcessorStatus(current.Status)
			if err := s.Repo.Update(pay); err != nil {
				logger.Error("CreateAndIssueInvoice: persist reported state failed",
					zap.String("paymentID", pay.ID), zap.Error(err))
			}
		}
		return nil, NewUpstreamFailureError("invoice finalization failed; safe to retry")
	}

	// Steps 6-7: map the reported state and persist.
	pay.Status = mapProcessorStatus(info.Status)
	if err := s.Repo.Update(pay); err != nil {
		logger.Error("CreateAndIssueInvoice: persist finalized state failed",
			zap.String("paymentID", pay.ID), zap.Error(err))
		return nil, NewInternalError("failed to persist issued invoice")
	}

	// Issuance success confirms occupancy; collection continues independently.
	if _, err := s.Confirmer.ConfirmBooking(ctx, booking.ID, pay.ID); err != nil {
		logger.Error("CreateAndIssueInvoice: booking confirmation failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	logger.Info("invoice issued",
		zap.String("bookingID", booking.ID),
		zap.String("paymentID", pay.ID),
		zap.String("invoiceID", pay.StripeInvoiceID),
		zap.String("status", pay.Status))
	return pay, nil
}

// GetByID retrieves a payment record.
func (s *DefaultPaymentService) GetByID(paymentID string) (*models.Payment, error) {
	pay, err := s.Repo.GetByID(paymentID)
	if err != nil {
		return nil, NewInternalError("failed to load payment")
	}
	if pay == nil {
		return nil, NewNotFoundError(fmt.Sprintf("payment %s not found", paymentID))
	}
	return pay, nil
}

// GetInvoiceURL fetches the externally hosted invoice page for a payment.
func (s *DefaultPaymentService) GetInvoiceURL(ctx context.Context, paymentID string) (string, error) {
	pay, err := s.GetByID(paymentID)
	if err != nil {
		return "", err
	}
	if pay.StripeInvoiceID == "" {
		return "", NewNoInvoiceAssociatedError(
			fmt.Sprintf("payment %s has no invoice yet", paymentID))
	}
	info, err := s.Gateway.GetInvoice(ctx, pay.StripeInvoiceID)
	if err != nil {
		utils.GetLogger().Error("GetInvoiceURL: upstream fetch failed",
			zap.String("invoiceID", pay.StripeInvoiceID), zap.Error(err))
		return "", NewUpstreamFailureError("failed to fetch invoice from the payment provider")
	}
	return info.HostedURL, nil
}
