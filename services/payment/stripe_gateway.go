package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/invoice"
	"github.com/stripe/stripe-go/v76/invoiceitem"
)

// stripeCallTimeout bounds every call to the processor.
const stripeCallTimeout = 15 * time.Second

// StripeInvoiceGateway implements InvoiceGateway over the Stripe Invoices
// API. The API key is set globally in main.
type StripeInvoiceGateway struct{}

// NewStripeInvoiceGateway creates the Stripe-backed gateway.
func NewStripeInvoiceGateway() InvoiceGateway {
	return &StripeInvoiceGateway{}
}

// CreateDraftInvoice opens a draft invoice for the renter's customer with the
// marketplace fee routed to the host's connected account, then attaches the
// line items.
func (g *StripeInvoiceGateway) CreateDraftInvoice(ctx context.Context, draft DraftInvoice) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, stripeCallTimeout)
	defer cancel()

	params := &stripe.InvoiceParams{
		Params:               stripe.Params{Context: ctx},
		Customer:             stripe.String(draft.CustomerID),
		CollectionMethod:     stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:         stripe.Int64(7),
		AutoAdvance:          stripe.Bool(false),
		ApplicationFeeAmount: stripe.Int64(draft.ApplicationFee),
		TransferData: &stripe.InvoiceTransferDataParams{
			Destination: stripe.String(draft.DestinationID),
		},
	}
	for k, v := range draft.Metadata {
		params.AddMetadata(k, v)
	}

	inv, err := invoice.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe invoice create failed: %w", err)
	}

	for _, li := range draft.LineItems {
		itemParams := &stripe.InvoiceItemParams{
			Params:      stripe.Params{Context: ctx},
			Customer:    stripe.String(draft.CustomerID),
			Invoice:     stripe.String(inv.ID),
			Amount:      stripe.Int64(li.Amount),
			Currency:    stripe.String(li.Currency),
			Description: stripe.String(li.Description),
		}
		if _, err := invoiceitem.New(itemParams); err != nil {
			return inv.ID, fmt.Errorf("stripe invoice item create failed: %w", err)
		}
	}

	return inv.ID, nil
}

// FinalizeInvoice converts the draft into a collectible invoice.
func (g *StripeInvoiceGateway) FinalizeInvoice(ctx context.Context, invoiceID string) (*InvoiceInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, stripeCallTimeout)
	defer cancel()

	params := &stripe.InvoiceFinalizeInvoiceParams{
		Params:      stripe.Params{Context: ctx},
		AutoAdvance: stripe.Bool(true),
	}
	inv, err := invoice.FinalizeInvoice(invoiceID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe invoice finalize failed: %w", err)
	}
	return toInvoiceInfo(inv), nil
}

// GetInvoice fetches the processor's current view of an invoice.
func (g *StripeInvoiceGateway) GetInvoice(ctx context.Context, invoiceID string) (*InvoiceInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, stripeCallTimeout)
	defer cancel()

	params := &stripe.InvoiceParams{Params: stripe.Params{Context: ctx}}
	inv, err := invoice.Get(invoiceID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe invoice fetch failed: %w", err)
	}
	return toInvoiceInfo(inv), nil
}

func toInvoiceInfo(inv *stripe.Invoice) *InvoiceInfo {
	return &InvoiceInfo{
		ID:        inv.ID,
		Status:    string(inv.Status),
		HostedURL: inv.HostedInvoiceURL,
	}
}
