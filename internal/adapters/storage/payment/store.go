package payment

import (
	"context"

	domain "gymdesk/internal/domain/payment"
)

// Row is one payment as shown in the listing, with the paying member and the
// schedule joined in by name and the payment date pre-formatted.
type Row struct {
	ID       int64
	Member   string
	Schedule string
	Amount   float64
	PaidOn   string // payment_date formatted dd-Mon-yyyy
	Mode     string
}

// Store defines the interface for payment persistence.
type Store interface {
	Insert(ctx context.Context, p domain.Payment) error
	ListDetailed(ctx context.Context) ([]Row, error)
}
