package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"gymdesk/internal/adapters/email"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
)

// PaymentStore defines the payment store interface needed by RecordPayment.
type PaymentStore interface {
	Insert(ctx context.Context, p payment.Payment) error
}

// PayerLookupStore defines the member store interface needed for receipts.
type PayerLookupStore interface {
	GetByID(ctx context.Context, id int64) (member.Member, error)
}

// RecordPaymentInput carries input for the record-payment orchestrator.
type RecordPaymentInput struct {
	MemberID      int64
	ScheduleID    int64
	Amount        float64
	ModeOfPayment string
}

// RecordPaymentDeps holds dependencies for RecordPayment. Sender may be nil,
// which skips the receipt entirely.
type RecordPaymentDeps struct {
	PaymentStore PaymentStore
	MemberStore  PayerLookupStore
	Sender       email.Sender
	From         string
	ReplyTo      string
}

// ExecuteRecordPayment inserts one payment row, then sends a receipt email
// best-effort when the paying member has an email address on file. A failed
// send never fails the payment; it is logged and dropped.
// PRE: numeric fields were coerced by the form layer
// POST: Exactly one payment row exists for this call
func ExecuteRecordPayment(ctx context.Context, input RecordPaymentInput, deps RecordPaymentDeps) error {
	p := payment.Payment{
		MemberID:      input.MemberID,
		ScheduleID:    input.ScheduleID,
		Amount:        input.Amount,
		ModeOfPayment: input.ModeOfPayment,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := deps.PaymentStore.Insert(ctx, p); err != nil {
		return err
	}

	slog.Info("payment_recorded", "member_id", p.MemberID, "schedule_id", p.ScheduleID, "amount", p.Amount, "mode", p.ModeOfPayment)

	sendReceipt(ctx, deps, p)
	return nil
}

// sendReceipt emails a payment receipt if a sender is configured and the
// member has an email address. Errors are logged, never returned.
func sendReceipt(ctx context.Context, deps RecordPaymentDeps, p payment.Payment) {
	if deps.Sender == nil || deps.MemberStore == nil {
		return
	}

	m, err := deps.MemberStore.GetByID(ctx, p.MemberID)
	if err != nil {
		slog.Warn("receipt_member_lookup_failed", "member_id", p.MemberID, "error", err)
		return
	}
	if m.Email == "" {
		return
	}

	req := email.SendRequest{
		To:      []string{m.Email},
		From:    deps.From,
		ReplyTo: deps.ReplyTo,
		Subject: "Payment received",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>We received your payment of %.2f (%s). Thank you!</p>",
			m.Name, p.Amount, p.ModeOfPayment),
	}
	if _, err := deps.Sender.Send(ctx, req); err != nil {
		slog.Warn("receipt_send_failed", "member_id", p.MemberID, "error", err)
	}
}
