package payment_test

import (
	"testing"

	"gymdesk/internal/domain/payment"
)

// TestPayment_Validate tests presence validation of Payment.
func TestPayment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       payment.Payment
		wantErr bool
	}{
		{
			name:    "valid payment",
			p:       payment.Payment{MemberID: 1, ScheduleID: 2, Amount: 49.99, ModeOfPayment: "cash"},
			wantErr: false,
		},
		{
			name:    "missing member",
			p:       payment.Payment{ScheduleID: 2, Amount: 49.99, ModeOfPayment: "cash"},
			wantErr: true,
		},
		{
			name:    "missing schedule",
			p:       payment.Payment{MemberID: 1, Amount: 49.99, ModeOfPayment: "card"},
			wantErr: true,
		},
		{
			name:    "missing mode",
			p:       payment.Payment{MemberID: 1, ScheduleID: 2, Amount: 49.99},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Payment.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
