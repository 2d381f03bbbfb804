package engine

import (
	"testing"
)

func TestExtractFields(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		date        string
		amount      float64
		hasAmount   bool
		signal      directionSignal
		description string
	}{
		{
			name:        "currency prefixed",
			line:        "01/15/2024 WALMART PURCHASE $45.67",
			date:        "2024-01-15",
			amount:      45.67,
			hasAmount:   true,
			signal:      signalNone,
			description: "Walmart purchase",
		},
		{
			name:        "CR token means credit",
			line:        "02/01/2024 PAYROLL DEPOSIT $2500.00 CR",
			date:        "2024-02-01",
			amount:      2500.00,
			hasAmount:   true,
			signal:      signalCredit,
			description: "Payroll deposit",
		},
		{
			name:        "DR token means debit",
			line:        "01/20/2024 RENT PAYMENT $1200.00 DR",
			date:        "2024-01-20",
			amount:      1200.00,
			hasAmount:   true,
			signal:      signalDebit,
			description: "Rent payment",
		},
		{
			name:      "last amount wins when a balance follows",
			line:      "01/15/2024 STORE $45.67 $1,234.56",
			date:      "2024-01-15",
			amount:    1234.56,
			hasAmount: true,
			signal:    signalNone,
			// The earlier amount stays in the description prefix.
			description: "Store $45.67",
		},
		{
			name:        "DR suffix without currency marker",
			line:        "01/21/2024 CHECK CARD 450.00 DR",
			date:        "2024-01-21",
			amount:      450.00,
			hasAmount:   true,
			signal:      signalDebit,
			description: "Check card",
		},
		{
			name:        "minus attached to amount means debit",
			line:        "01/10/2024 GYM MEMBERSHIP -$35.00",
			date:        "2024-01-10",
			amount:      35.00,
			hasAmount:   true,
			signal:      signalDebit,
			description: "Gym membership",
		},
		{
			name:        "trailing minus means debit",
			line:        "01/22/2024 CASH MACHINE 100.00-",
			date:        "2024-01-22",
			amount:      100.00,
			hasAmount:   true,
			signal:      signalDebit,
			description: "Cash machine",
		},
		{
			name:        "dash date is not a debit cue",
			line:        "15-01-2024 COFFEE SHOP $5.00",
			date:        "2024-01-15",
			amount:      5.00,
			hasAmount:   true,
			signal:      signalNone,
			description: "Coffee shop",
		},
		{
			name:      "no amount means no transaction",
			line:      "01/15/2024 SEE REVERSE FOR DETAILS",
			date:      "2024-01-15",
			hasAmount: false,
		},
		{
			name:        "invalid date yields amount but no date",
			line:        "13/45/2024 STORE $10.00",
			date:        "",
			amount:      10.00,
			hasAmount:   true,
			signal:      signalNone,
			description: "Store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := extractFields(tt.line)
			if f.hasAmount != tt.hasAmount {
				t.Fatalf("hasAmount: got %v, want %v", f.hasAmount, tt.hasAmount)
			}
			if f.date != tt.date {
				t.Errorf("date: got %q, want %q", f.date, tt.date)
			}
			if !tt.hasAmount {
				return
			}
			if f.amount != tt.amount {
				t.Errorf("amount: got %v, want %v", f.amount, tt.amount)
			}
			if f.signal != tt.signal {
				t.Errorf("signal: got %d, want %d", f.signal, tt.signal)
			}
			if f.description != tt.description {
				t.Errorf("description: got %q, want %q", f.description, tt.description)
			}
		})
	}
}

func TestExtractFieldsThousandsSeparators(t *testing.T) {
	f := extractFields("01/05/2024 WIRE IN $1,234.56")
	if !f.hasAmount {
		t.Fatal("expected an amount")
	}
	if f.amount != 1234.56 {
		t.Errorf("got %v, want 1234.56", f.amount)
	}
}

func TestHasAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"$45.67", true},
		{"450.00 CR", true},
		{"450.00 DR", true},
		{"100.00-", true},
		{"-$35.00", true},
		{"DATE DESCRIPTION AMOUNT BALANCE", false},
		{"Account: 1234567890", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := hasAmount(tt.input); got != tt.expected {
				t.Errorf("hasAmount(%q): got %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
