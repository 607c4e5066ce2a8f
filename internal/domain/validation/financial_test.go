package validation

import (
	"testing"
	"time"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		name  string
		input *float64
		valid bool
	}{
		{"absent", nil, true},
		{"zero allowed", f(0), true},
		{"typical", f(25_000_000), true},
		{"at limit", f(999_999_999_999), true},
		{"over limit", f(1_000_000_000_000), false},
		{"negative", f(-1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Amount(tc.input, "契約金額")
			if got.Valid != tc.valid {
				t.Fatalf("Amount: valid=%v, want %v (msg=%q)", got.Valid, tc.valid, got.Message)
			}
		})
	}
}

func TestSettlementDate(t *testing.T) {
	past := time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	if got := SettlementDate(""); !got.Valid || got.Message != "" {
		t.Fatalf("empty date should pass silently")
	}
	if got := SettlementDate(past); !got.Valid || got.Message != "" {
		t.Fatalf("past date should pass silently, got msg=%q", got.Message)
	}

	got := SettlementDate(future)
	if !got.Valid {
		t.Fatalf("future date must not block")
	}
	if got.Message != "未来の決済日が設定されています（警告）" {
		t.Fatalf("unexpected warning message: %q", got.Message)
	}

	// Unparseable dates are the struct-tag validator's problem, not ours.
	if got := SettlementDate("garbage"); !got.Valid || got.Message != "" {
		t.Fatalf("unparseable date should pass silently")
	}
}
