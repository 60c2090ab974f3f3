package renderer

import (
	"strings"
	"testing"

	"github.com/mlepage/tradesim"
)

func demoAccount(t *testing.T) *tradesim.Account {
	t.Helper()
	a, err := tradesim.NewAccount("u1", tradesim.DefaultOracle())
	if err != nil {
		t.Fatalf("NewAccount failed: %v", err)
	}
	if err := a.Deposit(tradesim.M(1000)); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := a.Buy("AAPL", 5); err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	return a
}

func TestTransaction(t *testing.T) {
	a := demoAccount(t)
	journal := a.Transactions()

	testCases := []struct {
		name string
		tx   tradesim.Transaction
		want string
	}{
		{name: "created", tx: journal[0], want: "Account u1 created with $0.00"},
		{name: "deposit", tx: journal[1], want: "Deposited $1,000.00, balance $1,000.00"},
		{name: "buy", tx: journal[2], want: "Bought 5 AAPL at $170.00 for $850.00, balance $150.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Transaction(tc.tx); got != tc.want {
				t.Errorf("Transaction() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSummaryMarkdown(t *testing.T) {
	a := demoAccount(t)
	got := SummaryMarkdown(a)

	for _, want := range []string{
		"# Account u1",
		"Cash Balance",
		"$150.00",
		"## Holdings",
		"AAPL",
		"## Transactions",
		"Bought 5 AAPL",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_EmptyAccount(t *testing.T) {
	a, err := tradesim.NewAccount("fresh", tradesim.DefaultOracle())
	if err != nil {
		t.Fatalf("NewAccount failed: %v", err)
	}
	got := SummaryMarkdown(a)
	if !strings.Contains(got, "No shares held.") {
		t.Errorf("SummaryMarkdown() of a fresh account missing the empty-holdings note:\n%s", got)
	}
}

func TestPricesMarkdown(t *testing.T) {
	got := PricesMarkdown(tradesim.DefaultOracle())
	for _, want := range []string{"AAPL", "$170.00", "TSLA", "$250.00", "GOOGL", "$140.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("PricesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
