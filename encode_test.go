package tradesim

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeJournal_RoundTrip(t *testing.T) {
	a := newTestAccount(t, "u1")
	if err := a.Deposit(USD(1000)); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := a.Buy("AAPL", 5); err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if err := a.Sell("AAPL", 2); err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if err := a.Withdraw(USD(40)); err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	journal := a.Transactions()

	var buf bytes.Buffer
	if err := EncodeJournal(&buf, journal); err != nil {
		t.Fatalf("EncodeJournal failed: %v", err)
	}
	if got, want := strings.Count(buf.String(), "\n"), len(journal); got != want {
		t.Errorf("encoded %d lines, want %d", got, want)
	}

	decoded, err := DecodeJournal(&buf)
	if err != nil {
		t.Fatalf("DecodeJournal failed: %v", err)
	}
	if len(decoded) != len(journal) {
		t.Fatalf("decoded %d records, want %d", len(decoded), len(journal))
	}
	for i := range journal {
		if !journal[i].Equal(decoded[i]) {
			t.Errorf("record %d does not round-trip:\n  in:  %#v\n  out: %#v", i, journal[i], decoded[i])
		}
	}
}

func TestDecodeJournal_SkipsEmptyLines(t *testing.T) {
	in := `{"id":"a","command":"deposit","timestamp":"2025-06-01T10:00:01Z","account":"u1","amount":10,"balance":10}

{"id":"b","command":"withdraw","timestamp":"2025-06-01T10:00:02Z","account":"u1","amount":5,"balance":5}
`
	journal, err := DecodeJournal(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeJournal failed: %v", err)
	}
	if len(journal) != 2 {
		t.Fatalf("decoded %d records, want 2", len(journal))
	}
	if journal[0].What() != CmdDeposit || journal[1].What() != CmdWithdraw {
		t.Errorf("decoded kinds = %s, %s; want deposit, withdraw", journal[0].What(), journal[1].What())
	}
}

func TestDecodeJournal_UnknownCommand(t *testing.T) {
	in := `{"id":"a","command":"split","timestamp":"2025-06-01T10:00:01Z","account":"u1"}`
	if _, err := DecodeJournal(strings.NewReader(in)); err == nil {
		t.Error("DecodeJournal accepted an unknown command")
	}
}

func TestDecodeJournal_PreservesOrder(t *testing.T) {
	a := newTestAccount(t, "u1")
	if err := a.Deposit(USD(100)); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := a.Deposit(USD(200)); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeJournal(&buf, a.Transactions()); err != nil {
		t.Fatalf("EncodeJournal failed: %v", err)
	}
	decoded, err := DecodeJournal(&buf)
	if err != nil {
		t.Fatalf("DecodeJournal failed: %v", err)
	}

	first, ok := decoded[1].(Deposit)
	if !ok {
		t.Fatalf("record 1 is %T, want Deposit", decoded[1])
	}
	second, ok := decoded[2].(Deposit)
	if !ok {
		t.Fatalf("record 2 is %T, want Deposit", decoded[2])
	}
	if !first.Amount.Equal(USD(100)) || !second.Amount.Equal(USD(200)) {
		t.Errorf("journal order not preserved: %s then %s", first.Amount, second.Amount)
	}
}
