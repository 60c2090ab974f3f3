package tradesim

import (
	"encoding/json"
	"testing"
	"time"
)

var txTestTime = time.Date(2025, time.June, 1, 10, 0, 1, 0, time.UTC)

func TestTransaction_MarshalJSON(t *testing.T) {
	base := func(cmd CommandType, balance Money) baseTx {
		return baseTx{ID: "tx-1", Command: cmd, Time: txTestTime, Account: "u1", Balance: balance}
	}

	testCases := []struct {
		name string
		tx   Transaction
		want string
	}{
		{
			name: "created",
			tx:   Created{baseTx: base(CmdCreated, USD(0))},
			want: `{"id":"tx-1","command":"created","timestamp":"2025-06-01T10:00:01Z","account":"u1","initialBalance":0,"balance":0}`,
		},
		{
			name: "deposit",
			tx:   Deposit{baseTx: base(CmdDeposit, USD(1000)), Amount: USD(1000)},
			want: `{"id":"tx-1","command":"deposit","timestamp":"2025-06-01T10:00:01Z","account":"u1","amount":1000,"balance":1000}`,
		},
		{
			name: "withdraw",
			tx:   Withdraw{baseTx: base(CmdWithdraw, USD(850)), Amount: USD(150)},
			want: `{"id":"tx-1","command":"withdraw","timestamp":"2025-06-01T10:00:01Z","account":"u1","amount":150,"balance":850}`,
		},
		{
			name: "buy",
			tx: Buy{
				baseTx: base(CmdBuy, USD(150)),
				Symbol: "AAPL", Quantity: 5,
				PricePerShare: USD(170), TotalCost: USD(850),
			},
			want: `{"id":"tx-1","command":"buy","timestamp":"2025-06-01T10:00:01Z","account":"u1","symbol":"AAPL","quantity":5,"pricePerShare":170,"totalCost":850,"balance":150}`,
		},
		{
			name: "sell",
			tx: Sell{
				baseTx: base(CmdSell, USD(1000)),
				Symbol: "AAPL", Quantity: 5,
				PricePerShare: USD(170), TotalRevenue: USD(850),
			},
			want: `{"id":"tx-1","command":"sell","timestamp":"2025-06-01T10:00:01Z","account":"u1","symbol":"AAPL","quantity":5,"pricePerShare":170,"totalRevenue":850,"balance":1000}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.tx)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("Marshal =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestTransaction_Equal(t *testing.T) {
	buy := NewBuy(txTestTime, "u1", "AAPL", 5, USD(170), USD(850), USD(150))

	if !buy.Equal(buy) {
		t.Error("a record must equal itself")
	}

	other := buy
	other.Quantity = 4
	if buy.Equal(other) {
		t.Error("records with different quantities compare equal")
	}

	sell := NewSell(txTestTime, "u1", "AAPL", 5, USD(170), USD(850), USD(1000))
	if buy.Equal(sell) {
		t.Error("records of different kinds compare equal")
	}

	deposit := NewDeposit(txTestTime, "u1", USD(100), USD(100))
	same := deposit
	if !deposit.Equal(same) {
		t.Error("identical deposit records compare unequal")
	}
}

func TestNewRecord_AssignsUniqueIDs(t *testing.T) {
	a := NewDeposit(txTestTime, "u1", USD(1), USD(1))
	b := NewDeposit(txTestTime, "u1", USD(1), USD(1))
	if a.ID == "" || b.ID == "" {
		t.Fatal("record created without an id")
	}
	if a.ID == b.ID {
		t.Errorf("two records share id %q", a.ID)
	}
}
