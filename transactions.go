package tradesim

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CommandType is a typed string for identifying transaction records.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdCreated  CommandType = "created"
	CmdDeposit  CommandType = "deposit"
	CmdWithdraw CommandType = "withdraw"
	CmdBuy      CommandType = "buy"
	CmdSell     CommandType = "sell"
)

// Transaction defines the common interface for all records appended to an
// account's journal. Records are immutable once appended; their field set,
// per kind, is the interchange contract a presentation layer may render.
type Transaction interface {
	What() CommandType // What returns the command type of the record (e.g., "buy").
	When() time.Time   // When returns the instant the record was created.
	Equal(Transaction) bool
}

// baseTx carries the fields shared by every record kind: a unique id, the
// command tag, the creation instant, the owning account, and the cash
// balance resulting from the operation.
type baseTx struct {
	ID      string      `json:"id"`
	Command CommandType `json:"command"`
	Time    time.Time   `json:"timestamp"`
	Account string      `json:"account"`
	Balance Money       `json:"balance"`
}

func newBase(command CommandType, at time.Time, account string, balance Money) baseTx {
	return baseTx{
		ID:      uuid.NewString(),
		Command: command,
		Time:    at,
		Account: account,
		Balance: balance,
	}
}

// What returns the command tag identifying the kind of record.
func (t baseTx) What() CommandType { return t.Command }

// When returns the creation instant of the record.
func (t baseTx) When() time.Time { return t.Time }

// head marshals the shared leading fields. The resulting balance is appended
// last by each kind so the journal reads chronologically: what happened,
// then where the balance landed.
func (t baseTx) head() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("command", t.Command)
	w.Append("timestamp", t.Time)
	w.Append("account", t.Account)
	return w.MarshalJSON()
}

func (t baseTx) equal(o baseTx) bool {
	return t.ID == o.ID &&
		t.Command == o.Command &&
		t.Time.Equal(o.Time) &&
		t.Account == o.Account &&
		t.Balance.Equal(o.Balance)
}

// Created is the seed record appended when an account is opened.
type Created struct {
	baseTx
	InitialBalance Money `json:"initialBalance"`
}

// NewCreated creates the account-opening record.
func NewCreated(at time.Time, account string, initial Money) Created {
	return Created{
		baseTx:         newBase(CmdCreated, at, account, initial),
		InitialBalance: initial,
	}
}

// MarshalJSON implements the json.Marshaler interface for Created.
func (t Created) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	head, err := t.baseTx.head()
	if err != nil {
		return nil, err
	}
	w.Embed(head)
	w.Append("initialBalance", t.InitialBalance)
	w.Append("balance", t.Balance)
	return w.MarshalJSON()
}

func (t Created) Equal(other Transaction) bool {
	o, ok := other.(Created)
	return ok && t.baseTx.equal(o.baseTx) && t.InitialBalance.Equal(o.InitialBalance)
}

// Deposit records cash added to the account.
type Deposit struct {
	baseTx
	Amount Money `json:"amount"`
}

// NewDeposit creates a deposit record; balance is the cash balance after the
// deposit was applied.
func NewDeposit(at time.Time, account string, amount, balance Money) Deposit {
	return Deposit{
		baseTx: newBase(CmdDeposit, at, account, balance),
		Amount: amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Deposit.
func (t Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	head, err := t.baseTx.head()
	if err != nil {
		return nil, err
	}
	w.Embed(head)
	w.Append("amount", t.Amount)
	w.Append("balance", t.Balance)
	return w.MarshalJSON()
}

func (t Deposit) Equal(other Transaction) bool {
	o, ok := other.(Deposit)
	return ok && t.baseTx.equal(o.baseTx) && t.Amount.Equal(o.Amount)
}

// Withdraw records cash removed from the account.
type Withdraw struct {
	baseTx
	Amount Money `json:"amount"`
}

// NewWithdraw creates a withdrawal record; balance is the cash balance after
// the withdrawal was applied.
func NewWithdraw(at time.Time, account string, amount, balance Money) Withdraw {
	return Withdraw{
		baseTx: newBase(CmdWithdraw, at, account, balance),
		Amount: amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Withdraw.
func (t Withdraw) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	head, err := t.baseTx.head()
	if err != nil {
		return nil, err
	}
	w.Embed(head)
	w.Append("amount", t.Amount)
	w.Append("balance", t.Balance)
	return w.MarshalJSON()
}

func (t Withdraw) Equal(other Transaction) bool {
	o, ok := other.(Withdraw)
	return ok && t.baseTx.equal(o.baseTx) && t.Amount.Equal(o.Amount)
}

// Buy records a share purchase: the symbol, the quantity bought, the price
// paid per share, and the total cost deducted from the balance.
type Buy struct {
	baseTx
	Symbol        string `json:"symbol"`
	Quantity      int64  `json:"quantity"`
	PricePerShare Money  `json:"pricePerShare"`
	TotalCost     Money  `json:"totalCost"`
}

// NewBuy creates a buy record; balance is the cash balance after the cost
// was deducted.
func NewBuy(at time.Time, account, symbol string, quantity int64, price, cost, balance Money) Buy {
	return Buy{
		baseTx:        newBase(CmdBuy, at, account, balance),
		Symbol:        symbol,
		Quantity:      quantity,
		PricePerShare: price,
		TotalCost:     cost,
	}
}

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	head, err := t.baseTx.head()
	if err != nil {
		return nil, err
	}
	w.Embed(head)
	w.Append("symbol", t.Symbol)
	w.Append("quantity", t.Quantity)
	w.Append("pricePerShare", t.PricePerShare)
	w.Append("totalCost", t.TotalCost)
	w.Append("balance", t.Balance)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Buy.
func (t *Buy) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseTx
		Symbol        string `json:"symbol"`
		Quantity      int64  `json:"quantity"`
		PricePerShare Money  `json:"pricePerShare"`
		TotalCost     Money  `json:"totalCost"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseTx = temp.baseTx
	t.Symbol = temp.Symbol
	t.Quantity = temp.Quantity
	t.PricePerShare = temp.PricePerShare
	t.TotalCost = temp.TotalCost
	return nil
}

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.baseTx.equal(o.baseTx) &&
		t.Symbol == o.Symbol &&
		t.Quantity == o.Quantity &&
		t.PricePerShare.Equal(o.PricePerShare) &&
		t.TotalCost.Equal(o.TotalCost)
}

// Sell records a share sale: the symbol, the quantity sold, the price
// received per share, and the total revenue added to the balance.
type Sell struct {
	baseTx
	Symbol        string `json:"symbol"`
	Quantity      int64  `json:"quantity"`
	PricePerShare Money  `json:"pricePerShare"`
	TotalRevenue  Money  `json:"totalRevenue"`
}

// NewSell creates a sell record; balance is the cash balance after the
// revenue was credited.
func NewSell(at time.Time, account, symbol string, quantity int64, price, revenue, balance Money) Sell {
	return Sell{
		baseTx:        newBase(CmdSell, at, account, balance),
		Symbol:        symbol,
		Quantity:      quantity,
		PricePerShare: price,
		TotalRevenue:  revenue,
	}
}

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	head, err := t.baseTx.head()
	if err != nil {
		return nil, err
	}
	w.Embed(head)
	w.Append("symbol", t.Symbol)
	w.Append("quantity", t.Quantity)
	w.Append("pricePerShare", t.PricePerShare)
	w.Append("totalRevenue", t.TotalRevenue)
	w.Append("balance", t.Balance)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Sell.
func (t *Sell) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseTx
		Symbol        string `json:"symbol"`
		Quantity      int64  `json:"quantity"`
		PricePerShare Money  `json:"pricePerShare"`
		TotalRevenue  Money  `json:"totalRevenue"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseTx = temp.baseTx
	t.Symbol = temp.Symbol
	t.Quantity = temp.Quantity
	t.PricePerShare = temp.PricePerShare
	t.TotalRevenue = temp.TotalRevenue
	return nil
}

func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.baseTx.equal(o.baseTx) &&
		t.Symbol == o.Symbol &&
		t.Quantity == o.Quantity &&
		t.PricePerShare.Equal(o.PricePerShare) &&
		t.TotalRevenue.Equal(o.TotalRevenue)
}
