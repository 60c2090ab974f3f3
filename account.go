package tradesim

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

// Account is the per-user ledger of the simulation: it owns the cash
// balance, the share holdings, and the append-only journal of every
// operation, and derives portfolio value and profit/loss from them.
//
// Every mutating operation is atomic: inputs are validated first and a
// failed operation leaves the account exactly as it was. An exclusive lock
// serializes mutations so an Account may be shared between callers; reads
// return independent copies so they stay valid across later mutations.
type Account struct {
	mu     sync.RWMutex
	id     string
	oracle PriceOracle
	now    func() time.Time

	balance          Money
	holdings         map[string]int64 // uppercase symbol -> positive quantity
	journal          []Transaction
	totalDeposits    Money
	totalWithdrawals Money
}

// NewAccount opens an account with a zero balance, no holdings, and a seed
// "created" record in the journal. The identifier must be non-empty and is
// immutable afterwards.
func NewAccount(id string, oracle PriceOracle) (*Account, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: account id cannot be empty", ErrInvalidInput)
	}
	a := &Account{
		id:       id,
		oracle:   oracle,
		now:      time.Now,
		holdings: make(map[string]int64),
	}
	a.journal = append(a.journal, NewCreated(a.now(), a.id, a.balance))
	return a, nil
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// Deposit adds cash to the account. The amount must be positive.
func (a *Account) Deposit(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit amount must be positive, got %s", ErrInvalidInput, amount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	a.totalDeposits = a.totalDeposits.Add(amount)
	a.journal = append(a.journal, NewDeposit(a.now(), a.id, amount, a.balance))
	return nil
}

// Withdraw removes cash from the account. The amount must be positive and
// may not exceed the current balance.
func (a *Account) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal amount must be positive, got %s", ErrInvalidInput, amount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance.LessThan(amount) {
		return fmt.Errorf("%w: cannot withdraw %s, balance is %s", ErrInsufficientFunds, amount, a.balance)
	}
	a.balance = a.balance.Sub(amount)
	a.totalWithdrawals = a.totalWithdrawals.Add(amount)
	a.journal = append(a.journal, NewWithdraw(a.now(), a.id, amount, a.balance))
	return nil
}

// Buy purchases quantity shares of symbol at the oracle's current price,
// deducting the total cost from the balance. The symbol is uppercased before
// any further processing.
func (a *Account) Buy(symbol string, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity of shares to buy must be positive, got %d", ErrInvalidInput, quantity)
	}
	symbol = strings.ToUpper(symbol)

	price, err := a.oracle.Price(symbol)
	if err != nil {
		return fmt.Errorf("cannot buy %s: %w", symbol, err)
	}
	cost := price.MulInt(quantity)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance.LessThan(cost) {
		return fmt.Errorf("%w: cannot buy %d %s for %s, balance is %s",
			ErrInsufficientFunds, quantity, symbol, cost, a.balance)
	}
	a.balance = a.balance.Sub(cost)
	a.holdings[symbol] += quantity
	a.journal = append(a.journal, NewBuy(a.now(), a.id, symbol, quantity, price, cost, a.balance))
	return nil
}

// Sell sells quantity shares of symbol at the oracle's current price,
// crediting the revenue to the balance. Holdings sufficiency is checked
// before the price lookup: selling shares that are not held is a holdings
// error even when the symbol is also unknown to the oracle. A holding that
// reaches zero is removed entirely.
func (a *Account) Sell(symbol string, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity of shares to sell must be positive, got %d", ErrInvalidInput, quantity)
	}
	symbol = strings.ToUpper(symbol)

	a.mu.Lock()
	defer a.mu.Unlock()

	if held := a.holdings[symbol]; held < quantity {
		return fmt.Errorf("%w: cannot sell %d shares of %s, holding %d",
			ErrInsufficientHoldings, quantity, symbol, held)
	}

	price, err := a.oracle.Price(symbol)
	if err != nil {
		return fmt.Errorf("cannot sell %s: %w", symbol, err)
	}
	revenue := price.MulInt(quantity)

	a.balance = a.balance.Add(revenue)
	a.holdings[symbol] -= quantity
	if a.holdings[symbol] == 0 {
		delete(a.holdings, symbol)
	}
	a.journal = append(a.journal, NewSell(a.now(), a.id, symbol, quantity, price, revenue, a.balance))
	return nil
}

// Balance returns the current cash balance.
func (a *Account) Balance() Money {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balance
}

// Holdings returns an independent copy of the current holdings. Mutating the
// returned map does not affect the account.
func (a *Account) Holdings() map[string]int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return maps.Clone(a.holdings)
}

// Symbols returns the currently held symbols in sorted order.
func (a *Account) Symbols() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	symbols := slices.Collect(maps.Keys(a.holdings))
	slices.Sort(symbols)
	return symbols
}

// Transactions returns an independent copy of the journal, oldest first.
// Records themselves are immutable.
func (a *Account) Transactions() []Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.journal)
}

// PortfolioValue returns the cash balance plus the market value of all
// holdings at the oracle's current prices. A held symbol the oracle can no
// longer price contributes zero rather than aborting the valuation; this is
// a deliberate best-effort policy.
func (a *Account) PortfolioValue() Money {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.portfolioValueLocked()
}

func (a *Account) portfolioValueLocked() Money {
	value := a.balance
	for symbol, quantity := range a.holdings {
		price, err := a.oracle.Price(symbol)
		if err != nil {
			continue
		}
		value = value.Add(price.MulInt(quantity))
	}
	return value
}

// NetDeposits returns the net capital injected into the account: total
// deposits minus total withdrawals. It is the baseline for profit/loss.
func (a *Account) NetDeposits() Money {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.totalDeposits.Sub(a.totalWithdrawals)
}

// ProfitLoss returns the portfolio value minus the net capital injected.
// Positive means profit, negative means loss, zero is breakeven.
func (a *Account) ProfitLoss() Money {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.portfolioValueLocked().Sub(a.totalDeposits.Sub(a.totalWithdrawals))
}
