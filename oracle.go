package tradesim

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownSymbol reports that the price oracle has no quote for a symbol.
var ErrUnknownSymbol = errors.New("unknown symbol")

// PriceOracle is the price-lookup collaborator used for trade pricing and
// valuation. Implementations must be safe for concurrent use and must treat
// symbols case-insensitively.
//
// The simulator ships with a static table; a production substitute would be
// a live feed behind the same interface.
type PriceOracle interface {
	// Price returns the current price for a symbol, or an error wrapping
	// ErrUnknownSymbol when the symbol is not quoted.
	Price(symbol string) (Money, error)
}

// StaticOracle is a fixed, in-memory price table. It is immutable after
// construction and therefore trivially safe for concurrent lookups.
type StaticOracle struct {
	prices map[string]Money // keyed by uppercase symbol
}

// NewStaticOracle builds an oracle from a symbol-to-price table. Symbols are
// normalized to uppercase; non-positive prices are rejected.
func NewStaticOracle(prices map[string]float64) (*StaticOracle, error) {
	table := make(map[string]Money, len(prices))
	for symbol, price := range prices {
		if price <= 0 {
			return nil, fmt.Errorf("price for %q must be positive, got %v", symbol, price)
		}
		table[strings.ToUpper(symbol)] = M(price)
	}
	return &StaticOracle{prices: table}, nil
}

// DefaultOracle returns the demo price table: AAPL at $170, TSLA at $250 and
// GOOGL at $140.
func DefaultOracle() *StaticOracle {
	o, err := NewStaticOracle(map[string]float64{
		"AAPL":  170.00,
		"TSLA":  250.00,
		"GOOGL": 140.00,
	})
	if err != nil {
		panic(err) // the built-in table is known good
	}
	return o
}

// Price implements PriceOracle.
func (o *StaticOracle) Price(symbol string) (Money, error) {
	price, ok := o.prices[strings.ToUpper(symbol)]
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return price, nil
}

// Symbols returns the quoted symbols in sorted order.
func (o *StaticOracle) Symbols() []string {
	symbols := slices.Collect(maps.Keys(o.prices))
	slices.Sort(symbols)
	return symbols
}
