// Package renderer turns accounts and journal records into markdown for the
// tsim command-line tool. It produces plain markdown strings; styling them
// for the terminal is the caller's concern.
package renderer

import (
	"fmt"

	"github.com/mlepage/tradesim"
)

// Transaction renders a journal record as a one-line description.
func Transaction(tx tradesim.Transaction) string {
	switch v := tx.(type) {
	case tradesim.Created:
		return fmt.Sprintf("Account %s created with %s", v.Account, v.InitialBalance)
	case tradesim.Deposit:
		return fmt.Sprintf("Deposited %s, balance %s", v.Amount, v.Balance)
	case tradesim.Withdraw:
		return fmt.Sprintf("Withdrew %s, balance %s", v.Amount, v.Balance)
	case tradesim.Buy:
		return fmt.Sprintf("Bought %d %s at %s for %s, balance %s",
			v.Quantity, v.Symbol, v.PricePerShare, v.TotalCost, v.Balance)
	case tradesim.Sell:
		return fmt.Sprintf("Sold %d %s at %s for %s, balance %s",
			v.Quantity, v.Symbol, v.PricePerShare, v.TotalRevenue, v.Balance)
	default:
		return string(tx.What())
	}
}
