package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/mlepage/tradesim"
)

// SummaryMarkdown renders the full state of an account: cash, portfolio
// value, profit/loss, the holdings table and the journal.
func SummaryMarkdown(a *tradesim.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Account %s", a.ID()))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Cash Balance", a.Balance().String()},
			{"Portfolio Value", a.PortfolioValue().String()},
			{"Net Deposits", a.NetDeposits().String()},
			{md.Bold("Profit / Loss"), md.Bold(a.ProfitLoss().SignedString())},
		},
	})

	doc.H2("Holdings")
	holdings := a.Holdings()
	if len(holdings) == 0 {
		doc.PlainText("No shares held.")
	} else {
		var rows [][]string
		for _, symbol := range a.Symbols() {
			rows = append(rows, []string{symbol, strconv.FormatInt(holdings[symbol], 10)})
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Symbol", "Quantity"},
			Rows:      rows,
		})
	}

	doc.H2("Transactions")
	var lines []string
	for _, tx := range a.Transactions() {
		lines = append(lines, Transaction(tx))
	}
	doc.OrderedList(lines...)

	return doc.String()
}

// PricesMarkdown renders the oracle's price table.
func PricesMarkdown(oracle *tradesim.StaticOracle) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Quoted Symbols")
	var rows [][]string
	for _, symbol := range oracle.Symbols() {
		price, err := oracle.Price(symbol)
		if err != nil {
			continue
		}
		rows = append(rows, []string{symbol, price.String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Symbol", "Price"},
		Rows:      rows,
	})

	return doc.String()
}
