package tradesim

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTransaction marshals a single record to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", tx.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %s record: %w", tx.What(), err)
	}
	return nil
}

// EncodeJournal writes a journal to an io.Writer in JSONL format, one record
// per line, in the order given. Key order within each record is fixed, so
// the output is canonical and diff-friendly.
func EncodeJournal(w io.Writer, journal []Transaction) error {
	for _, tx := range journal {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeJournal reads a JSONL stream, decodes each line into the record kind
// named by its command tag, and returns the records in input order.
func DecodeJournal(r io.Reader) ([]Transaction, error) {
	var journal []Transaction
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(line), err)
		}

		var decoded Transaction
		var err error
		switch identifier.Command {
		case CmdCreated:
			var tx Created
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case CmdDeposit:
			var tx Deposit
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case CmdWithdraw:
			var tx Withdraw
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case CmdBuy:
			var tx Buy
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case CmdSell:
			var tx Sell
			err = json.Unmarshal(line, &tx)
			decoded = tx
		default:
			err = fmt.Errorf("unknown transaction command: %q", identifier.Command)
		}
		if err != nil {
			return nil, err
		}
		journal = append(journal, decoded)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return journal, nil
}
