// Package tradesim implements a single-user trading account simulator:
// a cash balance, share holdings, and an append-only journal of every
// operation, together with derived metrics such as portfolio value and
// profit/loss.
//
// The core functionalities include:
//   - Account Ledger: recording deposits, withdrawals, buys and sells in an
//     immutable, chronological journal, with strict balance and holdings
//     invariants (the balance never goes negative, holdings never hold a
//     zero or negative quantity).
//   - Price Lookup: a small PriceOracle interface that maps a symbol to a
//     current price. The simulator ships with a static table; a live feed
//     would be a drop-in replacement behind the same interface.
//   - Valuation: portfolio value (cash plus marked-to-market holdings) and
//     profit/loss against the net capital injected into the account.
//   - Interchange: encoding and decoding the journal to and from a
//     human-readable JSONL stream for display and export.
//
// This package serves as the foundational logic for the `tsim` command-line
// tool. It is a teaching/demo ledger, not a production trading system.
package tradesim
