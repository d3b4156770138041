// Package clearing implements a small clearing engine for client accounts.
// It consumes a chronological stream of ledger events (deposits,
// withdrawals, disputes, resolves and chargebacks) and folds them into
// per-client account snapshots.
//
// The core functionalities include:
//   - Account State Machine: Applying one event at a time to a client's
//     available, held and total balances while preserving the accounting
//     invariant total == available + held, tracking the dispute lifecycle
//     of every deposit, and permanently locking an account after a
//     chargeback.
//   - Registry: Routing each event to the right account, lazily creating
//     accounts on first sight of a client id, and exposing a deterministic
//     read-only view of all accounts for reporting.
//   - Data Exchange: Decoding the CSV event format and encoding the final
//     account snapshots, keeping all monetary values at a fixed precision
//     of 4 fractional digits.
//
// This package serves as the foundational logic for the `ccl` command-line
// tool.
package clearing
