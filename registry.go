package clearing

import (
	"iter"
	"maps"
	"slices"
)

// Registry owns the mapping from client id to Account and routes every
// ledger event to the right one.
//
// Accounts are created lazily, on first sight of a client id, and never
// removed. Nothing outside the registry mutates an account.
type Registry struct {
	accounts map[ClientID]*Account
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[ClientID]*Account)}
}

// Route forwards the event to the account of the client it carries,
// creating that account if it does not exist yet. The account's error, if
// any, is propagated unchanged; a failed event has no effect on any
// account.
func (r *Registry) Route(ev LedgerEvent) error {
	return r.account(ev.Client()).Apply(ev)
}

// account returns the account for this client, creating it on first
// reference. A new account starts with all balances at zero, unlocked,
// with an empty history.
func (r *Registry) account(client ClientID) *Account {
	a, ok := r.accounts[client]
	if !ok {
		a = NewAccount(client)
		r.accounts[client] = a
	}
	return a
}

// Len returns the number of known accounts.
func (r *Registry) Len() int { return len(r.accounts) }

// Accounts returns an iterator over all accounts in ascending client id
// order, to keep reports reproducible.
func (r *Registry) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, client := range slices.Sorted(maps.Keys(r.accounts)) {
			if !yield(r.accounts[client]) {
				return
			}
		}
	}
}

// Snapshot returns a read-only view of every known account, in ascending
// client id order.
func (r *Registry) Snapshot() []AccountView {
	views := make([]AccountView, 0, len(r.accounts))
	for a := range r.Accounts() {
		views = append(views, a.View())
	}
	return views
}
