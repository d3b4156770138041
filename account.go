package clearing

import "fmt"

// Account owns one client's balances and the history of its own deposits.
//
// It applies one ledger event at a time and either mutates itself or, on a
// rejected event, reports a typed failure and leaves every balance exactly
// as it was. The single documented exception is the disputed flag of a
// transaction whose dispute is rejected for insufficient funds; see dispute.
type Account struct {
	client       ClientID
	available    Money
	held         Money
	total        Money
	frozen       bool
	transactions []transaction
}

// transaction is the record of a deposit, owned exclusively by its Account.
// It is created by a deposit event, mutated only by dispute lifecycle
// events referencing its id, and never deleted.
type transaction struct {
	id       TransactionID
	amount   Money
	disputed bool
}

// NewAccount creates an empty, unlocked account for the given client.
func NewAccount(client ClientID) *Account {
	return &Account{client: client}
}

// Client returns the account's client id.
func (a *Account) Client() ClientID { return a.client }

// Available returns the funds the client can withdraw or dispute now.
func (a *Account) Available() Money { return a.available }

// Held returns the funds frozen pending dispute resolution.
func (a *Account) Held() Money { return a.held }

// Total returns the sum of available and held funds.
func (a *Account) Total() Money { return a.total }

// Frozen reports whether the account underwent a chargeback. Once true,
// every further event on the account is rejected.
func (a *Account) Frozen() bool { return a.frozen }

// OpenDisputes returns the number of transactions currently flagged disputed.
func (a *Account) OpenDisputes() int {
	n := 0
	for i := range a.transactions {
		if a.transactions[i].disputed {
			n++
		}
	}
	return n
}

// Apply is the main api for the Account. It handles a single ledger event
// and updates the account accordingly.
func (a *Account) Apply(ev LedgerEvent) error {
	if a.frozen {
		return ErrLockedAccount
	}
	switch v := ev.(type) {
	case Deposit:
		a.deposit(v.Tx(), v.Amount)
		return nil
	case Withdrawal:
		return a.withdraw(v.Amount)
	case Dispute:
		return a.dispute(v.Tx())
	case Resolve:
		return a.resolve(v.Tx())
	case Chargeback:
		return a.chargeback(v.Tx())
	}
	// the event set is closed, this is unreachable
	return fmt.Errorf("unhandled ledger event %q", ev.What())
}

// deposit credits the account and records the transaction.
//
// It cannot fail: the decoding layer is responsible for rejecting negative
// or unparseable amounts before they reach this boundary.
func (a *Account) deposit(tx TransactionID, amount Money) {
	amount = amount.round()
	a.available = a.available.Add(amount)
	a.total = a.total.Add(amount)
	a.transactions = append(a.transactions, transaction{id: tx, amount: amount})
}

// withdraw debits the account.
//
// Fails if the available funds are lower than the requested amount.
func (a *Account) withdraw(amount Money) error {
	amount = amount.round()
	if a.available.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.available = a.available.Sub(amount)
	a.total = a.total.Sub(amount)
	return nil
}

// dispute contests a previous deposit, moving its amount from available to
// held funds.
//
// Fails if the transaction is unknown or already disputed, and if the
// available funds are lower than the transaction amount. On that last
// rejection the transaction is still flagged disputed: the reference
// behavior flags before checking funds, and output compatibility wins over
// tidiness here.
func (a *Account) dispute(tx TransactionID) error {
	t := a.transaction(tx)
	if t == nil || t.disputed {
		return ErrInvalidDispute
	}
	t.disputed = true
	if a.available.LessThan(t.amount) {
		return ErrInsufficientFundsForDispute
	}
	a.available = a.available.Sub(t.amount)
	a.held = a.held.Add(t.amount)
	return nil
}

// resolve cancels an open dispute, returning the held amount to available.
//
// Fails if the transaction is unknown or not disputed. The disputed flag is
// not cleared: a resolved transaction can be disputed again, so resolve
// also rejects when the amount is no longer held, to keep held funds from
// going negative on a duplicate resolve.
func (a *Account) resolve(tx TransactionID) error {
	t := a.transaction(tx)
	if t == nil || !t.disputed || a.held.LessThan(t.amount) {
		return ErrInvalidResolve
	}
	a.available = a.available.Add(t.amount)
	a.held = a.held.Sub(t.amount)
	return nil
}

// chargeback finalizes a dispute against the account holder: the held
// amount is removed from the account and the account is locked for good.
//
// Fails if the transaction is unknown or not disputed, or if the amount is
// no longer held.
func (a *Account) chargeback(tx TransactionID) error {
	t := a.transaction(tx)
	if t == nil || !t.disputed || a.held.LessThan(t.amount) {
		return ErrInvalidChargeback
	}
	a.total = a.total.Sub(t.amount)
	a.held = a.held.Sub(t.amount)
	a.frozen = true
	return nil
}

// transaction returns the deposit recorded with this id, or nil if unknown.
// Lookup is in arrival order, so on a (undefended) duplicate id the first
// deposit wins.
func (a *Account) transaction(id TransactionID) *transaction {
	for i := range a.transactions {
		if a.transactions[i].id == id {
			return &a.transactions[i]
		}
	}
	return nil
}
