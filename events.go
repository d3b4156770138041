package clearing

// ClientID identifies a client. It is unique per account and stable for the
// lifetime of the run.
type ClientID uint16

// TransactionID identifies a deposit. The stream is trusted to never reuse
// an id; the engine does not defend against duplicates.
type TransactionID uint32

// EventType is a typed string identifying the kind of a ledger event.
type EventType string

// Event types used in the exchange format.
const (
	EvtDeposit    EventType = "deposit"
	EvtWithdrawal EventType = "withdrawal"
	EvtDispute    EventType = "dispute"
	EvtResolve    EventType = "resolve"
	EvtChargeback EventType = "chargeback"
)

// LedgerEvent defines the common interface for the five kinds of events an
// account can be asked to apply. The set is closed: dispatch is a plain
// type switch in Account.Apply.
type LedgerEvent interface {
	What() EventType   // What returns the kind of the event (e.g., "deposit").
	Client() ClientID  // Client returns the account the event is addressed to.
	Tx() TransactionID // Tx returns the transaction the event carries or references.
}

type baseEvent struct {
	Kind     EventType
	ClientID ClientID
	TxID     TransactionID
}

// What returns the kind of the event, which is used to identify the type of event.
func (e baseEvent) What() EventType { return e.Kind }

// Client returns the client the event is addressed to.
func (e baseEvent) Client() ClientID { return e.ClientID }

// Tx returns the transaction id carried by the event.
func (e baseEvent) Tx() TransactionID { return e.TxID }

// Deposit credits an account and records a new disputable transaction.
type Deposit struct {
	baseEvent
	Amount Money
}

// NewDeposit creates a deposit event.
func NewDeposit(client ClientID, tx TransactionID, amount Money) Deposit {
	return Deposit{baseEvent: baseEvent{Kind: EvtDeposit, ClientID: client, TxID: tx}, Amount: amount}
}

// Withdrawal debits an account. Withdrawals are not recorded in the account
// history and can never be disputed.
type Withdrawal struct {
	baseEvent
	Amount Money
}

// NewWithdrawal creates a withdrawal event.
func NewWithdrawal(client ClientID, tx TransactionID, amount Money) Withdrawal {
	return Withdrawal{baseEvent: baseEvent{Kind: EvtWithdrawal, ClientID: client, TxID: tx}, Amount: amount}
}

// Dispute contests a previous deposit, moving its amount from available to
// held funds.
type Dispute struct{ baseEvent }

// NewDispute creates a dispute event referencing the deposit tx.
func NewDispute(client ClientID, tx TransactionID) Dispute {
	return Dispute{baseEvent{Kind: EvtDispute, ClientID: client, TxID: tx}}
}

// Resolve cancels an open dispute, returning the held amount to available.
type Resolve struct{ baseEvent }

// NewResolve creates a resolve event referencing the disputed deposit tx.
func NewResolve(client ClientID, tx TransactionID) Resolve {
	return Resolve{baseEvent{Kind: EvtResolve, ClientID: client, TxID: tx}}
}

// Chargeback finalizes a dispute against the account holder, removing the
// held amount and locking the account for good.
type Chargeback struct{ baseEvent }

// NewChargeback creates a chargeback event referencing the disputed deposit tx.
func NewChargeback(client ClientID, tx TransactionID) Chargeback {
	return Chargeback{baseEvent{Kind: EvtChargeback, ClientID: client, TxID: tx}}
}
