package clearing

import (
	"errors"
	"testing"
)

func TestRegistry_LazyAccountCreation(t *testing.T) {
	r := NewRegistry()
	if got := r.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
	if err := r.Route(NewDeposit(1, 1, M(2.00))); err != nil {
		t.Fatalf("Route(deposit) = %v, want nil", err)
	}
	if got := r.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
	// an account exists even when its only event was rejected
	if err := r.Route(NewDispute(2, 9)); !errors.Is(err, ErrInvalidDispute) {
		t.Fatalf("Route(dispute) = %v, want ErrInvalidDispute", err)
	}
	if got := r.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestRegistry_RoutesToTheRightAccount(t *testing.T) {
	r := NewRegistry()
	r.Route(NewDeposit(1, 1, M(2.00)))
	r.Route(NewDeposit(2, 2, M(5.00)))
	r.Route(NewWithdrawal(1, 3, M(1.00)))

	views := r.Snapshot()
	if len(views) != 2 {
		t.Fatalf("Snapshot() returned %d views, want 2", len(views))
	}
	if got, want := views[0].Available, M(1.00); !got.Equal(want) {
		t.Errorf("client 1 available = %s, want %s", got, want)
	}
	if got, want := views[1].Available, M(5.00); !got.Equal(want) {
		t.Errorf("client 2 available = %s, want %s", got, want)
	}
}

func TestRegistry_SnapshotOrder(t *testing.T) {
	r := NewRegistry()
	for _, client := range []ClientID{42, 7, 19, 1} {
		r.Route(NewDeposit(client, TransactionID(client), M(1)))
	}
	want := []ClientID{1, 7, 19, 42}
	views := r.Snapshot()
	for i, v := range views {
		if v.Client != want[i] {
			t.Errorf("Snapshot()[%d].Client = %d, want %d", i, v.Client, want[i])
		}
	}
}

func TestRegistry_PropagatesAccountErrors(t *testing.T) {
	r := NewRegistry()
	r.Route(NewDeposit(1, 1, M(2.00)))
	if err := r.Route(NewWithdrawal(1, 2, M(5.00))); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Route(withdrawal) = %v, want ErrInsufficientFunds", err)
	}
	// a rejected event must not leak into any other account
	if got := r.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
}

func TestRegistry_AccountsIteratorStopsEarly(t *testing.T) {
	r := NewRegistry()
	r.Route(NewDeposit(1, 1, M(1)))
	r.Route(NewDeposit(2, 2, M(1)))
	n := 0
	for range r.Accounts() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("iterated %d accounts after break, want 1", n)
	}
}
