package clearing

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// readAll drains the reader, failing the test on any decoding error.
func readAll(t *testing.T, input string) []LedgerEvent {
	t.Helper()
	er := NewEventReader(strings.NewReader(input))
	var events []LedgerEvent
	for {
		ev, err := er.Read()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("Read() = %v", err)
		}
		events = append(events, ev)
	}
}

func TestEventReader_Read(t *testing.T) {
	input := `type, client, tx, amount
deposit, 1, 1, 2.0
withdrawal, 1, 2, 1.5
dispute, 1, 1,
resolve, 1, 1,
chargeback, 1, 1,
`
	events := readAll(t, input)
	want := []LedgerEvent{
		NewDeposit(1, 1, M(2.0)),
		NewWithdrawal(1, 2, M(1.5)),
		NewDispute(1, 1),
		NewResolve(1, 1),
		NewChargeback(1, 1),
	}
	if len(events) != len(want) {
		t.Fatalf("decoded %d events, want %d", len(events), len(want))
	}
	for i, ev := range events {
		if ev.What() != want[i].What() || ev.Client() != want[i].Client() || ev.Tx() != want[i].Tx() {
			t.Errorf("event[%d] = %s client=%d tx=%d, want %s client=%d tx=%d",
				i, ev.What(), ev.Client(), ev.Tx(), want[i].What(), want[i].Client(), want[i].Tx())
		}
	}
	if got, want := events[0].(Deposit).Amount, M(2.0); !got.Equal(want) {
		t.Errorf("deposit amount = %s, want %s", got, want)
	}
	if got, want := events[1].(Withdrawal).Amount, M(1.5); !got.Equal(want) {
		t.Errorf("withdrawal amount = %s, want %s", got, want)
	}
}

func TestEventReader_NoHeader(t *testing.T) {
	events := readAll(t, "deposit, 3, 7, 10.0\n")
	if len(events) != 1 {
		t.Fatalf("decoded %d events, want 1", len(events))
	}
	if events[0].Client() != 3 || events[0].Tx() != 7 {
		t.Errorf("event = client=%d tx=%d, want client=3 tx=7", events[0].Client(), events[0].Tx())
	}
}

func TestEventReader_DisputeRowWithoutAmountColumn(t *testing.T) {
	// the reference dataset omits the trailing comma on referencing rows
	events := readAll(t, "deposit, 1, 1, 2.0\ndispute, 1, 1\n")
	if len(events) != 2 {
		t.Fatalf("decoded %d events, want 2", len(events))
	}
}

func TestEventReader_MalformedRows(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "unknown type", input: "transfer, 1, 1, 2.0\n"},
		{name: "missing fields", input: "deposit, 1\n"},
		{name: "deposit without amount", input: "deposit, 1, 1\n"},
		{name: "bad client id", input: "deposit, x, 1, 2.0\n"},
		{name: "client id overflow", input: "deposit, 70000, 1, 2.0\n"},
		{name: "bad transaction id", input: "deposit, 1, x, 2.0\n"},
		{name: "bad amount", input: "deposit, 1, 1, two\n"},
		{name: "negative amount", input: "deposit, 1, 1, -2.0\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			er := NewEventReader(strings.NewReader(tc.input))
			_, err := er.Read()
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("Read() = %v, want ErrInvalidRecord", err)
			}
		})
	}
}
