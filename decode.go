package clearing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file decodes the exchange format: one CSV row per ledger event.
//
//	type, client, tx, amount
//	deposit, 1, 1, 2.0
//	dispute, 1, 1,
//
// Dispute, resolve and chargeback rows reference a previous transaction and
// carry no amount of their own; a surplus amount column on those rows is
// ignored. A leading header row is optional.

// EventReader reads ledger events one at a time from a CSV stream.
type EventReader struct {
	csv   *csv.Reader
	line  int
	first bool
}

// NewEventReader creates a reader for the CSV exchange format.
func NewEventReader(r io.Reader) *EventReader {
	c := csv.NewReader(r)
	c.TrimLeadingSpace = true
	// rows referencing a transaction have no amount column
	c.FieldsPerRecord = -1
	return &EventReader{csv: c, first: true}
}

// Read returns the next event from the stream, io.EOF at the end of it, or
// an error wrapping ErrInvalidRecord for a malformed row.
func (er *EventReader) Read() (LedgerEvent, error) {
	for {
		record, err := er.csv.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		er.line++
		if err != nil {
			return nil, er.errorf("%v", err)
		}
		if er.first {
			er.first = false
			if strings.TrimSpace(record[0]) == "type" {
				continue // header row
			}
		}
		return er.parse(record)
	}
}

// parse turns one CSV record into a typed event.
func (er *EventReader) parse(record []string) (LedgerEvent, error) {
	if len(record) < 3 {
		return nil, er.errorf("want at least 3 fields, got %d", len(record))
	}
	client, tx, err := er.ids(record)
	if err != nil {
		return nil, err
	}

	switch kind := EventType(strings.TrimSpace(record[0])); kind {
	case EvtDeposit, EvtWithdrawal:
		if len(record) < 4 {
			return nil, er.errorf("%s row has no amount", kind)
		}
		amount, err := er.amount(record[3])
		if err != nil {
			return nil, err
		}
		if kind == EvtDeposit {
			return NewDeposit(client, tx, amount), nil
		}
		return NewWithdrawal(client, tx, amount), nil
	case EvtDispute:
		return NewDispute(client, tx), nil
	case EvtResolve:
		return NewResolve(client, tx), nil
	case EvtChargeback:
		return NewChargeback(client, tx), nil
	default:
		return nil, er.errorf("unknown event type %q", record[0])
	}
}

// ids parses the client and tx columns shared by all rows.
func (er *EventReader) ids(record []string) (ClientID, TransactionID, error) {
	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return 0, 0, er.errorf("bad client id %q: %v", record[1], err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return 0, 0, er.errorf("bad transaction id %q: %v", record[2], err)
	}
	return ClientID(client), TransactionID(tx), nil
}

// amount parses a non-negative decimal amount column.
func (er *EventReader) amount(field string) (Money, error) {
	m, err := ParseMoney(strings.TrimSpace(field))
	if err != nil {
		return Money{}, er.errorf("bad amount %q: %v", field, err)
	}
	if m.IsNegative() {
		return Money{}, er.errorf("negative amount %q", field)
	}
	return m, nil
}

func (er *EventReader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidRecord, er.line, fmt.Sprintf(format, args...))
}
