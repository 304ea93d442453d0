package broker

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ReadEventDump parses a raw execution event dump as recorded by the
// connection layer (ExecId,Time,Symbol,Side,Shares,Price). Side codes
// stay untouched here; the session maps them when the events are
// replayed. Any malformed row aborts the whole read.
func ReadEventDump(in io.Reader) ([]ExecutionEvent, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = 6

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("read event dump header: %w", err)
	}

	var events []ExecutionEvent
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read event dump row: %w", err)
		}

		shares, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, fmt.Errorf("event %s: parse shares: %w", record[0], err)
		}
		price, err := decimal.NewFromString(record[5])
		if err != nil {
			return nil, fmt.Errorf("event %s: parse price: %w", record[0], err)
		}

		events = append(events, ExecutionEvent{
			ExecID: record[0],
			Time:   record[1],
			Symbol: record[2],
			Side:   record[3],
			Shares: shares,
			Price:  price,
		})
	}
	return events, nil
}

// Replay feeds already-collected events through a session, as if the
// connection layer had just delivered them and closed the stream.
func Replay(events []ExecutionEvent, log zerolog.Logger) *Session {
	ch := make(chan ExecutionEvent, len(events))
	for _, event := range events {
		ch <- event
	}
	close(ch)
	return NewSession(ch, log)
}
