// Package broker adapts a broker session's asynchronous execution
// delivery into a plain fetch call. Instead of a callback object wired
// into the vendor API, the session drains a channel of execution events
// and returns the completed transaction list.
package broker

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"portfoliodash/types"
)

// ExecutionEvent is one execution detail as delivered by the broker
// session. Side carries the broker's code: IB-style BOT/SLD or plain
// BUY/SELL.
type ExecutionEvent struct {
	ExecID string
	Time   string
	Symbol string
	Side   string
	Shares decimal.Decimal
	Price  decimal.Decimal
}

// Session collects execution events from a broker connection. The
// events channel is owned by the connection layer, which closes it once
// the broker signals the end of the execution report.
type Session struct {
	events <-chan ExecutionEvent
	log    zerolog.Logger
}

func NewSession(events <-chan ExecutionEvent, log zerolog.Logger) *Session {
	return &Session{
		events: events,
		log:    log.With().Str("component", "broker").Logger(),
	}
}

// FetchExecutions drains the event stream into transactions until the
// stream closes or the context expires. TotalAmount is derived here,
// once, as Shares*Price; downstream consumers treat it as supplied
// ground truth from then on.
func (s *Session) FetchExecutions(ctx context.Context) ([]types.Transaction, error) {
	var transactions []types.Transaction
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fetch executions: %w", ctx.Err())
		case event, ok := <-s.events:
			if !ok {
				s.log.Info().Int("count", len(transactions)).Msg("execution report complete")
				return transactions, nil
			}

			side, err := types.SideFromBrokerCode(event.Side)
			if err != nil {
				return nil, fmt.Errorf("execution %s: %w", event.ExecID, err)
			}

			totalAmount := event.Shares.Mul(event.Price)
			s.log.Debug().
				Str("execId", event.ExecID).
				Str("symbol", event.Symbol).
				Str("side", string(side)).
				Str("totalAmount", totalAmount.String()).
				Msg("execution received")

			transactions = append(transactions, types.NewTransaction(
				event.ExecID,
				event.Time,
				event.Symbol,
				side,
				event.Shares,
				event.Price,
				totalAmount,
			))
		}
	}
}
