package broker

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"portfoliodash/types"
)

func TestReplayEventDump(t *testing.T) {
	in := strings.Join([]string{
		"ExecId,Time,Symbol,Side,Shares,Price",
		"00012ec5.676a4251.01.01,20241224 11:46:53 EET,AAPL,BOT,100,255.45",
		"00012ec5.676a4300.01.01,20241224 14:02:11 EET,TSLA,SLD,8,410.10",
	}, "\n")

	events, err := ReadEventDump(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadEventDump() unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Side != "BOT" {
		t.Errorf("Side = %q, want raw BOT", events[0].Side)
	}

	got, err := Replay(events, zerolog.Nop()).FetchExecutions(context.Background())
	if err != nil {
		t.Fatalf("FetchExecutions() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Side != types.SideTypeBuy || got[1].Side != types.SideTypeSell {
		t.Errorf("sides = %q, %q", got[0].Side, got[1].Side)
	}
	if !got[0].TotalAmount.Equal(decimal.RequireFromString("25545")) {
		t.Errorf("TotalAmount = %s, want 25545", got[0].TotalAmount)
	}
}

func TestReadEventDump_FailFast(t *testing.T) {
	header := "ExecId,Time,Symbol,Side,Shares,Price"
	tests := []struct {
		name string
		rows []string
	}{
		{
			name: "wrong field count",
			rows: []string{"e1,20241224,AAPL,BOT,100"},
		},
		{
			name: "bad shares",
			rows: []string{"e1,20241224,AAPL,BOT,abc,255.45"},
		},
		{
			name: "bad price",
			rows: []string{"e1,20241224,AAPL,BOT,100,"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.Join(append([]string{header}, tt.rows...), "\n")
			if _, err := ReadEventDump(strings.NewReader(in)); err == nil {
				t.Fatal("ReadEventDump() expected error, got nil")
			}
		})
	}
}
