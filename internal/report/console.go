package report

import (
	"fmt"
	"io"

	"portfoliodash/types"
)

// WriteText renders a plain-text summary of the payload.
func WriteText(w io.Writer, payload types.DashboardPayload) {
	fmt.Fprintln(w, "===== Portfolio Dashboard =====")
	fmt.Fprintf(w, "Transactions:          %d\n", len(payload.Dates))
	fmt.Fprintf(w, "Buy Legs:              %d\n", len(payload.ROISeries))

	fmt.Fprintln(w, "\n-- ROI per Buy Leg --")
	for i, roi := range payload.ROISeries {
		fmt.Fprintf(w, "  #%d: %s%% (cumulative %s%%)\n", i+1, roi.StringFixed(2), payload.CumulativeROISeries[i].StringFixed(2))
	}

	if n := len(payload.BenchmarkSeries); n > 0 {
		fmt.Fprintln(w, "\n-- Benchmark --")
		fmt.Fprintf(w, "Constituents:          %d\n", n)
		fmt.Fprintf(w, "First/Last Ref Price:  %s / %s\n",
			payload.BenchmarkSeries[0].StringFixed(2),
			payload.BenchmarkSeries[n-1].StringFixed(2))
	}

	fmt.Fprintln(w, "\n-- Risk-Adjusted --")
	fmt.Fprintf(w, "Sharpe Ratio:          %s\n", payload.SharpeRatio.StringFixed(4))

	fmt.Fprintln(w, "===============================")
}
