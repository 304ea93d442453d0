package types

import "time"

// Interval is the chart sampling step, in the market-data provider's
// notation (minutes, or D for daily).
type Interval string

const (
	OneMinute      Interval = "1m"
	FiveMinutes    Interval = "5m"
	FifteenMinutes Interval = "15m"
	ThirtyMinutes  Interval = "30m"
	Hour           Interval = "60m"
	Day            Interval = "1d"
)

var IntervalToTime = map[Interval]time.Duration{
	OneMinute:      time.Minute,
	FiveMinutes:    time.Minute * 5,
	FifteenMinutes: time.Minute * 15,
	ThirtyMinutes:  time.Minute * 30,
	Hour:           time.Hour,
	Day:            time.Hour * 24,
}
