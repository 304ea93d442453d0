package types

import (
	"errors"
	"fmt"
)

type Side string

const (
	SideTypeBuy  Side = "BUY"
	SideTypeSell Side = "SELL"
)

var ErrUnknownSide = errors.New("unknown execution side")

// SideFromBrokerCode maps a broker execution side code onto Side.
// IB-style BOT/SLD and plain BUY/SELL are accepted; anything else is
// malformed input.
func SideFromBrokerCode(code string) (Side, error) {
	switch code {
	case "BOT", "BUY":
		return SideTypeBuy, nil
	case "SLD", "SELL":
		return SideTypeSell, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSide, code)
	}
}
