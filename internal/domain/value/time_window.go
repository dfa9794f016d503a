package value

import (
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"deal_feed/pkg/errcodes"
)

// TimeWindow фильтр по времени до окончания сделки.
type TimeWindow string

const (
	TimeWindowAll TimeWindow = "all"
	TimeWindow24h TimeWindow = "24h"
	TimeWindow48h TimeWindow = "48h"
	TimeWindow72h TimeWindow = "72h"
)

func (w TimeWindow) String() string {
	return string(w)
}

// Hours порог окна в часах; 0 для all.
func (w TimeWindow) Hours() int {
	switch w {
	case TimeWindow24h:
		return 24
	case TimeWindow48h:
		return 48
	case TimeWindow72h:
		return 72
	default:
		return 0
	}
}

func (w TimeWindow) IsAll() bool {
	return w.Hours() == 0
}

func ParseTimeWindow(s string) (TimeWindow, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "h") {
	case "", "all":
		return TimeWindowAll, nil
	case "24":
		return TimeWindow24h, nil
	case "48":
		return TimeWindow48h, nil
	case "72":
		return TimeWindow72h, nil
	}

	return "", failure.NewInvalidArgumentError(
		fmt.Sprintf("unknown time window %q", s),
		failure.WithCode(errcodes.InvalidTimeWindow),
		failure.WithDescription("time window must be one of all, 24h, 48h, 72h"),
	)
}
