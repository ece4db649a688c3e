package ticket

import (
	"strconv"
	"strings"

	"github.com/kirorab/12306-skill/station"
)

// blankField is the upstream sentinel for a field carrying no value.
const blankField = "--"

const (
	availableSentinel = "有"
	soldOutSentinel   = "无"
	bookableFlag      = "Y"
)

// Decode parses one raw positional record into a ticket entity. Origin and
// destination codes resolve to display names through the directory; an
// unknown code degrades to the raw code rather than failing the decode.
func Decode(raw string, schema FieldSchema, dir *station.Directory) Record {
	fields := strings.Split(raw, "|")
	at := func(i int) string {
		if i >= 0 && i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}
	rec := Record{
		TrainNo:   at(schema.TrainNo),
		TrainCode: at(schema.TrainCode),
		FromCode:  at(schema.FromCode),
		ToCode:    at(schema.ToCode),
		From:      dir.DisplayName(at(schema.FromCode)),
		To:        dir.DisplayName(at(schema.ToCode)),
		Depart:    at(schema.Depart),
		Arrive:    at(schema.Arrive),
		Duration:  at(schema.Duration),
		Bookable:  at(schema.CanBuy) == bookableFlag,
		Date:      at(schema.Date),
		Seats:     make(map[SeatClass]Availability, len(schema.Seats)),
	}
	for class, pos := range schema.Seats {
		rec.Seats[class] = parseAvailability(at(pos))
	}
	return rec
}

// parseAvailability decodes one seat field. Anything it cannot read is the
// not-offered sentinel; upstream data is not contractually well-formed.
func parseAvailability(raw string) Availability {
	switch v := strings.TrimSpace(raw); v {
	case "", blankField:
		return Availability{Kind: SeatNotOffered}
	case availableSentinel:
		return Availability{Kind: SeatAvailable}
	case soldOutSentinel:
		return Availability{Kind: SeatSoldOut}
	default:
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return Availability{Kind: SeatCount, Count: n}
		}
		return Availability{Kind: SeatNotOffered}
	}
}
