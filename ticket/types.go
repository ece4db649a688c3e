package ticket

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SeatClass identifies one fare/accommodation category. The enumeration is
// closed; identifiers follow the upstream field names.
type SeatClass string

const (
	SeatBusiness    SeatClass = "swz" // 商务/特等
	SeatFirst       SeatClass = "zy"  // 一等座
	SeatSecond      SeatClass = "ze"  // 二等座
	SeatSoftSleeper SeatClass = "rw"  // 软卧/动卧
	SeatHardSleeper SeatClass = "yw"  // 硬卧
	SeatHardSeat    SeatClass = "yz"  // 硬座
	SeatStanding    SeatClass = "wz"  // 无座
)

// SeatClassOrder is the display order used by all renderers.
var SeatClassOrder = []SeatClass{
	SeatBusiness, SeatFirst, SeatSecond,
	SeatSoftSleeper, SeatHardSleeper, SeatHardSeat, SeatStanding,
}

var seatClassNames = map[SeatClass]string{
	SeatBusiness:    "商务/特等",
	SeatFirst:       "一等座",
	SeatSecond:      "二等座",
	SeatSoftSleeper: "软卧/动卧",
	SeatHardSleeper: "硬卧",
	SeatHardSeat:    "硬座",
	SeatStanding:    "无座",
}

// DisplayName returns the class's Chinese display name.
func (c SeatClass) DisplayName() string {
	if n, ok := seatClassNames[c]; ok {
		return n
	}
	return string(c)
}

// ParseSeatClass maps a seat-class identifier to its SeatClass.
func ParseSeatClass(s string) (SeatClass, bool) {
	c := SeatClass(strings.ToLower(strings.TrimSpace(s)))
	_, ok := seatClassNames[c]
	return c, ok
}

// AvailabilityKind is the decoded state of one seat class.
type AvailabilityKind int

const (
	// SeatNotOffered means the class does not exist on this train.
	SeatNotOffered AvailabilityKind = iota
	// SeatSoldOut means the class is offered but has no seats left.
	SeatSoldOut
	// SeatAvailable means seats exist but the quantity is undisclosed.
	SeatAvailable
	// SeatCount means an exact non-negative seat count was disclosed.
	SeatCount
)

// Availability is a seat class's decoded availability indicator.
type Availability struct {
	Kind  AvailabilityKind
	Count int
}

// Bookable reports whether the indicator allows booking: a positive count
// or the disclosed-available sentinel.
func (a Availability) Bookable() bool {
	return a.Kind == SeatAvailable || (a.Kind == SeatCount && a.Count > 0)
}

// String renders the indicator the way the source data does: a count,
// 有 (available), 无 (sold out), or -- (not offered).
func (a Availability) String() string {
	switch a.Kind {
	case SeatAvailable:
		return "有"
	case SeatSoldOut:
		return "无"
	case SeatCount:
		return strconv.Itoa(a.Count)
	default:
		return blankField
	}
}

// MarshalJSON renders the indicator as its display string.
func (a Availability) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON reads the display-string form back, using the same rules
// as the record decoder.
func (a *Availability) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = parseAvailability(s)
	return nil
}

// Record is one decoded ticket entity. It belongs to exactly one query and
// is immutable once decoded. Duration stays in its native "H:MM" form;
// derived formatting lives in the utils package.
type Record struct {
	TrainNo   string                     `json:"train_no"`
	TrainCode string                     `json:"train_code"`
	From      string                     `json:"from"`
	To        string                     `json:"to"`
	FromCode  string                     `json:"from_code"`
	ToCode    string                     `json:"to_code"`
	Depart    string                     `json:"depart"`
	Arrive    string                     `json:"arrive"`
	Duration  string                     `json:"duration"`
	Bookable  bool                       `json:"bookable"`
	Date      string                     `json:"date"`
	Seats     map[SeatClass]Availability `json:"seats"`
}
