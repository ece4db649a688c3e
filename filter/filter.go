// Package filter narrows a decoded ticket list through a set of
// independent, composable predicates. The pipeline is the logical AND of
// all active criteria; an absent criterion contributes no constraint, so
// evaluation order cannot change the result.
package filter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kirorab/12306-skill/ticket"
	"github.com/kirorab/12306-skill/utils"
)

// Criteria is a configuration value with independently-optional fields.
type Criteria struct {
	// TrainTypes is a set of train-code first characters, e.g. "GD".
	// Empty means no constraint.
	TrainTypes string
	// Depart and Arrive constrain the respective clock times.
	Depart *Window
	Arrive *Window
	// MaxDuration is a ceiling on travel time in minutes.
	MaxDuration *int
	// AvailableOnly keeps only bookable trains.
	AvailableOnly bool
	// SeatClasses requires every named class to be bookable.
	SeatClasses []ticket.SeatClass
}

// Apply returns the tickets matching every active criterion,
// order-preserving and without mutating the input.
func Apply(tickets []ticket.Record, c Criteria) []ticket.Record {
	result := make([]ticket.Record, 0, len(tickets))
	for _, t := range tickets {
		if matches(t, c) {
			result = append(result, t)
		}
	}
	return result
}

func matches(t ticket.Record, c Criteria) bool {
	if c.TrainTypes != "" && !matchesTrainType(t.TrainCode, c.TrainTypes) {
		return false
	}
	if !inWindow(t.Depart, c.Depart) {
		return false
	}
	if !inWindow(t.Arrive, c.Arrive) {
		return false
	}
	if c.MaxDuration != nil && utils.DurationToMinutes(t.Duration) > *c.MaxDuration {
		return false
	}
	if c.AvailableOnly && !t.Bookable {
		return false
	}
	for _, class := range c.SeatClasses {
		if !t.Seats[class].Bookable() {
			return false
		}
	}
	return true
}

func matchesTrainType(trainCode, types string) bool {
	if trainCode == "" {
		return false
	}
	first := unicode.ToUpper(rune(trainCode[0]))
	for _, r := range types {
		if unicode.ToUpper(r) == first {
			return true
		}
	}
	return false
}

func inWindow(clock string, w *Window) bool {
	if w == nil {
		return true
	}
	m, err := utils.ClockToMinutes(clock)
	if err != nil {
		return false
	}
	return m >= w.Lo && m <= w.Hi
}

// Describe renders the active criteria for display alongside results.
func Describe(c Criteria) string {
	var parts []string
	if c.TrainTypes != "" {
		parts = append(parts, "车次类型 "+strings.ToUpper(c.TrainTypes))
	}
	if c.Depart != nil {
		parts = append(parts, "出发 "+c.Depart.String())
	}
	if c.Arrive != nil {
		parts = append(parts, "到达 "+c.Arrive.String())
	}
	if c.MaxDuration != nil {
		parts = append(parts, fmt.Sprintf("历时不超过 %dm", *c.MaxDuration))
	}
	if c.AvailableOnly {
		parts = append(parts, "仅可预订")
	}
	if len(c.SeatClasses) > 0 {
		names := make([]string, len(c.SeatClasses))
		for i, class := range c.SeatClasses {
			names[i] = class.DisplayName()
		}
		parts = append(parts, "席别 "+strings.Join(names, "/"))
	}
	if len(parts) == 0 {
		return "无筛选条件"
	}
	return strings.Join(parts, ", ")
}
