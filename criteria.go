package skill

import (
	"fmt"
	"strings"
	"time"

	"github.com/kirorab/12306-skill/filter"
	"github.com/kirorab/12306-skill/ticket"
)

// ParseCriteria builds filter criteria from the string forms shared by the
// CLI flags and the HTTP query parameters. Empty strings mean "no
// constraint". maxDuration accepts a Go duration string ("5h30m", "330m").
func ParseCriteria(trainTypes, depart, arrive, maxDuration, seats string, availableOnly bool) (filter.Criteria, error) {
	c := filter.Criteria{
		TrainTypes:    strings.TrimSpace(trainTypes),
		AvailableOnly: availableOnly,
	}
	var err error
	if depart != "" {
		if c.Depart, err = filter.ParseWindow(depart); err != nil {
			return c, err
		}
	}
	if arrive != "" {
		if c.Arrive, err = filter.ParseWindow(arrive); err != nil {
			return c, err
		}
	}
	if maxDuration != "" {
		d, err := time.ParseDuration(maxDuration)
		if err != nil || d <= 0 {
			return c, fmt.Errorf("max duration must be a positive duration: %q", maxDuration)
		}
		minutes := int(d / time.Minute)
		c.MaxDuration = &minutes
	}
	if seats != "" {
		for _, s := range strings.Split(seats, ",") {
			class, ok := ticket.ParseSeatClass(s)
			if !ok {
				return c, fmt.Errorf("unknown seat class: %q", s)
			}
			c.SeatClasses = append(c.SeatClasses, class)
		}
	}
	return c, nil
}
