package skill

import (
	"testing"

	"github.com/kirorab/12306-skill/filter"
	"github.com/kirorab/12306-skill/ticket"
)

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria("GD", "08:00-12:00", "-18:00", "5h30m", "ze, yw", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.TrainTypes != "GD" {
		t.Errorf("expected train types GD, got %q", c.TrainTypes)
	}
	if c.Depart == nil || *c.Depart != (filter.Window{Lo: 480, Hi: 720}) {
		t.Errorf("unexpected depart window: %+v", c.Depart)
	}
	if c.Arrive == nil || *c.Arrive != (filter.Window{Lo: 0, Hi: 1080}) {
		t.Errorf("unexpected arrive window: %+v", c.Arrive)
	}
	if c.MaxDuration == nil || *c.MaxDuration != 330 {
		t.Errorf("unexpected max duration: %v", c.MaxDuration)
	}
	if !c.AvailableOnly {
		t.Error("expected available-only to be set")
	}
	if len(c.SeatClasses) != 2 || c.SeatClasses[0] != ticket.SeatSecond || c.SeatClasses[1] != ticket.SeatHardSleeper {
		t.Errorf("unexpected seat classes: %v", c.SeatClasses)
	}
}

func TestParseCriteriaEmpty(t *testing.T) {
	c, err := ParseCriteria("", "", "", "", "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Depart != nil || c.Arrive != nil || c.MaxDuration != nil || c.SeatClasses != nil || c.TrainTypes != "" {
		t.Errorf("expected unconstrained criteria, got %+v", c)
	}
}

func TestParseCriteriaErrors(t *testing.T) {
	tests := []struct {
		name                                   string
		trainTypes, depart, arrive, dur, seats string
	}{
		{name: "bad depart window", depart: "12:00-08:00"},
		{name: "bad arrive window", arrive: "noon"},
		{name: "negative duration", dur: "-30m"},
		{name: "unparseable duration", dur: "five hours"},
		{name: "unknown seat class", seats: "ze,first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCriteria(tt.trainTypes, tt.depart, tt.arrive, tt.dur, tt.seats, false); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
