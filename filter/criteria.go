package filter

import (
	"fmt"
	"strings"

	"github.com/kirorab/12306-skill/utils"
)

// Window is an inclusive [Lo, Hi] range in minutes since midnight.
type Window struct {
	Lo int
	Hi int
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", w.Lo/60, w.Lo%60, w.Hi/60, w.Hi%60)
}

// ParseWindow parses "HH:MM-HH:MM". Either side may be omitted: a missing
// lower bound defaults to 00:00, a missing upper bound to 24:00.
func ParseWindow(s string) (*Window, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("time window must be HH:MM-HH:MM, got %q", s)
	}
	w := &Window{Lo: 0, Hi: 24 * 60}
	if parts[0] != "" {
		lo, err := utils.ClockToMinutes(parts[0])
		if err != nil {
			return nil, err
		}
		w.Lo = lo
	}
	if parts[1] != "" {
		hi, err := utils.ClockToMinutes(parts[1])
		if err != nil {
			return nil, err
		}
		w.Hi = hi
	}
	if w.Lo > w.Hi {
		return nil, fmt.Errorf("time window is inverted: %q", s)
	}
	return w, nil
}
