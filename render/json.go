package render

import (
	"encoding/json"

	"github.com/kirorab/12306-skill/ticket"
)

type jsonEnvelope struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Date    string          `json:"date"`
	Filters string          `json:"filters"`
	Count   int             `json:"count"`
	Tickets []ticket.Record `json:"tickets"`
}

// JSON serializes the projection. Tickets is always a JSON array, never
// null, so an empty result set is representable as count 0.
func JSON(p Projection) ([]byte, error) {
	env := jsonEnvelope{
		From:    p.Origin.Name,
		To:      p.Destination.Name,
		Date:    p.Date,
		Filters: p.FilterDesc,
		Count:   len(p.Tickets),
		Tickets: p.Tickets,
	}
	if env.Tickets == nil {
		env.Tickets = []ticket.Record{}
	}
	return json.MarshalIndent(env, "", "  ")
}
