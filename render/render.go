// Package render is the output projection: it turns a filtered ticket list
// plus its query metadata into JSON, a Markdown table, or HTML.
//
// This package is organized into:
// - render.go: the Projection input tuple and shared row shaping
// - json.go: JSON envelope
// - markdown.go: Markdown table
// - html.go: HTML page via html/template
//
// An empty ticket list is a valid output state and every format renders it
// distinctly from a query failure.
package render

import (
	"github.com/kirorab/12306-skill/station"
	"github.com/kirorab/12306-skill/ticket"
	"github.com/kirorab/12306-skill/utils"
)

// Projection is the full tuple the core hands to every output format.
type Projection struct {
	Origin      station.Record
	Destination station.Record
	Date        string
	FilterDesc  string
	Tickets     []ticket.Record
}

// row is one display-ready table line shared by the Markdown and HTML
// renderers.
type row struct {
	TrainCode string
	From      string
	To        string
	Depart    string
	Arrive    string
	Duration  string
	Bookable  string
	Seats     []string
}

func buildRows(tickets []ticket.Record) []row {
	rows := make([]row, 0, len(tickets))
	for _, t := range tickets {
		r := row{
			TrainCode: t.TrainCode,
			From:      t.From,
			To:        t.To,
			Depart:    t.Depart,
			Arrive:    t.Arrive,
			Duration:  utils.HumanDuration(t.Duration),
			Bookable:  "否",
			Seats:     make([]string, len(ticket.SeatClassOrder)),
		}
		if t.Bookable {
			r.Bookable = "是"
		}
		for i, class := range ticket.SeatClassOrder {
			r.Seats[i] = t.Seats[class].String()
		}
		rows = append(rows, r)
	}
	return rows
}

func seatHeaders() []string {
	headers := make([]string, len(ticket.SeatClassOrder))
	for i, class := range ticket.SeatClassOrder {
		headers[i] = class.DisplayName()
	}
	return headers
}
