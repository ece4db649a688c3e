package render

import (
	"fmt"
	"strings"
)

// Markdown renders the projection as a Markdown document with one table
// row per ticket.
func Markdown(p Projection) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s → %s %s\n\n", p.Origin.Name, p.Destination.Name, p.Date)
	fmt.Fprintf(&b, "筛选: %s\n\n", p.FilterDesc)
	if len(p.Tickets) == 0 {
		b.WriteString("无符合条件的车次。\n")
		return []byte(b.String())
	}
	headers := append([]string{"车次", "出发站", "到达站", "出发", "到达", "历时", "可预订"}, seatHeaders()...)
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, r := range buildRows(p.Tickets) {
		cells := append([]string{r.TrainCode, r.From, r.To, r.Depart, r.Arrive, r.Duration, r.Bookable}, r.Seats...)
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return []byte(b.String())
}
