package station

import (
	"fmt"
	"strings"
)

// Trailing administrative/station suffix markers a user may append to a
// city name: 市 "city" and 站 "station".
var suffixMarkers = []rune{'市', '站'}

// NotFoundError reports a query string no resolution step matched.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("station not found: %q", e.Query)
}

// Resolve maps a user-supplied string to a station record. Resolution
// order is a contract:
//
//  1. exact station name
//  2. city name with a same-named station (the city's primary)
//  3. city name without one: first station of the city in source order
//  4. steps 2-3 again with one trailing suffix marker stripped
//
// Ties within a city always follow directory source order.
func (d *Directory) Resolve(query string) (Record, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Record{}, false
	}
	if r, ok := d.byName[q]; ok {
		return r, true
	}
	if r, ok := d.resolveCity(q); ok {
		return r, true
	}
	runes := []rune(q)
	last := runes[len(runes)-1]
	for _, marker := range suffixMarkers {
		if last == marker {
			return d.resolveCity(string(runes[:len(runes)-1]))
		}
	}
	return Record{}, false
}

func (d *Directory) resolveCity(city string) (Record, bool) {
	if r, ok := d.cityPrimary[city]; ok {
		return r, true
	}
	if list := d.byCity[city]; len(list) > 0 {
		return list[0], true
	}
	return Record{}, false
}
