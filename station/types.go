package station

// Record is one station directory entry, immutable once loaded.
// Code is the stable external identifier (telecode); Name is unique as a
// lookup key. Many stations share one City.
type Record struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Pinyin      string `json:"pinyin"`
	ShortPinyin string `json:"short_pinyin"`
	City        string `json:"city"`
}

// Directory is an immutable snapshot of the station dataset with four
// derived indices built once at construction.
type Directory struct {
	records     []Record
	byCode      map[string]Record
	byName      map[string]Record
	byCity      map[string][]Record
	cityPrimary map[string]Record
}

// NewDirectory builds the derived indices from records in source order.
// If two records carry the same name the later one wins the name index;
// source data is not supposed to do that, and we do not try to fix it.
func NewDirectory(records []Record) *Directory {
	d := &Directory{
		records:     records,
		byCode:      make(map[string]Record, len(records)),
		byName:      make(map[string]Record, len(records)),
		byCity:      make(map[string][]Record),
		cityPrimary: make(map[string]Record),
	}
	for _, r := range records {
		d.byCode[r.Code] = r
		d.byName[r.Name] = r
		d.byCity[r.City] = append(d.byCity[r.City], r)
		if r.Name == r.City {
			d.cityPrimary[r.City] = r
		}
	}
	return d
}

// ByCode looks a station up by its telecode.
func (d *Directory) ByCode(code string) (Record, bool) {
	r, ok := d.byCode[code]
	return r, ok
}

// ByName looks a station up by its exact display name.
func (d *Directory) ByName(name string) (Record, bool) {
	r, ok := d.byName[name]
	return r, ok
}

// CityStations returns the stations of a city in source order.
func (d *Directory) CityStations(city string) []Record {
	return d.byCity[city]
}

// DisplayName resolves a telecode to a display name, falling back to the
// raw code when it is unknown.
func (d *Directory) DisplayName(code string) string {
	if r, ok := d.byCode[code]; ok {
		return r.Name
	}
	return code
}

// Records returns the snapshot's records in source order.
func (d *Directory) Records() []Record { return d.records }

// Len reports the number of stations in the snapshot.
func (d *Directory) Len() int { return len(d.records) }
