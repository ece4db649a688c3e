package station

import (
	"fmt"
	"strings"
)

// The upstream payload is a script-like text containing one single-quoted
// blob of '@'-separated records, each a sequence of pipe-delimited
// positional fields.
const (
	recordSeparator = "@"
	fieldSeparator  = "|"
	payloadQuote    = "'"
)

// Positional fields of one directory record (schema v1).
const (
	fieldName = iota + 1
	fieldCode
	fieldPinyin
	fieldShortPinyin
	_ // ordinal
	_ // numeric id
	fieldCity
)

// ParsePayload extracts the quoted station blob from a raw upstream payload
// and parses it into directory records. Records missing either name or code
// are dropped; a blank city field falls back to the station's own name.
func ParsePayload(raw string) ([]Record, error) {
	blob, err := extractQuoted(raw)
	if err != nil {
		return nil, err
	}
	var records []Record
	for _, entry := range strings.Split(blob, recordSeparator) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Split(entry, fieldSeparator)
		at := func(i int) string {
			if i < len(fields) {
				return strings.TrimSpace(fields[i])
			}
			return ""
		}
		r := Record{
			Name:        at(fieldName),
			Code:        at(fieldCode),
			Pinyin:      at(fieldPinyin),
			ShortPinyin: at(fieldShortPinyin),
			City:        at(fieldCity),
		}
		if r.Name == "" || r.Code == "" {
			continue
		}
		if r.City == "" {
			r.City = r.Name
		}
		records = append(records, r)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("station payload contains no usable records")
	}
	return records, nil
}

// extractQuoted returns the content of the first single-quoted string
// literal in the payload.
func extractQuoted(raw string) (string, error) {
	start := strings.Index(raw, payloadQuote)
	if start < 0 {
		return "", fmt.Errorf("station payload has no quoted blob")
	}
	rest := raw[start+1:]
	end := strings.Index(rest, payloadQuote)
	if end < 0 {
		return "", fmt.Errorf("station payload quote is unterminated")
	}
	return rest[:end], nil
}
