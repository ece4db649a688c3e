// Package ticket models decoded left-ticket records and their tolerant
// positional decoding.
//
// A raw record is a fixed-position pipe-delimited string. The position
// mapping is a versioned schema table, not inline constants, so an
// upstream format change is a data edit. Decoding never fails on
// malformed field content: a seat field that cannot be read degrades to
// the not-offered sentinel, and an unknown station code falls back to
// displaying the raw code.
package ticket
