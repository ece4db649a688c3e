// Package utils provides shared time and duration arithmetic for the
// ticket query pipeline.
//
// It contains:
//   - Clock time ("HH:MM") to minutes-since-midnight conversion
//   - Travel duration ("H:MM") to minutes conversion
//   - Human-readable duration formatting
package utils
