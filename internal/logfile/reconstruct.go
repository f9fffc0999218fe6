// SPDX-License-Identifier: MIT

package logfile

import (
	"regexp"
	"strings"
)

// Entry is one reconstructed log entry. An entry with a non-empty Trace
// owns the continuation lines that followed its header; trace entries never
// nest further.
type Entry struct {
	Number    int     `json:"number"`
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"`
	Level     string  `json:"level"`
	Trace     []Entry `json:"trace"`
	Expanded  bool    `json:"expanded"`
}

// ParseResult is the output of one reconstruction pass. Entries are ordered
// by ascending line number, matching file order. HasLevels and HasStamps are
// dialect-wide declarations, not per-line observations.
type ParseResult struct {
	Entries   []Entry `json:"entries"`
	HasLevels bool    `json:"has_levels"`
	HasStamps bool    `json:"has_stamps"`
}

var (
	laravelHeader = regexp.MustCompile(`^\[(.+?)\] .+?\.([A-Z]+): (.*)$`)
	phpErrorTier  = regexp.MustCompile(`^\[(.+?)\] PHP ([A-Za-z]+(?: [A-Za-z]+)*): (.*)$`)
	phpNormalTier = regexp.MustCompile(`^\[(.+?)\] PHP (.*)$`)
)

// Reconstruct walks the window once and groups lines into top-level entries
// with subordinate trace lines according to the dialect's rules. It is total
// over its input: every line lands in exactly one place and no input ever
// fails. Trace association never crosses the window boundary; a leading
// continuation whose header fell outside the window becomes an unparsed
// top-level entry.
func Reconstruct(lines []RawLine, d Dialect) ParseResult {
	res := ParseResult{
		Entries:   []Entry{},
		HasLevels: d.HasLevels(),
		HasStamps: d.HasStamps(),
	}

	// Index of the open header in res.Entries, or -1 before the first
	// header. A trace run simply ends when the input is exhausted.
	header := -1
	inErrorRun := false

	for _, ln := range lines {
		switch d {
		case DialectLaravel:
			if m := laravelHeader.FindStringSubmatch(ln.Text); m != nil {
				res.Entries = append(res.Entries, Entry{
					Number:    ln.Number,
					Text:      m[3],
					Timestamp: m[1],
					Level:     strings.ToLower(m[2]),
				})
				header = len(res.Entries) - 1
				continue
			}
			if header >= 0 {
				h := &res.Entries[header]
				// Continuations carry the header's timestamp, not their own.
				h.Trace = append(h.Trace, Entry{
					Number:    ln.Number,
					Text:      ln.Text,
					Timestamp: h.Timestamp,
				})
				continue
			}
			res.Entries = append(res.Entries, Entry{Number: ln.Number, Text: ln.Text})

		case DialectPHPLog:
			if m := phpErrorTier.FindStringSubmatch(ln.Text); m != nil {
				res.Entries = append(res.Entries, Entry{
					Number:    ln.Number,
					Text:      m[3],
					Timestamp: m[1],
					Level:     strings.ToLower(m[2]),
				})
				header = len(res.Entries) - 1
				inErrorRun = true
				continue
			}
			if m := phpNormalTier.FindStringSubmatch(ln.Text); m != nil {
				if inErrorRun {
					// Inside an error run the line keeps its own embedded
					// timestamp but is stored as trace.
					h := &res.Entries[header]
					h.Trace = append(h.Trace, Entry{
						Number:    ln.Number,
						Text:      m[2],
						Timestamp: m[1],
					})
					continue
				}
				res.Entries = append(res.Entries, Entry{
					Number:    ln.Number,
					Text:      m[2],
					Timestamp: m[1],
				})
				header = len(res.Entries) - 1
				continue
			}
			if header >= 0 {
				h := &res.Entries[header]
				h.Trace = append(h.Trace, Entry{
					Number:    ln.Number,
					Text:      ln.Text,
					Timestamp: h.Timestamp,
				})
				continue
			}
			res.Entries = append(res.Entries, Entry{Number: ln.Number, Text: ln.Text})

		default: // DialectPlaintext: no header pattern exists.
			res.Entries = append(res.Entries, Entry{Number: ln.Number, Text: ln.Text})
		}
	}
	return res
}
