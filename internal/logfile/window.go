// SPDX-License-Identifier: MIT

// Package logfile implements windowed line retrieval from append-only log
// files and dialect-aware reconstruction of structured log entries.
package logfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineRange is an inclusive range of 1-based physical line numbers in the
// source file's own numbering.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Empty reports whether the range selects no lines.
func (r LineRange) Empty() bool {
	return r.Start > r.End
}

// RawLine is one physical line paired with its 1-based line number.
type RawLine struct {
	Number int
	Text   string
}

// WindowOptions selects the requested window. Zero values mean "absent";
// absent bounds default to a trailing window of DefaultWindow lines.
type WindowOptions struct {
	Start         int
	End           int
	DefaultWindow int
}

// CountLines counts newline-terminated records in the file at path using a
// streaming buffered read. A trailing unterminated fragment is not counted.
func CountLines(path string) (int, error) {
	f, err := os.Open(path) // #nosec G304 -- callers confine path to the log directory
	if err != nil {
		return 0, fmt.Errorf("count lines: %w", err)
	}
	defer func() { _ = f.Close() }()

	var count int
	buf := make([]byte, 64*1024)
	for {
		n, err := f.Read(buf)
		for _, b := range buf[:n] {
			if b == '\n' {
				count++
			}
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("count lines: %w", err)
		}
	}
}

// ReadWindow extracts the lines in the requested window from the file at
// path. Absent bounds default to the tail of the file; out-of-range bounds
// are silently clamped to [1, total]. A window entirely beyond end-of-file
// yields an empty slice with the degenerate clamped range and no error.
//
// The read is streaming: memory use is bounded by the window size, not the
// file size, so the reader stays viable on files far larger than the window.
// Concurrent appends by the log producer are tolerated; lines appended
// mid-read may or may not be observed.
func ReadWindow(path string, opts WindowOptions) (LineRange, []RawLine, error) {
	total, err := CountLines(path)
	if err != nil {
		return LineRange{}, nil, err
	}

	start := opts.Start
	if start == 0 {
		start = total - opts.DefaultWindow
	}
	end := opts.End
	if end == 0 {
		end = start + opts.DefaultWindow
	}

	if start < 1 {
		start = 1
	}
	if end > total {
		end = total
	}
	rng := LineRange{Start: start, End: end}
	if rng.Empty() {
		return rng, nil, nil
	}

	f, err := os.Open(path) // #nosec G304 -- callers confine path to the log directory
	if err != nil {
		return LineRange{}, nil, fmt.Errorf("read window: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines := make([]RawLine, 0, end-start+1)
	r := bufio.NewReader(f)
	for n := 1; n <= end; n++ {
		text, err := r.ReadString('\n')
		if err == io.EOF && text == "" {
			// The file shrank between the count and the read; return what
			// is present.
			break
		}
		if err != nil && err != io.EOF {
			return LineRange{}, nil, fmt.Errorf("read window: %w", err)
		}
		if n >= start {
			lines = append(lines, RawLine{Number: n, Text: trimLineEnding(text)})
		}
		if err == io.EOF {
			break
		}
	}
	return rng, lines, nil
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
