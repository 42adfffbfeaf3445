package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// MaxLineSize bounds a single ledger line. Longer lines are cut to this
// size and marked Truncated.
const MaxLineSize = 1 << 20

// Line is one input line and where it came from.
type Line struct {
	Name   string // file path, or "-" for standard input
	Number int    // 1-based within Name
	Text   string
	// Truncated is set when the line exceeded MaxLineSize; Text then holds
	// only its first MaxLineSize bytes.
	Truncated bool
}

// Lines yields every line of paths in order. With no paths, or for a "-"
// path, it reads stdin. Files are opened one at a time. The first open or
// read error is yielded and ends the sequence.
func Lines(paths []string, stdin io.Reader) iter.Seq2[Line, error] {
	if len(paths) == 0 {
		paths = []string{Stdin}
	}
	return func(yield func(Line, error) bool) {
		for _, path := range paths {
			more, err := readPath(path, stdin, yield)
			if err != nil {
				yield(Line{Name: path}, err)
				return
			}
			if !more {
				return
			}
		}
	}
}

// readPath yields the lines of one path. more is false when the consumer
// stopped early.
func readPath(path string, stdin io.Reader, yield func(Line, error) bool) (more bool, err error) {
	if path == Stdin {
		return scan(path, stdin, yield)
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return scan(path, f, yield)
}

func scan(name string, r io.Reader, yield func(Line, error) bool) (bool, error) {
	br := bufio.NewReader(r)

	for n := 1; ; n++ {
		text, truncated, err := readLine(br)
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, fmt.Errorf("reading %s: %w", name, err)
		}
		if !yield(Line{Name: name, Number: n, Text: text, Truncated: truncated}, nil) {
			return false, nil
		}
	}
}

// readLine returns the next line without its line ending. Bytes past
// MaxLineSize are read and discarded. io.EOF is only returned when no
// line is left.
func readLine(br *bufio.Reader) (text string, truncated bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, rerr := br.ReadLine()
		if rerr != nil {
			return "", false, rerr
		}
		if room := MaxLineSize - len(buf); len(chunk) > room {
			chunk = chunk[:room]
			truncated = true
		}
		buf = append(buf, chunk...)
		if !isPrefix {
			return string(buf), truncated, nil
		}
	}
}
