// Package words loads dictionaries and draws random prompt words.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// ErrEmptyWordList reports a dictionary with no usable entries.
var ErrEmptyWordList = errors.New("word list is empty")

// preambleEnd terminates an optional license preamble in dictionary files.
const preambleEnd = "---"

// Load reads one word per line from the provided file path. If the file
// contains a line consisting of "---", everything up to and including that
// line is treated as a license preamble and skipped.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var lines []string
	preambleAt := -1
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == preambleEnd {
			if preambleAt < 0 {
				preambleAt = len(lines)
			}
			continue
		}
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	if preambleAt >= 0 {
		lines = lines[preambleAt:]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("word list %s: %w", path, ErrEmptyWordList)
	}
	return lines, nil
}

// Source produces a lazy sequence of prompt words drawn uniformly, with
// repetition, from a fixed list. The random generator is injected so a
// session is deterministic under a fixed seed.
type Source struct {
	list []string
	rnd  *rand.Rand
}

// NewSource builds a Source over the given list.
func NewSource(list []string, rnd *rand.Rand) (*Source, error) {
	if len(list) == 0 {
		return nil, ErrEmptyWordList
	}
	return &Source{list: list, rnd: rnd}, nil
}

// Next returns the next prompt word.
func (s *Source) Next() string {
	return s.list[s.rnd.Intn(len(s.list))]
}

// Fill returns the next n prompt words.
func (s *Source) Fill(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.Next())
	}
	return out
}
