package cipher

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/matzehuels/algoviz/pkg/errors"
)

const (
	defaultRails    = 3
	defaultDiameter = 4
	minRails        = 2
	maxRails        = 10
)

// columnOrder returns the column indices of a keyword in reading order:
// alphabetically by key letter, equal letters left to right.
func columnOrder(kw string) []int {
	order := make([]int, len(kw))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return int(kw[a]) - int(kw[b]) })
	return order
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// readColumns writes text row by row into len(order) columns and reads the
// columns back in the given order. The last row may be short.
func readColumns(text []rune, order []int) (string, []Step) {
	cols := len(order)
	var b strings.Builder
	steps := make([]Step, 0, len(text))
	for rank, c := range order {
		for i := c; i < len(text); i += cols {
			b.WriteRune(text[i])
			steps = append(steps, Step{
				Index: len(steps),
				In:    string(text[i]),
				Out:   string(text[i]),
				Note:  fmt.Sprintf("row %d, column %d (read %d)", i/cols+1, c+1, rank+1),
			})
		}
	}
	return b.String(), steps
}

// writeColumns inverts readColumns: it fills the columns in order from text
// and reads the grid row by row.
func writeColumns(text []rune, order []int) (string, []Step) {
	n, cols := len(text), len(order)
	if n == 0 {
		return "", nil
	}
	rows := (n + cols - 1) / cols
	full := n % cols
	if full == 0 {
		full = cols
	}

	grid := make([]rune, n)
	steps := make([]Step, 0, n)
	p := 0
	for rank, c := range order {
		height := rows
		if c >= full {
			height = rows - 1
		}
		for r := 0; r < height; r++ {
			grid[r*cols+c] = text[p]
			steps = append(steps, Step{
				Index: p,
				In:    string(text[p]),
				Out:   string(text[p]),
				Note:  fmt.Sprintf("row %d, column %d (read %d)", r+1, c+1, rank+1),
			})
			p++
		}
	}
	return string(grid), steps
}

// columnar is a keyed columnar transposition.
func columnar(mode Mode, text, key string) (string, []Step, error) {
	kw, err := errors.ValidateKeyword("Columnar transposition", key)
	if err != nil {
		return "", nil, err
	}
	order := columnOrder(kw)
	if mode == Encrypt {
		out, steps := readColumns([]rune(text), order)
		return out, steps, nil
	}
	out, steps := writeColumns([]rune(text), order)
	return out, steps, nil
}

// scytale winds text around a rod: rows of diameter letters, read by column.
func scytale(mode Mode, text, key string) (string, []Step, error) {
	d := numericKey(key, defaultDiameter)
	if d < minRails || d > maxRails {
		return "", nil, errors.New(errors.ErrCodeInvalidKey, "Diameter must be between %d and %d", minRails, maxRails)
	}
	order := identityOrder(d)
	if mode == Encrypt {
		out, steps := readColumns([]rune(text), order)
		return out, steps, nil
	}
	out, steps := writeColumns([]rune(text), order)
	return out, steps, nil
}

// railPattern returns the rail of every position of a zigzag over n
// characters.
func railPattern(n, rails int) []int {
	pattern := make([]int, n)
	rail, dir := 0, 1
	for i := range pattern {
		pattern[i] = rail
		if rail == 0 {
			dir = 1
		} else if rail == rails-1 {
			dir = -1
		}
		rail += dir
	}
	return pattern
}

func stripSpace(text string) []rune {
	var out []rune
	for _, r := range text {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}

// railFence writes whitespace-stripped text in a zigzag over the rails and
// reads it rail by rail.
func railFence(mode Mode, text, key string) (string, []Step, error) {
	rails := numericKey(key, defaultRails)
	if rails < minRails || rails > maxRails {
		return "", nil, errors.New(errors.ErrCodeInvalidKey, "Rails must be between %d and %d", minRails, maxRails)
	}
	clean := stripSpace(text)
	pattern := railPattern(len(clean), rails)

	out := make([]rune, len(clean))
	steps := make([]Step, 0, len(clean))
	p := 0
	for r := 0; r < rails; r++ {
		for i, rail := range pattern {
			if rail != r {
				continue
			}
			var from, to int
			if mode == Encrypt {
				from, to = i, p
			} else {
				from, to = p, i
			}
			out[to] = clean[from]
			steps = append(steps, Step{
				Index: p,
				In:    string(clean[from]),
				Out:   string(clean[from]),
				Note:  fmt.Sprintf("rail %d, position %d", r+1, i+1),
			})
			p++
		}
	}
	return string(out), steps, nil
}
