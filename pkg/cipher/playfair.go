package cipher

import (
	"strings"

	"github.com/matzehuels/algoviz/pkg/errors"
)

const squareAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ" // no J

// keySquare is a 5×5 Playfair grid stored row-major.
type keySquare struct {
	cells [25]byte
	pos   [26]int
}

func newKeySquare(keyword string) *keySquare {
	sq := &keySquare{}
	for i := range sq.pos {
		sq.pos[i] = -1
	}
	n := 0
	for _, src := range []string{keyword, squareAlphabet} {
		for i := 0; i < len(src); i++ {
			c := src[i]
			if c == 'J' {
				c = 'I'
			}
			if sq.pos[c-'A'] >= 0 {
				continue
			}
			sq.cells[n] = c
			sq.pos[c-'A'] = n
			n++
		}
	}
	return sq
}

func (sq *keySquare) at(row, col int) byte { return sq.cells[mod(row, 5)*5+mod(col, 5)] }

func (sq *keySquare) locate(c byte) (row, col int) {
	p := sq.pos[c-'A']
	return p / 5, p % 5
}

// String renders the square as five space-separated rows.
func (sq *keySquare) String() string {
	rows := make([]string, 5)
	for r := range rows {
		rows[r] = string(sq.cells[r*5 : r*5+5])
	}
	return strings.Join(rows, " ")
}

// playfairLetters upper-cases text, drops everything but letters and
// replaces J with I.
func playfairLetters(text string) []byte {
	var out []byte
	for _, r := range strings.ToUpper(text) {
		switch {
		case r == 'J':
			out = append(out, 'I')
		case isUpper(r):
			out = append(out, byte(r))
		}
	}
	return out
}

// digrams splits letters into pairs, inserting a filler between doubled
// letters and padding an odd tail. The filler is X, or Q next to an X.
func digrams(letters []byte) [][2]byte {
	filler := func(c byte) byte {
		if c == 'X' {
			return 'Q'
		}
		return 'X'
	}
	var out [][2]byte
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 == len(letters) {
			out = append(out, [2]byte{a, filler(a)})
			break
		}
		if b := letters[i+1]; a != b {
			out = append(out, [2]byte{a, b})
			i += 2
			continue
		}
		out = append(out, [2]byte{a, filler(a)})
		i++
	}
	return out
}

// playfair applies the digram rules of a keyword square: letters in the same
// row shift right, in the same column shift down, and otherwise swap
// columns. Decryption shifts the other way. Filler letters inserted while
// encrypting are not removed on decryption.
func playfair(mode Mode, text, key string) (string, []Step, error) {
	kw, err := errors.ValidateKeyword("Playfair cipher", key)
	if err != nil {
		return "", nil, err
	}
	sq := newKeySquare(kw)
	letters := playfairLetters(text)
	if len(letters) == 0 {
		return "", nil, errors.New(errors.ErrCodeInvalidInput, "Playfair cipher needs at least one letter")
	}

	var pairs [][2]byte
	if mode == Encrypt {
		pairs = digrams(letters)
	} else {
		if len(letters)%2 != 0 {
			return "", nil, errors.New(errors.ErrCodeInvalidInput,
				"Playfair ciphertext must have an even number of letters")
		}
		for i := 0; i < len(letters); i += 2 {
			pairs = append(pairs, [2]byte{letters[i], letters[i+1]})
		}
	}

	dir := 1
	if mode == Decrypt {
		dir = -1
	}
	var b strings.Builder
	steps := make([]Step, 0, len(pairs))
	for i, p := range pairs {
		r1, c1 := sq.locate(p[0])
		r2, c2 := sq.locate(p[1])
		var o1, o2 byte
		var note string
		switch {
		case r1 == r2:
			o1, o2, note = sq.at(r1, c1+dir), sq.at(r2, c2+dir), "row"
		case c1 == c2:
			o1, o2, note = sq.at(r1+dir, c1), sq.at(r2+dir, c2), "column"
		default:
			o1, o2, note = sq.at(r1, c2), sq.at(r2, c1), "rectangle"
		}
		b.WriteByte(o1)
		b.WriteByte(o2)
		steps = append(steps, Step{
			Index: i,
			In:    string(p[:]),
			Out:   string([]byte{o1, o2}),
			Key:   sq.String(),
			Note:  note,
		})
	}
	return b.String(), steps, nil
}
