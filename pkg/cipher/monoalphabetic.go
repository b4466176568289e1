package cipher

import (
	"strconv"
	"strings"

	"github.com/matzehuels/algoviz/pkg/errors"
)

const defaultShift = 3

// mapRunes applies f to every rune of text and records one step per rune.
// f returns the replacement, the key material used and whether the rune
// was transformed at all.
func mapRunes(text string, f func(r rune) (out rune, key string, ok bool)) (string, []Step) {
	var b strings.Builder
	var steps []Step
	i := 0
	for _, r := range text {
		out, key, ok := f(r)
		b.WriteRune(out)
		s := Step{Index: i, In: string(r), Out: string(out), Key: key}
		if !ok {
			s.Note = "unchanged"
		}
		steps = append(steps, s)
		i++
	}
	return b.String(), steps
}

// caesar shifts letters by the numeric key, 3 when the key is not a number.
// Case is preserved.
func caesar(mode Mode, text, key string) (string, []Step, error) {
	k := mod(numericKey(key, defaultShift), alphabetSize)
	if mode == Decrypt {
		k = mod(alphabetSize-k, alphabetSize)
	}
	label := "+" + strconv.Itoa(k)
	out, steps := mapRunes(text, func(r rune) (rune, string, bool) {
		s, ok := shift(r, k)
		return s, label, ok
	})
	return out, steps, nil
}

// atbash mirrors letters in the alphabet. It is its own inverse.
func atbash(_ Mode, text, _ string) (string, []Step, error) {
	out, steps := mapRunes(text, func(r rune) (rune, string, bool) {
		switch {
		case isUpper(r):
			return 'Z' - (r - 'A'), "", true
		case isLower(r):
			return 'z' - (r - 'a'), "", true
		}
		return r, "", false
	})
	return out, steps, nil
}

// substitution maps the alphabet onto a 26-letter key. Text is upper-cased.
func substitution(mode Mode, text, key string) (string, []Step, error) {
	k := strings.ToUpper(key)
	if len(k) != alphabetSize {
		return "", nil, errors.New(errors.ErrCodeInvalidKey, "Substitution cipher requires a 26-letter key")
	}
	var seen [alphabetSize]bool
	for _, r := range k {
		if !isUpper(r) {
			return "", nil, errors.New(errors.ErrCodeInvalidKey, "Substitution cipher requires a 26-letter key")
		}
		if seen[r-'A'] {
			return "", nil, errors.New(errors.ErrCodeInvalidKey, "Substitution key must use each letter exactly once")
		}
		seen[r-'A'] = true
	}

	out, steps := mapRunes(strings.ToUpper(text), func(r rune) (rune, string, bool) {
		if !isUpper(r) {
			return r, "", false
		}
		if mode == Encrypt {
			return rune(k[r-'A']), "", true
		}
		return 'A' + rune(strings.IndexRune(k, r)), "", true
	})
	return out, steps, nil
}

// affine computes (a·x + b) mod 26 for key "a,b". Text is upper-cased.
func affine(mode Mode, text, key string) (string, []Step, error) {
	a, b, err := parseAffineKey(key)
	if err != nil {
		return "", nil, err
	}
	aInv := modInverse(a, alphabetSize)
	label := strconv.Itoa(a) + "," + strconv.Itoa(b)

	out, steps := mapRunes(strings.ToUpper(text), func(r rune) (rune, string, bool) {
		if !isUpper(r) {
			return r, label, false
		}
		x := int(r - 'A')
		var y int
		if mode == Encrypt {
			y = (a*x + b) % alphabetSize
		} else {
			y = aInv * (x - b + alphabetSize) % alphabetSize
		}
		return 'A' + rune(y), label, true
	})
	return out, steps, nil
}

func parseAffineKey(key string) (a, b int, err error) {
	parts := strings.Split(key, ",")
	var ok1, ok2 bool
	if len(parts) == 2 {
		a, ok1 = leadingInt(parts[0])
		b, ok2 = leadingInt(parts[1])
	}
	if !ok1 || !ok2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidKey,
			"Affine cipher requires two numbers separated by comma (e.g., 5,8)")
	}
	a, b = mod(a, alphabetSize), mod(b, alphabetSize)
	if gcd(a, alphabetSize) != 1 {
		return 0, 0, errors.New(errors.ErrCodeInvalidKey, "First number must be coprime to 26")
	}
	return a, b, nil
}
