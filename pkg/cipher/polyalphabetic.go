package cipher

import (
	"strings"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// keystream hands out keyword letters in turn. Only letters of the text
// consume the key.
type keystream struct {
	key string
	pos int
}

func (k *keystream) next() byte {
	c := k.key[k.pos%len(k.key)]
	k.pos++
	return c
}

// vigenere adds (encrypt) or subtracts (decrypt) the repeating keyword.
// Case is preserved and non-letters pass through without consuming the key.
func vigenere(mode Mode, text, key string) (string, []Step, error) {
	kw, err := errors.ValidateKeyword("Vigenère cipher", key)
	if err != nil {
		return "", nil, err
	}
	ks := &keystream{key: kw}
	out, steps := mapRunes(text, func(r rune) (rune, string, bool) {
		if letterIndex(r) < 0 {
			return r, "-", false
		}
		kc := ks.next()
		k := int(kc - 'A')
		if mode == Decrypt {
			k = -k
		}
		s, _ := shift(r, k)
		return s, string(kc), true
	})
	return out, steps, nil
}

// beaufort computes (key − text) mod 26, which is its own inverse. Text is
// upper-cased.
func beaufort(_ Mode, text, key string) (string, []Step, error) {
	kw, err := errors.ValidateKeyword("Beaufort cipher", key)
	if err != nil {
		return "", nil, err
	}
	ks := &keystream{key: kw}
	out, steps := mapRunes(strings.ToUpper(text), func(r rune) (rune, string, bool) {
		if !isUpper(r) {
			return r, "-", false
		}
		kc := ks.next()
		return 'A' + rune(mod(int(kc-'A')-int(r-'A'), alphabetSize)), string(kc), true
	})
	return out, steps, nil
}
