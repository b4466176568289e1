package cipher

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// xor combines the bytes of text with a repeating key. Encryption emits
// lowercase hex so the result survives copy and paste; decryption expects
// that hex back.
func xor(mode Mode, text, key string) (string, []Step, error) {
	var in []byte
	if mode == Encrypt {
		in = []byte(text)
	} else {
		var err error
		in, err = hex.DecodeString(strings.Join(strings.Fields(text), ""))
		if err != nil {
			return "", nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "XOR ciphertext must be hex encoded")
		}
	}

	out := make([]byte, len(in))
	steps := make([]Step, 0, len(in))
	for i, c := range in {
		k := key[i%len(key)]
		out[i] = c ^ k
		s := Step{Index: i, Key: string(k)}
		if mode == Encrypt {
			s.In, s.Out = printable(c), hex.EncodeToString(out[i:i+1])
		} else {
			s.In, s.Out = hex.EncodeToString(in[i:i+1]), printable(out[i])
		}
		steps = append(steps, s)
	}
	if mode == Encrypt {
		return hex.EncodeToString(out), steps, nil
	}
	return string(out), steps, nil
}

func printable(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return string(rune(c))
	}
	return "0x" + hex.EncodeToString([]byte{c})
}

// base64Cipher encodes with the standard padded alphabet. Each step covers
// one 3-byte group and its four output characters.
func base64Cipher(mode Mode, text, _ string) (string, []Step, error) {
	if mode == Encrypt {
		out := base64.StdEncoding.EncodeToString([]byte(text))
		var steps []Step
		for i := 0; i*3 < len(text); i++ {
			end := min(i*3+3, len(text))
			steps = append(steps, Step{Index: i, In: text[i*3 : end], Out: out[i*4 : i*4+4]})
		}
		return out, steps, nil
	}

	clean := strings.Join(strings.Fields(text), "")
	raw, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "Invalid Base64 input")
	}
	var steps []Step
	for i := 0; i*4 < len(clean); i++ {
		end := min(i*3+3, len(raw))
		steps = append(steps, Step{Index: i, In: clean[i*4 : i*4+4], Out: string(raw[i*3 : end])})
	}
	return string(raw), steps, nil
}

var morseTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..", ' ': "/", '0': "-----", '1': ".----",
	'2': "..---", '3': "...--", '4': "....-", '5': ".....", '6': "-....",
	'7': "--...", '8': "---..", '9': "----.", '.': ".-.-.-", ',': "--..--",
}

var morseReverse = func() map[string]rune {
	m := make(map[string]rune, len(morseTable))
	for r, code := range morseTable {
		m[code] = r
	}
	return m
}()

// morse encodes upper-cased text as space-separated codes with "/" between
// words. Unknown characters pass through when encoding and decode to "?".
func morse(mode Mode, text, _ string) (string, []Step, error) {
	if mode == Encrypt {
		var codes []string
		var steps []Step
		i := 0
		for _, r := range strings.ToUpper(text) {
			code, ok := morseTable[r]
			if !ok {
				code = string(r)
			}
			codes = append(codes, code)
			s := Step{Index: i, In: string(r), Out: code}
			if !ok {
				s.Note = "unchanged"
			}
			steps = append(steps, s)
			i++
		}
		return strings.Join(codes, " "), steps, nil
	}

	var b strings.Builder
	var steps []Step
	for _, word := range strings.Split(text, "/") {
		for _, code := range strings.Split(strings.TrimSpace(word), " ") {
			r, ok := morseReverse[code]
			if !ok || r == ' ' {
				r = '?'
			}
			b.WriteRune(r)
			s := Step{Index: len(steps), In: code, Out: string(r)}
			if r == '?' {
				s.Note = "unknown code"
			}
			steps = append(steps, s)
		}
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String()), steps, nil
}
