package cipher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/algoviz/pkg/errors"
)

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		cipher string
		key    string
		plain  string
		enc    string
		dec    string // decryption of enc
	}{
		{"caesar", "caesar", "3", "HELLO", "KHOOR", "HELLO"},
		{"caesar default shift", "caesar", "x", "abc", "def", "abc"},
		{"caesar negative shift", "caesar", "-1", "Bb", "Aa", "Bb"},
		{"caesar large shift", "caesar", "29", "HELLO", "KHOOR", "HELLO"},
		{"atbash", "atbash", "", "Hello", "Svool", "Hello"},
		{"substitution", "substitution", "zyxwvutsrqponmlkjihgfedcba", "hello", "SVOOL", "HELLO"},
		{"affine", "affine", "5,8", "AFFINE CIPHER", "IHHWVC SWFRCP", "AFFINE CIPHER"},
		{"vigenere", "vigenere", "KEY", "HELLO", "RIJVS", "HELLO"},
		{"vigenere mixed case", "vigenere", "key", "Hello, World", "Rijvs, Uyvjn", "Hello, World"},
		{"beaufort", "beaufort", "KEY", "HELLO", "DANZQ", "HELLO"},
		{"playfair", "playfair", "playfair example", "Hide the gold in the tree stump",
			"BMODZBXDNABEKUDMUIXMMOUVIF", "HIDETHEGOLDINTHETREXESTUMP"},
		{"columnar", "columnar", "ZEBRAS", "WEAREDISCOVEREDFLEEATONCE",
			"EVLNACDTESEAROFODEECWIREE", "WEAREDISCOVEREDFLEEATONCE"},
		{"rail fence", "rail_fence", "3", "WE ARE DISCOVERED FLEE AT ONCE",
			"WECRLTEERDSOEEFEAOCAIVDEN", "WEAREDISCOVEREDFLEEATONCE"},
		{"scytale", "scytale", "4", "HELLOWORLD", "HOLEWDLOLR", "HELLOWORLD"},
		{"xor", "xor", "a", "AB", "2023", "AB"},
		{"base64", "base64", "", "Hello", "SGVsbG8=", "Hello"},
		{"morse", "morse", "", "SOS", "... --- ...", "SOS"},
		{"morse words", "morse", "", "HI THERE", ".... .. / - .... . .-. .", "HI THERE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Lookup(tt.cipher)
			require.NoError(t, err)

			enc, err := c.Encrypt(tt.plain, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.enc, enc.Output)
			assert.Equal(t, Encrypt, enc.Mode)
			assert.Equal(t, tt.cipher, enc.Cipher)
			assert.NotEmpty(t, enc.Steps)

			dec, err := c.Decrypt(tt.enc, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.dec, dec.Output)
		})
	}
}

func TestKeyErrors(t *testing.T) {
	tests := []struct {
		cipher  string
		key     string
		message string
	}{
		{"caesar", "", "This cipher requires a key"},
		{"vigenere", "123", "Key must contain at least one letter"},
		{"substitution", "ABC", "Substitution cipher requires a 26-letter key"},
		{"substitution", "AACDEFGHIJKLMNOPQRSTUVWXYZ", "Substitution key must use each letter exactly once"},
		{"affine", "5", "Affine cipher requires two numbers separated by comma (e.g., 5,8)"},
		{"affine", "x,y", "Affine cipher requires two numbers separated by comma (e.g., 5,8)"},
		{"affine", "13,2", "First number must be coprime to 26"},
		{"rail_fence", "11", "Rails must be between 2 and 10"},
		{"scytale", "1", "Diameter must be between 2 and 10"},
		{"playfair", "!!", "Key must contain at least one letter"},
	}
	for _, tt := range tests {
		t.Run(tt.cipher+"/"+tt.key, func(t *testing.T) {
			_, err := Apply(tt.cipher, Encrypt, "HELLO", tt.key)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidKey), "code = %s", apperrors.GetCode(err))
			assert.Equal(t, tt.message, apperrors.UserMessage(err))
		})
	}
}

func TestInputErrors(t *testing.T) {
	_, err := Apply("caesar", Encrypt, "   ", "3")
	require.Error(t, err)
	assert.Equal(t, "Please enter text to encrypt", apperrors.UserMessage(err))

	_, err = Apply("atbash", Decrypt, "", "")
	assert.Equal(t, "Please enter text to decrypt", apperrors.UserMessage(err))

	_, err = Apply("base64", Decrypt, "!!!", "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
	assert.Equal(t, "Invalid Base64 input", apperrors.UserMessage(err))

	_, err = Apply("xor", Decrypt, "zz", "k")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))

	_, err = Apply("playfair", Decrypt, "ABC", "KEY")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))

	_, err = Apply("caesar", Encrypt, "bad\x01text", "3")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))

	_, err = Apply("enigma", Encrypt, "HELLO", "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidCipher))

	_, err = Apply("caesar", Mode("sideways"), "HELLO", "3")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
}

func TestMorseUnknownCodes(t *testing.T) {
	tr, err := Apply("morse", Decrypt, "...--- / .-", "")
	require.NoError(t, err)
	assert.Equal(t, "? A", tr.Output)
	assert.Equal(t, "unknown code", tr.Steps[0].Note)

	tr, err = Apply("morse", Encrypt, "A?", "")
	require.NoError(t, err)
	assert.Equal(t, ".- ?", tr.Output)
	assert.Equal(t, "unchanged", tr.Steps[1].Note)
}

func TestSteps(t *testing.T) {
	tr, err := Apply("caesar", Encrypt, "HI!", "1")
	require.NoError(t, err)
	assert.Equal(t, []Step{
		{Index: 0, In: "H", Out: "I", Key: "+1"},
		{Index: 1, In: "I", Out: "J", Key: "+1"},
		{Index: 2, In: "!", Out: "!", Key: "+1", Note: "unchanged"},
	}, tr.Steps)

	tr, err = Apply("vigenere", Encrypt, "A B", "BC")
	require.NoError(t, err)
	assert.Equal(t, "B D", tr.Output)
	assert.Equal(t, []string{"B", "-", "C"}, []string{tr.Steps[0].Key, tr.Steps[1].Key, tr.Steps[2].Key})

	tr, err = Apply("playfair", Encrypt, "HI", "playfair example")
	require.NoError(t, err)
	require.Len(t, tr.Steps, 1)
	assert.Equal(t, "rectangle", tr.Steps[0].Note)
	assert.Equal(t, "PLAYF IREXM BCDGH KNOQS TUVWZ", tr.Steps[0].Key)

	tr, err = Apply("base64", Encrypt, "Hello", "")
	require.NoError(t, err)
	assert.Equal(t, []Step{{Index: 0, In: "Hel", Out: "SGVs"}, {Index: 1, In: "lo", Out: "bG8="}}, tr.Steps)

	tr, err = Apply("rail_fence", Encrypt, "ABC", "2")
	require.NoError(t, err)
	assert.Equal(t, "ACB", tr.Output)
	assert.Len(t, tr.Steps, 3)
}

func TestPlayfairDigrams(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BALLOON", "BA LX LO ON"},
		{"TREE", "TR EX EX"},
		{"XX", "XQ XQ"},
		{"A", "AX"},
		{"JIG", "IX IG"},
		{"hi there!", "HI TH ER EX"},
	}
	for _, tt := range tests {
		if got := joinDigrams(tt.in); got != tt.want {
			t.Errorf("digrams(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func joinDigrams(s string) string {
	var parts []string
	for _, d := range digrams(playfairLetters(s)) {
		parts = append(parts, string(d[:]))
	}
	return strings.Join(parts, " ")
}

func TestRegistry(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{
		"caesar", "atbash", "substitution", "affine", "vigenere", "playfair", "columnar",
		"rail_fence", "xor", "base64", "morse", "beaufort", "scytale",
	}, names)
	assert.Len(t, All(), len(names))

	c, err := Lookup("Rail-Fence")
	require.NoError(t, err)
	assert.Equal(t, "rail_fence", c.Name())

	for _, c := range All() {
		info := c.Info()
		assert.Equal(t, c.Name(), info.Name)
		assert.NotEmpty(t, info.Title)
		wantKey := c.Name() != "atbash" && c.Name() != "base64" && c.Name() != "morse"
		assert.Equal(t, wantKey, info.RequiresKey, c.Name())
	}
	assert.Equal(t, "Atbash Cipher", mustLookup(t, "atbash").Info().Title)
}

func mustLookup(t *testing.T, name string) Cipher {
	t.Helper()
	c, err := Lookup(name)
	require.NoError(t, err)
	return c
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Decrypt ")
	require.NoError(t, err)
	assert.Equal(t, Decrypt, m)

	_, err = ParseMode("both")
	assert.Error(t, err)
}
