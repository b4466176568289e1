// Package cipher implements the classical ciphers of the cipher visualizer.
//
// Every cipher returns a [Trace]: the output together with the individual
// steps that produced it, one per character, digram or block depending on
// the cipher. Renderers and the stepper replay traces; they never need to
// know how a particular cipher works.
//
// Ciphers are looked up by name:
//
//	c, err := cipher.Lookup("vigenere")
//	tr, err := c.Encrypt("HELLO", "KEY") // tr.Output == "RIJVS"
//
// Key problems are reported with errors.ErrCodeInvalidKey, malformed input
// with errors.ErrCodeInvalidInput.
package cipher

import (
	"slices"
	"strings"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// Mode is the direction of a cipher operation.
type Mode string

const (
	Encrypt Mode = "encrypt"
	Decrypt Mode = "decrypt"
)

// ParseMode parses "encrypt" or "decrypt" case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Encrypt, Decrypt:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid mode: %q (must be encrypt or decrypt)", s)
}

// Info describes a cipher for display.
type Info struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	KeyFormat   string `json:"key_format" yaml:"key_format"`
	Example     string `json:"example" yaml:"example"`
	Strength    string `json:"strength" yaml:"strength"`
	History     string `json:"history" yaml:"history"`
	RequiresKey bool   `json:"requires_key" yaml:"requires_key"`
}

// Step is one unit of work in a trace.
type Step struct {
	Index int    `json:"index" yaml:"index"`
	In    string `json:"in" yaml:"in"`
	Out   string `json:"out" yaml:"out"`
	Key   string `json:"key,omitempty" yaml:"key,omitempty"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Trace is the result of a cipher operation.
type Trace struct {
	Cipher string `json:"cipher" yaml:"cipher"`
	Mode   Mode   `json:"mode" yaml:"mode"`
	Input  string `json:"input" yaml:"input"`
	Key    string `json:"key,omitempty" yaml:"key,omitempty"`
	Output string `json:"output" yaml:"output"`
	Steps  []Step `json:"steps" yaml:"steps"`
}

// Cipher encrypts and decrypts text with a key.
type Cipher interface {
	Name() string
	Info() Info
	Encrypt(text, key string) (Trace, error)
	Decrypt(text, key string) (Trace, error)
}

// transform does the work of one cipher. key has already been checked for
// presence when the cipher requires one.
type transform func(mode Mode, text, key string) (string, []Step, error)

type cipher struct {
	info Info
	run  transform
}

func (c *cipher) Name() string { return c.info.Name }

func (c *cipher) Info() Info { return c.info }

func (c *cipher) Encrypt(text, key string) (Trace, error) { return c.apply(Encrypt, text, key) }

func (c *cipher) Decrypt(text, key string) (Trace, error) { return c.apply(Decrypt, text, key) }

func (c *cipher) apply(mode Mode, text, key string) (Trace, error) {
	if text == "" {
		return Trace{}, errors.New(errors.ErrCodeInvalidInput, "Please enter text to %s", mode)
	}
	if err := errors.ValidateText(text); err != nil {
		return Trace{}, err
	}
	if c.info.RequiresKey && key == "" {
		return Trace{}, errors.New(errors.ErrCodeInvalidKey, "This cipher requires a key")
	}
	out, steps, err := c.run(mode, text, key)
	if err != nil {
		return Trace{}, err
	}
	return Trace{
		Cipher: c.info.Name,
		Mode:   mode,
		Input:  text,
		Key:    key,
		Output: out,
		Steps:  steps,
	}, nil
}

var registry = map[string]*cipher{}

// order is the display order of the cipher picker.
var order []string

func register(info Info, run transform) {
	registry[info.Name] = &cipher{info: info, run: run}
	order = append(order, info.Name)
}

// Lookup returns the cipher with the given name. Names are case-insensitive
// and accept "-" in place of "_".
func Lookup(name string) (Cipher, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if c, ok := registry[n]; ok {
		return c, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidCipher,
		"unknown cipher: %q (must be one of: %s)", name, strings.Join(order, ", "))
}

// Names returns every cipher name in display order.
func Names() []string { return slices.Clone(order) }

// All returns every cipher in display order.
func All() []Cipher {
	out := make([]Cipher, 0, len(order))
	for _, n := range order {
		out = append(out, registry[n])
	}
	return out
}

// Apply looks up a cipher by name and runs it in the given mode. Surrounding
// whitespace is trimmed from text and key first.
func Apply(name string, mode Mode, text, key string) (Trace, error) {
	c, err := Lookup(name)
	if err != nil {
		return Trace{}, err
	}
	text, key = strings.TrimSpace(text), strings.TrimSpace(key)
	switch mode {
	case Encrypt:
		return c.Encrypt(text, key)
	case Decrypt:
		return c.Decrypt(text, key)
	}
	return Trace{}, errors.New(errors.ErrCodeInvalidInput, "invalid mode: %q (must be encrypt or decrypt)", mode)
}

func init() {
	register(caesarInfo, caesar)
	register(atbashInfo, atbash)
	register(substitutionInfo, substitution)
	register(affineInfo, affine)
	register(vigenereInfo, vigenere)
	register(playfairInfo, playfair)
	register(columnarInfo, columnar)
	register(railFenceInfo, railFence)
	register(xorInfo, xor)
	register(base64Info, base64Cipher)
	register(morseInfo, morse)
	register(beaufortInfo, beaufort)
	register(scytaleInfo, scytale)
}
