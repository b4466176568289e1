package cipher

import "strings"

const alphabetSize = 26

// leadingInt parses an optionally signed integer at the start of s,
// ignoring leading whitespace and any trailing text.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	i, neg := 0, false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start, v := i, 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if v < 1<<24 {
			v = v*10 + int(s[i]-'0')
		}
	}
	if i == start {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// numericKey parses a numeric key, falling back to def when the key does not
// start with a non-zero integer.
func numericKey(key string, def int) int {
	if v, ok := leadingInt(key); ok && v != 0 {
		return v
	}
	return def
}

func mod(a, m int) int { return (a%m + m) % m }

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

// shift moves a letter k places through the alphabet, preserving case.
// Other runes are returned unchanged with ok == false.
func shift(r rune, k int) (out rune, ok bool) {
	switch {
	case isUpper(r):
		return 'A' + rune(mod(int(r-'A')+k, alphabetSize)), true
	case isLower(r):
		return 'a' + rune(mod(int(r-'a')+k, alphabetSize)), true
	}
	return r, false
}

// letterIndex returns the alphabet position of an ASCII letter, or -1.
func letterIndex(r rune) int {
	switch {
	case isUpper(r):
		return int(r - 'A')
	case isLower(r):
		return int(r - 'a')
	}
	return -1
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// modInverse returns the multiplicative inverse of a modulo m, or 0 when
// none exists.
func modInverse(a, m int) int {
	a = mod(a, m)
	for i := 1; i < m; i++ {
		if a*i%m == 1 {
			return i
		}
	}
	return 0
}
