package tree

// Labels returns the first n node labels: A..Z, AA..AZ, BA..ZZ, AAA, ...
func Labels(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = Label(i)
	}
	return out
}

// Label returns the label for the i-th created node (0-based).
func Label(i int) string {
	var buf [8]byte
	pos := len(buf)
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}
	return string(buf[pos:])
}
