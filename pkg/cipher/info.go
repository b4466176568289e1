package cipher

var (
	caesarInfo = Info{
		Name:        "caesar",
		Title:       "Caesar Cipher",
		Description: "A substitution cipher where each letter is shifted by a fixed number of positions in the alphabet.",
		KeyFormat:   "Shift value (1-25)",
		Example:     "With shift 3: A→D, B→E, C→F",
		Strength:    "Very weak - easily broken by frequency analysis",
		History:     "Named after Julius Caesar (1st century BC)",
		RequiresKey: true,
	}
	atbashInfo = Info{
		Name:        "atbash",
		Title:       "Atbash Cipher",
		Description: "A substitution cipher where each letter is mapped to its opposite in the alphabet (A↔Z, B↔Y, C↔X).",
		KeyFormat:   "No key required",
		Example:     "HELLO → SVOOL",
		Strength:    "Very weak - a single fixed mapping",
		History:     "Hebrew scribes (around 500 BC)",
	}
	substitutionInfo = Info{
		Name:        "substitution",
		Title:       "Simple Substitution",
		Description: "Each letter is replaced by another letter according to a fixed system.",
		KeyFormat:   "26-letter substitution key",
		Example:     "Key: ZYXWVUTSRQPONMLKJIHGFEDCBA",
		Strength:    "Moderate - vulnerable to frequency analysis",
		History:     "Ancient times, various civilizations",
		RequiresKey: true,
	}
	affineInfo = Info{
		Name:        "affine",
		Title:       "Affine Cipher",
		Description: "Each letter is mapped to its numeric value, transformed by a mathematical function.",
		KeyFormat:   "Two integers (a,b) where gcd(a,26)=1",
		Example:     "Formula: (ax + b) mod 26",
		Strength:    "Weak - limited keyspace",
		History:     "Mathematical cipher (1929)",
		RequiresKey: true,
	}
	vigenereInfo = Info{
		Name:        "vigenere",
		Title:       "Vigenère Cipher",
		Description: "Uses a keyword to create multiple Caesar ciphers, cycling through the key.",
		KeyFormat:   "Alphabetic keyword",
		Example:     "Key: KEY, Text: HELLO → RIJVS",
		Strength:    "Historically strong - 'Le Chiffre Indéchiffrable'",
		History:     "Blaise de Vigenère (1586)",
		RequiresKey: true,
	}
	playfairInfo = Info{
		Name:        "playfair",
		Title:       "Playfair Cipher",
		Description: "Encrypts pairs of letters using a 5×5 key square.",
		KeyFormat:   "Keyword for 5×5 grid",
		Example:     "Processes digrams instead of single letters",
		Strength:    "Strong for its time - more secure than monoalphabetic",
		History:     "Lord Playfair (1854)",
		RequiresKey: true,
	}
	columnarInfo = Info{
		Name:        "columnar",
		Title:       "Columnar Transposition",
		Description: "Text is written in rows and read in columns according to a key order.",
		KeyFormat:   "Keyword determining column order",
		Example:     "Rearranges letter positions, not substitution",
		Strength:    "Moderate - depends on key length",
		History:     "Ancient military cipher",
		RequiresKey: true,
	}
	railFenceInfo = Info{
		Name:        "rail_fence",
		Title:       "Rail Fence Cipher",
		Description: "Text is written in a zigzag pattern across multiple 'rails' then read off in rows.",
		KeyFormat:   "Number of rails (2-10)",
		Example:     "3 rails: H.L.O / .E.L. / ..L..",
		Strength:    "Weak - simple transposition",
		History:     "Ancient Greece",
		RequiresKey: true,
	}
	xorInfo = Info{
		Name:        "xor",
		Title:       "XOR Cipher",
		Description: "Each character is XORed with a repeating key using bitwise exclusive OR.",
		KeyFormat:   "Text or numeric key",
		Example:     "Reversible: A XOR Key XOR Key = A",
		Strength:    "Strong with proper key management",
		History:     "Modern computer era",
		RequiresKey: true,
	}
	base64Info = Info{
		Name:        "base64",
		Title:       "Base64 Encoding",
		Description: "Encodes binary data using 64 ASCII characters (A-Z, a-z, 0-9, +, /).",
		KeyFormat:   "No key required",
		Example:     "Hello → SGVsbG8=",
		Strength:    "Not cryptographic - encoding only",
		History:     "Computer networking (1987)",
	}
	morseInfo = Info{
		Name:        "morse",
		Title:       "Morse Code",
		Description: "Represents letters as combinations of dots and dashes.",
		KeyFormat:   "No key required",
		Example:     "SOS → ... --- ...",
		Strength:    "Not cryptographic - communication protocol",
		History:     "Samuel Morse (1838)",
	}
	beaufortInfo = Info{
		Name:        "beaufort",
		Title:       "Beaufort Cipher",
		Description: "Similar to Vigenère but uses subtraction instead of addition.",
		KeyFormat:   "Alphabetic keyword",
		Example:     "Reciprocal cipher - encryption = decryption",
		Strength:    "Similar to Vigenère",
		History:     "Sir Francis Beaufort (1857)",
		RequiresKey: true,
	}
	scytaleInfo = Info{
		Name:        "scytale",
		Title:       "Scytale Cipher",
		Description: "Text wrapped around a rod of specific diameter, read vertically.",
		KeyFormat:   "Rod diameter/circumference",
		Example:     "Ancient physical transposition device",
		Strength:    "Weak - simple columnar transposition",
		History:     "Ancient Sparta (7th century BC)",
		RequiresKey: true,
	}
)
