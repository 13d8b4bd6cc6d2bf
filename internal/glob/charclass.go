package glob

// matchClass reports whether c matches the character class body (the bytes
// between `[` and `]`). The body lists single bytes and inclusive ranges;
// a range is recognized as a (byte, '-', byte) triple, so a trailing dash
// is an ordinary literal. Negated classes are not supported.
func matchClass(body []byte, c byte) bool {
	for i := 0; i < len(body); {
		lo := body[i]
		if i+2 < len(body) && body[i+1] == '-' {
			if hi := body[i+2]; c >= lo && c <= hi {
				return true
			}
			i += 3
			continue
		}
		if c == lo {
			return true
		}
		i++
	}
	return false
}

// matchClassFold is the case-insensitive variant. The body bytes come from
// the matcher's upper-cased pattern buffer, so only the candidate byte
// needs folding here.
func matchClassFold(body []byte, c byte) bool {
	return matchClass(body, upperByte(c))
}
