package sheet

// isDateNumFmt reports whether a built-in number format id renders a date
// or a time. Ids 27-36 and 50-58 are the East Asian date formats.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	default:
		return false
	}
}

// isDateFormatCode reports whether a custom format code has a date or time
// token outside of quoted literals, escapes and bracketed sections such as
// colors or conditions. Only the first section, the one used for positive
// numbers, is inspected.
func isDateFormatCode(code string) bool {
	inQuote := false
	inBracket := false

	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			if isElapsedTime(code[i:]) {
				return true
			}
			inBracket = true
		case c == '\\', c == '_', c == '*':
			i++
		case c == ';':
			return false
		default:
			switch c | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}

	return false
}

// isElapsedTime matches [h], [mm], [ss] and friends at the start of s.
func isElapsedTime(s string) bool {
	if len(s) < 3 {
		return false
	}
	unit := s[1] | 0x20
	if unit != 'h' && unit != 'm' && unit != 's' {
		return false
	}
	for i := 2; i < len(s); i++ {
		if s[i] == ']' {
			return true
		}
		if s[i]|0x20 != unit {
			return false
		}
	}
	return false
}
