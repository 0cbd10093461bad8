package internal

func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func ToUpper(c byte) byte {
	return c - 32
}

func ToLower(c byte) byte {
	return c + 32
}

// CamelCased converts "camel_cased_string" to "CamelCasedString".
func CamelCased(s string) string {
	r := make([]byte, 0, len(s))
	upperNext := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			if IsLower(c) {
				c = ToUpper(c)
			}
			upperNext = false
		}
		r = append(r, c)
	}
	return string(r)
}

func ToExported(s string) string {
	if len(s) == 0 {
		return s
	}
	if c := s[0]; IsLower(c) {
		b := []byte(s)
		b[0] = ToUpper(c)
		return string(b)
	}
	return s
}

func IsExported(s string) bool {
	return len(s) > 0 && IsUpper(s[0])
}

// ReceiverName returns a short method receiver for a type name,
// e.g. "Position" becomes "p" and "HTTPStats" becomes "h".
func ReceiverName(typeName string) string {
	for i := 0; i < len(typeName); i++ {
		c := typeName[i]
		if IsUpper(c) {
			return string(ToLower(c))
		}
		if IsLower(c) {
			return string(c)
		}
	}
	return "x"
}
