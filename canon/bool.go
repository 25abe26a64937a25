package canon

func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ParseBool reports whether s holds a non-zero integer.
func ParseBool(s string) bool {
	return ParseInt[int32](s) != 0
}
