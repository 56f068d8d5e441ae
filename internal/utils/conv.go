package utils

import (
	"strconv"
)

// StringToInt converts string to int, returns 0 if error
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// StringToInt64Default converts string to int64, falling back to def on
// empty or malformed input or a negative value. Used for pagination
// parameters.
func StringToInt64Default(s string, def int64) int64 {
	if s == "" {
		return def
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil || i < 0 {
		return def
	}
	return i
}
