package helpers

import (
	"strconv"
)

// StringToID parses a path parameter into a surrogate key.
func StringToID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
