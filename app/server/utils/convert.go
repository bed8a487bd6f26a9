package utils

import (
	"fmt"
	"strconv"
)

func P[T any](v T) *T {
	return &v
}

// ParseID 解析路径中的数字 ID ，0 不是合法的 ID
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
