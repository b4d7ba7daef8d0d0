package crop

import (
	"fmt"
	"strconv"
	"strings"
)

// Method selects a crop strategy. The numeric values are persisted in the
// settings file and must not change.
type Method int

const (
	Center   Method = 0
	Balanced Method = 1
	Entropy  Method = 2
)

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	switch m {
	case Center, Balanced, Entropy:
		return true
	}
	return false
}

func (m Method) String() string {
	switch m {
	case Center:
		return "center"
	case Balanced:
		return "balanced"
	case Entropy:
		return "entropy"
	}
	return "Method(" + strconv.Itoa(int(m)) + ")"
}

// ParseMethod accepts a method name ("center", "balanced", "entropy") or its
// numeric value.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "center", "centre":
		return Center, nil
	case "balanced":
		return Balanced, nil
	case "entropy":
		return Entropy, nil
	}

	n, err := strconv.Atoi(s)
	if err == nil && Method(n).Valid() {
		return Method(n), nil
	}
	return 0, fmt.Errorf("unknown crop method %q", s)
}
