package selector

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/oxhq/domkit/domerr"
)

// Nth is the An+B micro-grammar used by the :nth-* pseudo-classes. A value
// i (1-based) matches iff there exists a non-negative integer k with
// i = A*k + B.
type Nth struct {
	A, B int
}

// Matches implements the existence check directly: i matches iff (i-B) is
// an exact, non-negative multiple of A, or (when A is 0) iff i equals B.
func (n Nth) Matches(i int) bool {
	if n.A == 0 {
		return i == n.B
	}
	diff := i - n.B
	if diff%n.A != 0 {
		return false
	}
	return diff/n.A >= 0
}

var nthPattern = regexp.MustCompile(`^([+-]?\d*)n(?:([+-])(\d+))?$`)

// ParseNth parses one of: "n", "An", "An+B", "An-B", "-n+B", a bare
// integer, "odd", or "even", with whitespace tolerated around the +/- in
// the An+B forms.
func ParseNth(raw string) (Nth, error) {
	s := strings.ToLower(strings.Join(strings.Fields(raw), ""))
	switch s {
	case "odd":
		return Nth{A: 2, B: 1}, nil
	case "even":
		return Nth{A: 2, B: 0}, nil
	case "":
		return Nth{}, domerr.New(domerr.SyntaxError, "empty an+b formula")
	}

	if b, err := strconv.Atoi(s); err == nil {
		return Nth{A: 0, B: b}, nil
	}

	m := nthPattern.FindStringSubmatch(s)
	if m == nil {
		return Nth{}, domerr.New(domerr.SyntaxError, "invalid an+b formula %q", raw)
	}

	a, err := parseCoefficient(m[1])
	if err != nil {
		return Nth{}, err
	}
	b := 0
	if m[3] != "" {
		v, err := strconv.Atoi(m[3])
		if err != nil {
			return Nth{}, domerr.New(domerr.SyntaxError, "invalid an+b formula %q", raw)
		}
		if m[2] == "-" {
			v = -v
		}
		b = v
	}
	return Nth{A: a, B: b}, nil
}

func parseCoefficient(s string) (int, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	default:
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, domerr.New(domerr.SyntaxError, "invalid an+b coefficient %q", s)
		}
		return v, nil
	}
}
