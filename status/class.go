package status

import (
	"fmt"
	"strings"
)

// Class groups codes by their first digit.
type Class int

const (
	Informational Class = iota + 1
	Success
	Redirection
	ClientError
	ServerError
)

var classNames = [...]string{
	Informational: "Informational",
	Success:       "Success",
	Redirection:   "Redirection",
	ClientError:   "ClientError",
	ServerError:   "ServerError",
}

func (c Class) String() string {
	if c < Informational || c > ServerError {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Range returns the inclusive code band of c.
func (c Class) Range() (lo, hi Code) {
	return Code(c) * 100, Code(c)*100 + 99
}

// MarshalText encodes c by name so JSON payloads carry "ClientError" rather
// than a bare digit.
func (c Class) MarshalText() ([]byte, error) {
	if c < Informational || c > ServerError {
		return nil, fmt.Errorf("status: invalid class %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseClass accepts a class name ("ClientError", "client_error", "4xx").
func ParseClass(s string) (Class, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.TrimSpace(s)))
	for c := Informational; c <= ServerError; c++ {
		if key == strings.ToLower(classNames[c]) || key == fmt.Sprintf("%dxx", int(c)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("status: unknown class %q", s)
}
