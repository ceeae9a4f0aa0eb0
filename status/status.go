// Package status holds the HTTP status-code reference table: symbolic names
// such as NOT_FOUND bound to their numeric codes, with the class, a short
// description and the defining RFC section of each.
//
// The table is built once when the package is loaded and is never modified
// afterwards, so every function here is safe for concurrent use without
// locking. Accessors return copies.
package status

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is matched by every lookup miss.
	ErrNotFound = errors.New("status: not found")
	// ErrOutOfRange is matched when a code falls outside [100, 599].
	ErrOutOfRange = errors.New("status: code out of range")
)

const (
	// MinCode and MaxCode bound the codes that can be classified.
	MinCode Code = 100
	MaxCode Code = 599
)

// Code is a three-digit HTTP status code.
type Code int

// Int returns the code as a plain int for use with net/http and echo.
func (c Code) Int() int { return int(c) }

func (c Code) String() string { return strconv.Itoa(int(c)) }

// Valid reports whether c lies in the classifiable band [100, 599].
func (c Code) Valid() bool { return c >= MinCode && c <= MaxCode }

// Class returns the class of c; see Classify.
func (c Code) Class() (Class, error) { return Classify(c) }

// IsError reports whether c is a 4xx or 5xx code.
func (c Code) IsError() bool { return c >= 400 && c <= MaxCode }

// Entry is one row of the table.
type Entry struct {
	Name        string
	Code        Code
	Class       Class
	Description string
	Reference   string
	Deprecated  bool
}

// NotFoundError reports a name or code that is absent from the table.
// Exactly one of Name and Code is set.
type NotFoundError struct {
	Name string
	Code Code
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("status: name %q not found", e.Name)
	}
	return fmt.Sprintf("status: code %d not found", e.Code)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// OutOfRangeError reports a code that cannot be classified.
type OutOfRangeError struct {
	Code Code
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("status: code %d out of range [%d, %d]", e.Code, MinCode, MaxCode)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// CodeFor returns the code bound to name. Names match exactly. On a miss the
// returned code is zero and the error matches ErrNotFound.
func CodeFor(name string) (Code, error) {
	e, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return e.Code, nil
}

// NameFor returns the first name in table order bound to code.
func NameFor(code Code) (string, error) {
	e, err := LookupCode(code)
	if err != nil {
		return "", err
	}
	return e.Name, nil
}

// IsDeprecated reports whether the named entry is deprecated or reserved.
func IsDeprecated(name string) (bool, error) {
	e, err := Lookup(name)
	if err != nil {
		return false, err
	}
	return e.Deprecated, nil
}

// Classify returns the class of code from its hundreds digit. Codes inside
// [100, 599] classify even when the table has no entry for them.
func Classify(code Code) (Class, error) {
	if !code.Valid() {
		return 0, &OutOfRangeError{Code: code}
	}
	return Class(code / 100), nil
}

// Lookup returns the entry bound to name.
func Lookup(name string) (Entry, error) {
	i, ok := byName[name]
	if !ok {
		return Entry{}, &NotFoundError{Name: name}
	}
	return entries[i], nil
}

// LookupCode returns the first entry bound to code.
func LookupCode(code Code) (Entry, error) {
	i, ok := byCode[code]
	if !ok {
		return Entry{}, &NotFoundError{Code: code}
	}
	return entries[i], nil
}

// Entries returns a copy of the table in ascending code order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries[:])
	return out
}

// ByClass returns the entries of one class in ascending code order.
func ByClass(class Class) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Class == class {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries.
func Len() int { return len(entries) }

// Normalize maps loose spellings such as "not-found" or "Not Found" onto the
// table's identifier form NOT_FOUND. Lookups themselves stay exact.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return r
	}, name)
	return strings.ToUpper(name)
}
