package status

import (
	"errors"
	"sync"
	"testing"
)

var publishedTable = []struct {
	name  string
	code  Code
	class Class
}{
	{"CONTINUE", 100, Informational},
	{"SWITCHING_PROTOCOLS", 101, Informational},
	{"OK", 200, Success},
	{"CREATED", 201, Success},
	{"ACCEPTED", 202, Success},
	{"NON_AUTHORITATIVE_INFORMATION", 203, Success},
	{"NO_CONTENT", 204, Success},
	{"RESET_CONTENT", 205, Success},
	{"PARTIAL_CONTENT", 206, Success},
	{"MULTIPLE_CHOICES", 300, Redirection},
	{"MOVED_PERMANENTLY", 301, Redirection},
	{"FOUND", 302, Redirection},
	{"SEE_OTHER", 303, Redirection},
	{"NOT_MODIFIED", 304, Redirection},
	{"USE_PROXY", 305, Redirection},
	{"UNUSED", 306, Redirection},
	{"TEMPORARY_REDIRECT", 307, Redirection},
	{"PERMANENT_REDIRECT", 308, Redirection},
	{"BAD_REQUEST", 400, ClientError},
	{"UNAUTHORIZED", 401, ClientError},
	{"PAYMENT_REQUIRE", 402, ClientError},
	{"FORBIDDEN", 403, ClientError},
	{"NOT_FOUND", 404, ClientError},
	{"METHOD_NOT_ALLOWED", 405, ClientError},
	{"NOT_ACCEPTED", 406, ClientError},
	{"PROXY_AUTHENTICATION_REQUIRED", 407, ClientError},
	{"REQUEST_TIMEOUT", 408, ClientError},
	{"CONFLICT", 409, ClientError},
	{"GONE", 410, ClientError},
	{"LENGTH_REQUIRED", 411, ClientError},
	{"PRECONDITION_FAILED", 412, ClientError},
	{"PAYLOAD_TOO_LARGE", 413, ClientError},
	{"URI_TOO_LONG", 414, ClientError},
	{"UNSUPPORTED_MEDIA_TYPE", 415, ClientError},
	{"RANGE_NOT_SATISFIABLE", 416, ClientError},
	{"EXPECTATION_FAILED", 417, ClientError},
	{"IM_A_TEAPOT", 418, ClientError},
	{"UPGRADE_REQUIRED", 426, ClientError},
	{"INTERNAL_SERVER_ERROR", 500, ServerError},
	{"NOT_IMPLEMENTED", 501, ServerError},
	{"BAD_GATEWAY", 502, ServerError},
	{"SERVICE_UNAVAILABLE", 503, ServerError},
	{"GATEWAY_TIMEOUT", 504, ServerError},
	{"HTTP_VERSION_NOT_SUPPORTED", 505, ServerError},
}

func TestCodeForPublishedNames(t *testing.T) {
	for _, tc := range publishedTable {
		got, err := CodeFor(tc.name)
		if err != nil {
			t.Fatalf("CodeFor(%q) error: %v", tc.name, err)
		}
		if got != tc.code {
			t.Fatalf("CodeFor(%q) = %d, want %d", tc.name, got, tc.code)
		}
		again, _ := CodeFor(tc.name)
		if again != got {
			t.Fatalf("CodeFor(%q) not stable: %d then %d", tc.name, got, again)
		}
	}
}

func TestClassifyPublishedCodes(t *testing.T) {
	for _, tc := range publishedTable {
		got, err := Classify(tc.code)
		if err != nil {
			t.Fatalf("Classify(%d) error: %v", tc.code, err)
		}
		if got != tc.class {
			t.Fatalf("Classify(%d) = %s, want %s", tc.code, got, tc.class)
		}
	}
}

func TestNotFoundIs404ClientError(t *testing.T) {
	code, err := CodeFor("NOT_FOUND")
	if err != nil || code != 404 {
		t.Fatalf("CodeFor(NOT_FOUND) = %d, %v", code, err)
	}
	class, err := Classify(404)
	if err != nil || class != ClientError {
		t.Fatalf("Classify(404) = %s, %v", class, err)
	}
}

func TestCodeForUnknownName(t *testing.T) {
	for _, name := range []string{"UNKNOWN_NAME", "", "not_found", "NOT_FOUND "} {
		code, err := CodeFor(name)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("CodeFor(%q) err = %v, want ErrNotFound", name, err)
		}
		if code != 0 || code.Valid() {
			t.Fatalf("CodeFor(%q) returned usable code %d on miss", name, code)
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.Name != name {
			t.Fatalf("expected *NotFoundError naming %q, got %#v", name, err)
		}
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	for _, code := range []Code{99, 600, 0, -1, 1000} {
		_, err := Classify(code)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Classify(%d) err = %v, want ErrOutOfRange", code, err)
		}
		var oor *OutOfRangeError
		if !errors.As(err, &oor) || oor.Code != code {
			t.Fatalf("expected *OutOfRangeError for %d, got %#v", code, err)
		}
	}
}

func TestClassifyBounds(t *testing.T) {
	cases := map[Code]Class{100: Informational, 199: Informational, 299: Success, 399: Redirection, 499: ClientError, 599: ServerError}
	for code, want := range cases {
		got, err := Classify(code)
		if err != nil || got != want {
			t.Fatalf("Classify(%d) = %s, %v; want %s", code, got, err, want)
		}
	}
}

func TestIsDeprecated(t *testing.T) {
	cases := map[string]bool{"USE_PROXY": true, "UNUSED": true, "OK": false, "NOT_FOUND": false}
	for name, want := range cases {
		got, err := IsDeprecated(name)
		if err != nil {
			t.Fatalf("IsDeprecated(%q) error: %v", name, err)
		}
		if got != want {
			t.Fatalf("IsDeprecated(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := IsDeprecated("NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("IsDeprecated(NOPE) err = %v, want ErrNotFound", err)
	}
}

func TestNameForRoundTrip(t *testing.T) {
	for _, e := range Entries() {
		name, err := NameFor(e.Code)
		if err != nil {
			t.Fatalf("NameFor(%d) error: %v", e.Code, err)
		}
		if name != e.Name {
			t.Fatalf("NameFor(%d) = %q, want %q", e.Code, name, e.Name)
		}
		back, err := CodeFor(name)
		if err != nil || back != e.Code {
			t.Fatalf("CodeFor(NameFor(%d)) = %d, %v", e.Code, back, err)
		}
	}
}

func TestNameForMissingCode(t *testing.T) {
	for _, code := range []Code{0, 99, 299, 419, 600} {
		name, err := NameFor(code)
		if !errors.Is(err, ErrNotFound) || name != "" {
			t.Fatalf("NameFor(%d) = %q, %v; want ErrNotFound", code, name, err)
		}
	}
}

func TestTableInvariants(t *testing.T) {
	all := Entries()
	if len(all) != Len() {
		t.Fatalf("Entries() len %d != Len() %d", len(all), Len())
	}
	seen := map[string]bool{}
	for i, e := range all {
		if seen[e.Name] {
			t.Fatalf("duplicate name %s", e.Name)
		}
		seen[e.Name] = true
		if !e.Code.Valid() {
			t.Fatalf("%s has code %d outside the classifiable band", e.Name, e.Code)
		}
		if Class(e.Code/100) != e.Class {
			t.Fatalf("%s: class %s does not match code %d", e.Name, e.Class, e.Code)
		}
		if i > 0 && all[i-1].Code >= e.Code {
			t.Fatalf("table not in ascending code order at %s", e.Name)
		}
		if e.Description == "" || e.Reference == "" {
			t.Fatalf("%s is missing documentation", e.Name)
		}
	}
	for _, tc := range publishedTable {
		if !seen[tc.name] {
			t.Fatalf("published name %s missing", tc.name)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	first := Entries()
	first[0].Name = "MUTATED"
	first[0].Code = 999
	if _, err := CodeFor("MUTATED"); err == nil {
		t.Fatalf("mutating Entries() result leaked into the table")
	}
	if got := Entries()[0]; got.Name != "CONTINUE" || got.Code != Continue {
		t.Fatalf("table changed after caller mutation: %#v", got)
	}
}

func TestByClass(t *testing.T) {
	total := 0
	for c := Informational; c <= ServerError; c++ {
		group := ByClass(c)
		lo, hi := c.Range()
		for _, e := range group {
			if e.Code < lo || e.Code > hi {
				t.Fatalf("%s listed under %s", e.Name, c)
			}
		}
		total += len(group)
	}
	if total != Len() {
		t.Fatalf("ByClass covers %d entries, want %d", total, Len())
	}
}

func TestParseClass(t *testing.T) {
	cases := map[string]Class{
		"ClientError":   ClientError,
		"client_error":  ClientError,
		"4xx":           ClientError,
		"informational": Informational,
		" ServerError ": ServerError,
	}
	for in, want := range cases {
		got, err := ParseClass(in)
		if err != nil || got != want {
			t.Fatalf("ParseClass(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := ParseClass("6xx"); err == nil {
		t.Fatalf("expected error for 6xx")
	}
}

func TestClassText(t *testing.T) {
	b, err := Redirection.MarshalText()
	if err != nil || string(b) != "Redirection" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	var c Class
	if err := c.UnmarshalText([]byte("Success")); err != nil || c != Success {
		t.Fatalf("UnmarshalText = %s, %v", c, err)
	}
	if _, err := Class(0).MarshalText(); err == nil {
		t.Fatalf("expected error marshaling zero class")
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"not-found":   "NOT_FOUND",
		"Not Found":   "NOT_FOUND",
		" ok ":        "OK",
		"IM_A_TEAPOT": "IM_A_TEAPOT",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tc := range publishedTable {
				if code, err := CodeFor(tc.name); err != nil || code != tc.code {
					t.Errorf("CodeFor(%q) = %d, %v", tc.name, code, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCodeIsError(t *testing.T) {
	cases := map[Code]bool{
		Continue:            false,
		OK:                  false,
		PermanentRedirect:   false,
		BadRequest:          true,
		NotFound:            true,
		InternalServerError: true,
		599:                 true,
		600:                 false,
		99:                  false,
	}
	for code, want := range cases {
		if got := code.IsError(); got != want {
			t.Fatalf("Code(%d).IsError() = %v, want %v", code, got, want)
		}
	}
}
