package httpx

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/adeilh/go-rakh-status/status"
	"golang.org/x/crypto/blake2b"
)

// CatalogEntry is the wire form of a status.Entry.
type CatalogEntry struct {
	Name        string       `json:"name"`
	Code        int          `json:"code"`
	Class       status.Class `json:"class"`
	Description string       `json:"description,omitempty"`
	Reference   string       `json:"reference,omitempty"`
	Deprecated  bool         `json:"deprecated"`
}

func newCatalogEntry(e status.Entry) CatalogEntry {
	return CatalogEntry{
		Name:        e.Name,
		Code:        e.Code.Int(),
		Class:       e.Class,
		Description: e.Description,
		Reference:   e.Reference,
		Deprecated:  e.Deprecated,
	}
}

// Entry converts the wire form back into a status.Entry.
func (ce CatalogEntry) Entry() status.Entry {
	return status.Entry{
		Name:        ce.Name,
		Code:        status.Code(ce.Code),
		Class:       ce.Class,
		Description: ce.Description,
		Reference:   ce.Reference,
		Deprecated:  ce.Deprecated,
	}
}

// ClassResult is the body of a classification response.
type ClassResult struct {
	Code  int          `json:"code"`
	Class status.Class `json:"class"`
}

// RegisterCatalogRoutes mounts the read-only status table API under prefix:
//
//	GET {prefix}/codes            all entries, optionally ?class=ClientError (also HEAD)
//	GET {prefix}/codes/:code      entry for a numeric code
//	GET {prefix}/names/:name      entry for a symbolic name
//	GET {prefix}/classes/:code    class of any code in [100, 599]
func RegisterCatalogRoutes(a *App, prefix string, mw ...MiddlewareFunc) {
	NewRouter(a, prefix, mw...).
		Resource("/codes", listCodes).
		GET("/codes/:code", getCode).
		GET("/names/:name", getName).
		GET("/classes/:code", classifyCode)
}

func listCodes(c Context) error {
	entries := status.Entries()
	if raw := c.QueryParam("class"); raw != "" {
		class, err := status.ParseClass(raw)
		if err != nil {
			return HTTPError(StatusBadRequest, err.Error())
		}
		entries = status.ByClass(class)
	}

	out := make([]CatalogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, newCatalogEntry(e))
	}
	body, err := json.Marshal(out)
	if err != nil {
		return err
	}

	tag := etag(body)
	c.Response().Header().Set("ETag", tag)
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	if etagMatches(c.Request().Header.Get("If-None-Match"), tag) {
		return c.NoContent(StatusNotModified)
	}
	return c.JSONBlob(StatusOK, body)
}

func getCode(c Context) error {
	code, err := codeParam(c)
	if err != nil {
		return err
	}
	e, err := status.LookupCode(code)
	if err != nil {
		return err
	}
	return c.JSON(StatusOK, newCatalogEntry(e))
}

func getName(c Context) error {
	e, err := status.Lookup(status.Normalize(c.Param("name")))
	if err != nil {
		return err
	}
	return c.JSON(StatusOK, newCatalogEntry(e))
}

func classifyCode(c Context) error {
	code, err := codeParam(c)
	if err != nil {
		return err
	}
	class, err := status.Classify(code)
	if err != nil {
		return err
	}
	return c.JSON(StatusOK, ClassResult{Code: code.Int(), Class: class})
}

func codeParam(c Context) (status.Code, error) {
	n, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return 0, HTTPError(StatusBadRequest, "code must be an integer")
	}
	return status.Code(n), nil
}

// etag is a strong validator over the exact response bytes.
func etag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}
