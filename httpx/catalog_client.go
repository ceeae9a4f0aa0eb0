package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/adeilh/go-rakh-status/cache"
	"github.com/adeilh/go-rakh-status/status"
)

// CatalogClient queries a remote catalog API mounted with RegisterCatalogRoutes.
// Remote misses surface as status.ErrNotFound and unclassifiable codes as
// status.ErrOutOfRange, the same errors the local table returns.
type CatalogClient struct {
	client *Client
	prefix string
	store  cache.Store
	ttl    time.Duration
}

type CatalogOption func(*CatalogClient)

// WithCatalogPrefix sets the path prefix the routes were mounted under.
func WithCatalogPrefix(prefix string) CatalogOption {
	return func(cc *CatalogClient) {
		cc.prefix = prefix
	}
}

// WithCatalogCache caches successful entry lookups in store for ttl.
func WithCatalogCache(store cache.Store, ttl time.Duration) CatalogOption {
	return func(cc *CatalogClient) {
		if store != nil {
			cc.store = store
			cc.ttl = ttl
		}
	}
}

func NewCatalogClient(client *Client, opts ...CatalogOption) *CatalogClient {
	if client == nil {
		client = NewClient()
	}
	cc := &CatalogClient{client: client, ttl: time.Hour}
	for _, opt := range opts {
		if opt != nil {
			opt(cc)
		}
	}
	return cc
}

// Lookup fetches the entry for a symbolic name. Matching is exact, as in
// status.Lookup: names the server would only accept after normalizing are
// reported missing without a request.
func (cc *CatalogClient) Lookup(ctx context.Context, name string) (status.Entry, error) {
	if name == "" || status.Normalize(name) != name {
		return status.Entry{}, &status.NotFoundError{Name: name}
	}
	return cc.entry(ctx, "name:"+name, "/names/"+url.PathEscape(name), func() error {
		return &status.NotFoundError{Name: name}
	})
}

// LookupCode fetches the entry for a numeric code.
func (cc *CatalogClient) LookupCode(ctx context.Context, code status.Code) (status.Entry, error) {
	return cc.entry(ctx, "code:"+code.String(), "/codes/"+code.String(), func() error {
		return &status.NotFoundError{Code: code}
	})
}

func (cc *CatalogClient) CodeFor(ctx context.Context, name string) (status.Code, error) {
	e, err := cc.Lookup(ctx, name)
	if err != nil {
		return 0, err
	}
	return e.Code, nil
}

func (cc *CatalogClient) NameFor(ctx context.Context, code status.Code) (string, error) {
	e, err := cc.LookupCode(ctx, code)
	if err != nil {
		return "", err
	}
	return e.Name, nil
}

func (cc *CatalogClient) IsDeprecated(ctx context.Context, name string) (bool, error) {
	e, err := cc.Lookup(ctx, name)
	if err != nil {
		return false, err
	}
	return e.Deprecated, nil
}

func (cc *CatalogClient) Classify(ctx context.Context, code status.Code) (status.Class, error) {
	var out ClassResult
	_, err := cc.client.Get(ctx, cc.prefix+"/classes/"+strconv.Itoa(code.Int()), &out)
	if err != nil {
		if responseStatus(err) == StatusUnprocessableEntity {
			return 0, &status.OutOfRangeError{Code: code}
		}
		return 0, fmt.Errorf("catalog: classify %d: %w", code, err)
	}
	return out.Class, nil
}

// Entries lists the remote table, optionally narrowed to one class. With a
// cache configured the previous listing is revalidated by ETag and reused
// when the server answers 304.
func (cc *CatalogClient) Entries(ctx context.Context, class ...status.Class) ([]status.Entry, error) {
	key := "list:all"
	var opts []RequestOption
	if len(class) > 0 {
		key = "list:" + class[0].String()
		opts = append(opts, WithQuery(map[string]string{"class": class[0].String()}))
	}
	var prior listing
	if cc.load(ctx, key, &prior) {
		opts = append(opts, IfNoneMatch(prior.ETag))
	}

	var out []CatalogEntry
	resp, err := cc.client.Get(ctx, cc.prefix+"/codes", &out, opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	switch {
	case resp.StatusCode() == StatusNotModified && prior.ETag != "":
		out = prior.Entries
	case resp.Header().Get("ETag") != "":
		cc.save(ctx, key, listing{ETag: resp.Header().Get("ETag"), Entries: out})
	}

	entries := make([]status.Entry, 0, len(out))
	for _, ce := range out {
		entries = append(entries, ce.Entry())
	}
	return entries, nil
}

// Revision returns the remote listing's ETag. It changes whenever the
// served table does.
func (cc *CatalogClient) Revision(ctx context.Context) (string, error) {
	resp, err := cc.client.Head(ctx, cc.prefix+"/codes")
	if err != nil {
		return "", fmt.Errorf("catalog: revision: %w", err)
	}
	return resp.Header().Get("ETag"), nil
}

type listing struct {
	ETag    string         `json:"etag"`
	Entries []CatalogEntry `json:"entries"`
}

func (cc *CatalogClient) entry(ctx context.Context, key, path string, miss func() error) (status.Entry, error) {
	var out CatalogEntry
	if cc.load(ctx, key, &out) {
		return out.Entry(), nil
	}
	out = CatalogEntry{}

	_, err := cc.client.Get(ctx, cc.prefix+path, &out)
	if err != nil {
		if responseStatus(err) == StatusNotFound {
			return status.Entry{}, miss()
		}
		return status.Entry{}, fmt.Errorf("catalog: get %s: %w", path, err)
	}

	cc.save(ctx, key, out)
	return out.Entry(), nil
}

// load reports a hit only for a decodable value; store failures fall through
// to the remote. Undecodable values are evicted.
func (cc *CatalogClient) load(ctx context.Context, key string, v any) bool {
	if cc.store == nil {
		return false
	}
	raw, err := cc.store.Get(ctx, cacheKey(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		_ = cc.store.Delete(ctx, cacheKey(key))
		return false
	}
	return true
}

func (cc *CatalogClient) save(ctx context.Context, key string, v any) {
	if cc.store == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = cc.store.Set(ctx, cacheKey(key), raw, cc.ttl)
}

func cacheKey(key string) string { return "status:" + key }

// WarmCatalogCache preloads store with every table entry under the keys a
// CatalogClient reads, so clients sharing the store never miss.
func WarmCatalogCache(ctx context.Context, store cache.Store, ttl time.Duration) (int, error) {
	items := make(map[string][]byte, 2*status.Len())
	for _, e := range status.Entries() {
		raw, err := json.Marshal(newCatalogEntry(e))
		if err != nil {
			return 0, err
		}
		items[cacheKey("name:"+e.Name)] = raw
		if k := cacheKey("code:" + e.Code.String()); items[k] == nil {
			items[k] = raw
		}
	}
	if err := cache.SetAll(ctx, store, items, ttl); err != nil {
		return 0, fmt.Errorf("catalog: warm cache: %w", err)
	}
	return len(items), nil
}
