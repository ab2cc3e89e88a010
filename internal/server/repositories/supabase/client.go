// Package supabase is a minimal PostgREST client for the hosted backend.
// Requests carry the service key both as apikey and as bearer token.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/unity/internal/common"
)

// Client talks to <baseURL>/rest/v1/<table>.
type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

// NewClient returns a Client with a bounded HTTP timeout. A zero timeout
// means 30 seconds.
func NewClient(baseURL, serviceKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: timeout},
	}
}

// Query accumulates PostgREST filter, order and limit parameters.
type Query struct {
	params url.Values
}

func NewQuery() *Query {
	return &Query{params: url.Values{}}
}

func (q *Query) Eq(column, value string) *Query {
	q.params.Add(column, "eq."+value)
	return q
}

func (q *Query) Gt(column string, t time.Time) *Query {
	q.params.Add(column, "gt."+FormatTime(t))
	return q
}

func (q *Query) Lte(column string, t time.Time) *Query {
	q.params.Add(column, "lte."+FormatTime(t))
	return q
}

func (q *Query) Order(column string, desc bool) *Query {
	dir := "asc"
	if desc {
		dir = "desc"
	}
	q.params.Add("order", column+"."+dir)
	return q
}

func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", strconv.Itoa(n))
	return q
}

// Encode returns the query string including select=*.
func (q *Query) Encode() string {
	v := url.Values{}
	for k, vs := range q.params {
		v[k] = append([]string(nil), vs...)
	}
	if v.Get("select") == "" {
		v.Set("select", "*")
	}
	return v.Encode()
}

// FormatTime renders t the way PostgREST compares timestamptz values.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Select runs GET /rest/v1/<table>?<query> and decodes the JSON array into out.
func (c *Client) Select(ctx context.Context, table string, q *Query, out any) error {
	return c.do(ctx, http.MethodGet, table, q, nil, out)
}

// Insert posts body (an object or an array) and decodes the created rows
// into out when out is non-nil.
func (c *Client) Insert(ctx context.Context, table string, body any, out any) error {
	return c.do(ctx, http.MethodPost, table, nil, body, out)
}

// Update patches every row matching q with body and decodes the updated rows.
func (c *Client) Update(ctx context.Context, table string, q *Query, body any, out any) error {
	return c.do(ctx, http.MethodPatch, table, q, body, out)
}

func (c *Client) do(ctx context.Context, method, table string, q *Query, body any, out any) error {
	endpoint := c.baseURL + "/rest/v1/" + table
	if q != nil {
		endpoint += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", table, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		if out != nil {
			req.Header.Set("Prefer", "return=representation")
		} else {
			req.Header.Set("Prefer", "return=minimal")
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", common.ErrorBackend, method, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: supabase %d on %s: %s", common.ErrorBackend, resp.StatusCode, table, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", table, err)
	}
	return nil
}
