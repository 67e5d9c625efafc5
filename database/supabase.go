// Package database provides the Supabase PostgREST integration.
package database

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"divineastro/config"
)

// ErrNoRows is returned when a single-row query matches nothing.
var ErrNoRows = errors.New("supabase: no rows")

// SupabaseClient wraps the Supabase REST API.
type SupabaseClient struct {
	url        string
	serviceKey string
	httpClient *http.Client
}

// NewSupabaseClient creates a client from the loaded configuration.
func NewSupabaseClient() (*SupabaseClient, error) {
	url := strings.TrimRight(config.AppConfig.SupabaseURL, "/")
	key := config.AppConfig.SupabaseServiceKey
	if key == "" {
		key = config.AppConfig.SupabaseAnonKey
	}
	if url == "" || key == "" {
		return nil, fmt.Errorf("supabase URL and key are required")
	}
	return &SupabaseClient{
		url:        url,
		serviceKey: key,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// NewSupabaseClientForURL builds a client against an explicit endpoint. Used by tests.
func NewSupabaseClientForURL(url, key string) *SupabaseClient {
	return &SupabaseClient{
		url:        strings.TrimRight(url, "/"),
		serviceKey: key,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

const maxResponseBytes = 8 << 20 // 8 MiB

// request makes an HTTP request to the Supabase REST API. Records cross the
// wire in snake_case; callers hand in camelCase-tagged structs and the casing
// adapter translates at this boundary.
func (c *SupabaseClient) request(ctx context.Context, method, table string, body any, query string, single bool) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.url, table)
	if query != "" {
		url += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := MarshalSnake(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Prefer", "return=representation")
	if single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNotAcceptable {
		// PostgREST answers 406 when the object accept header matches no row.
		return nil, ErrNoRows
	}
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 32<<10))
		return nil, fmt.Errorf("supabase API error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return respBody, nil
}

// Insert adds a record and decodes the created representation into out.
func (c *SupabaseClient) Insert(ctx context.Context, table string, record, out any) error {
	data, err := c.request(ctx, http.MethodPost, table, record, "", true)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return UnmarshalCamel(data, out)
}

// Select fetches every row matching the query (empty query fetches all) into out.
func (c *SupabaseClient) Select(ctx context.Context, table, query string, out any) error {
	data, err := c.request(ctx, http.MethodGet, table, nil, query, false)
	if err != nil {
		return err
	}
	return UnmarshalCamel(data, out)
}

// SelectSingle fetches exactly one row; ErrNoRows when nothing matches.
func (c *SupabaseClient) SelectSingle(ctx context.Context, table, query string, out any) error {
	data, err := c.request(ctx, http.MethodGet, table, nil, query, true)
	if err != nil {
		return err
	}
	return UnmarshalCamel(data, out)
}

// Update patches the rows matching the query and decodes one updated row into out.
func (c *SupabaseClient) Update(ctx context.Context, table, query string, patch, out any) error {
	data, err := c.request(ctx, http.MethodPatch, table, patch, query, true)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return UnmarshalCamel(data, out)
}

// Upsert inserts or merges on conflict with the given column.
func (c *SupabaseClient) Upsert(ctx context.Context, table, conflictColumn string, record, out any) error {
	url := fmt.Sprintf("%s/rest/v1/%s?on_conflict=%s", c.url, table, conflictColumn)

	jsonBody, err := MarshalSnake(record)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Prefer", "return=representation,resolution=merge-duplicates")
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 32<<10))
		return fmt.Errorf("supabase API error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if out == nil {
		return nil
	}
	return UnmarshalCamel(data, out)
}

// Delete removes the rows matching the query.
func (c *SupabaseClient) Delete(ctx context.Context, table, query string) error {
	_, err := c.request(ctx, http.MethodDelete, table, nil, query, false)
	return err
}
