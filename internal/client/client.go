// Package client is an HTTP client for the conflint validation API, used by
// the CLI's remote mode.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/filterwise/conflint/internal/conditions"
)

// Client is an HTTP client for the conflint API
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type validateRequest struct {
	Logic      conditions.Logic       `json:"logic"`
	Conditions []conditions.Condition `json:"conditions"`
}

// ValidateResult is the API's answer for a full-set validation.
type ValidateResult struct {
	Fingerprint string                     `json:"fingerprint"`
	Issues      map[int][]conditions.Issue `json:"issues"`
}

// ValidateAll submits a condition set for validation.
func (c *Client) ValidateAll(ctx context.Context, set conditions.Set) (*ValidateResult, error) {
	body, err := json.Marshal(validateRequest{Logic: set.Logic, Conditions: set.Conditions})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/v1/validate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result ValidateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// SchemaProperty is one entry of the remote property catalog.
type SchemaProperty struct {
	Key       string                `json:"key"`
	Label     string                `json:"label"`
	Class     string                `json:"class"`
	Domain    []string              `json:"domain,omitempty"`
	Operators []conditions.Operator `json:"operators"`
}

// Schema fetches the property catalog of a running instance.
func (c *Client) Schema(ctx context.Context) ([]SchemaProperty, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/v1/schema", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Properties []SchemaProperty `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Properties, nil
}
