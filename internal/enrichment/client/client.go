// Package client provides the HTTP client for AnyMail Finder person lookups.
// Docs: https://anymailfinder.com/api/
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lead_scoring_backend/internal/enrichment/domain"
	"lead_scoring_backend/platform/logger"
)

const (
	// Name identifies the live provider in logs.
	Name = "anymailfinder"

	defaultBaseURL     = "https://api.anymailfinder.com"
	personSearchPath   = "/v5.0/search/person.json"
	apiKeyHeader       = "X-API-KEY"
	defaultHTTPTimeout = 10 * time.Second
)

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("anymailfinder status %d", e.StatusCode)
}

// Person is the subset of the AnyMail Finder v5 person record we decode.
// Only Company is mapped into an enrichment record.
type Person struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Company   *string `json:"company"`
	Domain    *string `json:"domain"`
	Position  *string `json:"position"`
	LinkedIn  *string `json:"linkedin"`
	Twitter   *string `json:"twitter"`
	Phone     *string `json:"phone"`
}

// Client handles AnyMail Finder requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// New creates a new AnyMail Finder client. An empty baseURL selects the
// public API; a non-positive timeout selects the default.
func New(apiKey, baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		log:        log,
	}
}

// Lookup issues a single person search keyed by email and maps the
// response into a record. Transport failures, non-2xx statuses and
// undecodable bodies are logged and returned as errors; there is no retry.
//
// Only the company name is populated. Company size, industry and country
// are not mapped from this provider and stay nil.
func (c *Client) Lookup(ctx context.Context, email string) (*domain.Record, error) {
	person, err := c.SearchPerson(ctx, email)
	if err != nil {
		return nil, err
	}

	return &domain.Record{
		CompanyName: person.Company,
	}, nil
}

// SearchPerson fetches the raw person record for email.
func (c *Client) SearchPerson(ctx context.Context, email string) (*Person, error) {
	params := url.Values{}
	params.Set("email", email)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, personSearchPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("anymailfinder request failed", "email", email, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("anymailfinder request error", "email", email, "status", resp.StatusCode)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var person Person
	if err := json.NewDecoder(resp.Body).Decode(&person); err != nil {
		c.log.Error("anymailfinder decode failed", "email", email, "error", err)
		return nil, err
	}

	return &person, nil
}
