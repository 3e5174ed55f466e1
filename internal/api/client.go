// Package api provides an HTTP client for the Recurse Center hub check-in API.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mharmon/rchub/internal/hub"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://www.recurse.com/api/v1"

// Client is an HTTP client for the hub check-in API.
// One instance is safe to reuse for sequential calls across a process lifetime.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client authenticating with the given bearer token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CurrentUser returns the profile of the authenticated user.
func (c *Client) CurrentUser() (*hub.Profile, error) {
	var p hub.Profile
	if _, err := c.get("/profiles/me", &p, false); err != nil {
		return nil, err
	}
	return &p, nil
}

// Visit returns the visit for a person on a date, or nil if none exists.
// A 404 from the server signals an absent visit, not a failure.
func (c *Client) Visit(personID int64, date string) (*hub.Visit, error) {
	var v hub.Visit
	found, err := c.get(visitPath(personID, date), &v, true)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &v, nil
}

// Visits returns all visits for a date, in server order.
func (c *Client) Visits(date string) ([]*hub.Visit, error) {
	q := url.Values{}
	q.Set("date", date)

	var visits []*hub.Visit
	if _, err := c.get("/hub_visits?"+q.Encode(), &visits, false); err != nil {
		return nil, err
	}
	return visits, nil
}

// CreateOrUpdateVisit creates or replaces the visit for (personID, date).
// Empty notes sends no request body, leaving any stored notes to the
// server's default handling; non-empty notes sends {"notes": notes}.
func (c *Client) CreateOrUpdateVisit(personID int64, date, notes string) (*hub.Visit, error) {
	var body io.Reader
	if notes != "" {
		data, err := json.Marshal(map[string]string{"notes": notes})
		if err != nil {
			return nil, ValidationError("marshaling request: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(http.MethodPatch, c.baseURL+visitPath(personID, date), body)
	if err != nil {
		return nil, networkError(fmt.Errorf("creating request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var v hub.Visit
	if _, err := c.do(req, &v, false); err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteVisit removes the visit for (personID, date). No body is parsed.
func (c *Client) DeleteVisit(personID int64, date string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+visitPath(personID, date), nil)
	if err != nil {
		return networkError(fmt.Errorf("creating request: %w", err))
	}
	_, err = c.do(req, nil, false)
	return err
}

func visitPath(personID int64, date string) string {
	return fmt.Sprintf("/hub_visits/%d/%s", personID, url.PathEscape(date))
}

// get performs a GET request and decodes the response.
// With notFoundOK, a 404 returns (false, nil) instead of an error.
func (c *Client) get(path string, result interface{}, notFoundOK bool) (bool, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, networkError(fmt.Errorf("creating request: %w", err))
	}
	return c.do(req, result, notFoundOK)
}

// do executes a request with the auth header and maps failures to
// the client error taxonomy. The 404 check runs before generic
// status handling so absence never masquerades as a failure.
func (c *Client) do(req *http.Request, result interface{}, notFoundOK bool) (bool, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, networkError(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	if notFoundOK && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, statusError(resp.StatusCode)
	}

	if result != nil {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return false, networkError(fmt.Errorf("reading response: %w", err))
		}
		if err := json.Unmarshal(respBody, result); err != nil {
			return false, parseError(err)
		}
	}

	return true, nil
}
