package openbrewery

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"brewhub-backend/pkg/apperror"
)

// Search types accepted by the directory API.
const (
	SearchByCity = "by_city"
	SearchByName = "by_name"
	SearchByType = "by_type"
)

var searchTypes = map[string]bool{
	SearchByCity: true,
	SearchByName: true,
	SearchByType: true,
}

// ValidSearchType reports whether t is one of the supported search types.
func ValidSearchType(t string) bool {
	return searchTypes[t]
}

// Client queries the Open Brewery DB directory API. Responses are relayed
// as raw JSON so the upstream shape passes through unmodified.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search forwards query as the value of a parameter named after searchType
// (e.g. ?by_city=denver) and returns the upstream JSON array verbatim.
func (c *Client) Search(ctx context.Context, searchType, query string) (json.RawMessage, error) {
	u := c.baseURL + "?" + url.Values{searchType: {query}}.Encode()
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// GetByID fetches a single brewery record by its path-segment identifier.
func (c *Client) GetByID(ctx context.Context, id string) (json.RawMessage, error) {
	body, err := c.get(ctx, c.baseURL+"/"+url.PathEscape(id))
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to fetch brewery", err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, u string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "directory request failed", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "directory request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "directory request failed", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg := upstreamMessage(body); msg != "" {
			return nil, apperror.New(apperror.KindUpstream, msg)
		}
		return nil, apperror.New(apperror.KindInternal, "directory request failed")
	}

	return body, nil
}

// upstreamMessage extracts the first error message the directory reported,
// handling both {"message": "..."} and {"errors": ["...", ...]} bodies.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if len(payload.Errors) > 0 {
		return payload.Errors[0]
	}
	return payload.Message
}
