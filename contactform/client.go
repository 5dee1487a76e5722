package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"marketing_site_go/models"
)

// ContactPath is the submission endpoint relative to the site URL
const ContactPath = "/api/contact"

// TransportError covers network failures and responses that are not the
// JSON envelope.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("contact request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("contact request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client posts submissions to a site
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// Header is added to every request, e.g. a CAPTCHA token
	Header http.Header
}

// NewClient creates a client for the site at baseURL. Requests have no
// timeout of their own; callers bound them through the context.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// Send issues one POST with the submission and decodes the envelope.
// Validation and server failures come back as a response with Success=false;
// only transport and decoding problems are errors.
func (c *Client) Send(ctx context.Context, submission models.ContactSubmission) (*models.ContactResponse, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+ContactPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, values := range c.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	var envelope models.ContactResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("invalid response body: %w", err)}
	}
	return &envelope, nil
}
