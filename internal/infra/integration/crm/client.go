package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client pushes captured leads into the downstream CRM. The endpoint is
// configured per deployment; the pipeline works fine without one.
type Client struct {
	apiToken string
	baseURL  string
	http     *http.Client
}

func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		apiToken: apiToken,
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiToken != ""
}

func (c *Client) UpsertContact(ctx context.Context, input ContactInput) error {
	if !c.Configured() {
		return fmt.Errorf("crm not configured")
	}

	payload := upsertContactRequest{
		ExternalID: input.LeadID,
		Email:      input.Email,
		Name:       input.Name,
		Phone:      input.Phone,
		Company:    input.Company,
		Tags:       []string{"website", input.Status},
		Note:       input.Reason,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("crm marshal failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contacts", bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("crm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("crm upsert failed (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}
