// Package sms provides a simple client for sending notifications via an SMS
// gateway.
//
// It posts messages to the gateway's HTTP API and is designed to be used as a
// notifier in the thesis-workflow system.
package sms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client represents an SMS gateway client used to send notifications.
type Client struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

// NewClient creates a new SMS Client instance for the given gateway.
func NewClient(baseURL, apiKey, from string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{},
	}
}

// sendMessageRequest represents the payload for the gateway's send API.
type sendMessageRequest struct {
	From string `json:"from"`
	To   string `json:"to"`   // recipient phone number in E.164 format
	Text string `json:"text"` // message text
}

// Send sends a notification message to the specified phone number.
//
// The subject is prepended to the body since SMS carries no separate subject
// line. Returns an error if the request fails or the gateway responds with a
// non-200 status.
func (c *Client) Send(to, subject, body string) error {
	url := fmt.Sprintf("%s/v1/messages", c.baseURL)

	reqBody := sendMessageRequest{
		From: c.from,
		To:   to,
		Text: subject + "\n" + body,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway error: %s", resp.Status)
	}

	return nil
}
