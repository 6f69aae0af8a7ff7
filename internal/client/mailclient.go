package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"engistore/internal/config"
)

// Mailer sends administrator notification mail.
type Mailer interface {
	Send(ctx context.Context, subject, text string) error
}

type mailClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
	from       string
	adminTo    string
}

func NewMailClient(mailCfg *config.Mail) Mailer {
	return &mailClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: mailCfg.BaseApiURL,
		apiKey:     mailCfg.APIKey,
		from:       mailCfg.From,
		adminTo:    mailCfg.AdminTo,
	}
}

func (c *mailClientImpl) Send(ctx context.Context, subject, text string) error {
	payload := map[string]interface{}{
		"from":    c.from,
		"to":      []string{c.adminTo},
		"subject": subject,
		"text":    text,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail api error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}
