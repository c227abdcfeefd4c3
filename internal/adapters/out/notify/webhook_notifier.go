// Package notify delivers dispatch notes to the courier channel over HTTP.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"minishop/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// WebhookNotifier posts dispatch notes as JSON to a configured courier
// webhook. The payload carries only the anonymous dispatch code and the
// priced items; no customer identity ever crosses this boundary.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a notifier posting to the given URL.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

type notePayload struct {
	Code  string        `json:"code"`
	Items []itemPayload `json:"items"`
	Fee   string        `json:"fee"`
	Total string        `json:"total"`
}

type itemPayload struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// Notify posts the dispatch note. Any transport failure or non-2xx response
// is an error; the caller treats it as a retryable dispatch failure.
func (n *WebhookNotifier) Notify(ctx context.Context, note ports.DispatchNote) error {
	payload := notePayload{
		Code:  note.Code.String(),
		Fee:   note.Fee.String(),
		Total: note.Total.String(),
		Items: make([]itemPayload, 0, len(note.Items)),
	}
	for _, item := range note.Items {
		payload.Items = append(payload.Items, itemPayload{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("courier webhook returned status %d", resp.StatusCode)
	}

	return nil
}
