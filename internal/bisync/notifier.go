// Package bisync pushes a best-effort notification to a Metabase-style
// BI endpoint after the relational mirror is saved. A failed or slow
// notification is logged and dropped; it never rolls back or blocks the
// save it follows.
package bisync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/bookdesk/internal/config"
)

type Notifier struct {
	url    string
	apiKey string
	client *http.Client
	logger *slog.Logger
}

func New(cfg config.MetabaseConfig) *Notifier {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Notifier{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
		logger: slog.Default(),
	}
}

// Enabled reports whether a BI endpoint is configured at all.
func (n *Notifier) Enabled() bool {
	return n.url != ""
}

type syncPayload struct {
	SyncID    string    `json:"sync_id"`
	Customers int       `json:"customers"`
	Orders    int       `json:"orders"`
	SyncedAt  time.Time `json:"synced_at"`
}

// NotifySaved tells the BI endpoint that the mirror now holds the given
// row counts. Errors are contained here: logged, never returned.
func (n *Notifier) NotifySaved(ctx context.Context, customers, orders int) {
	if !n.Enabled() {
		return
	}

	payload := syncPayload{
		SyncID:    uuid.NewString(),
		Customers: customers,
		Orders:    orders,
		SyncedAt:  time.Now().UTC(),
	}

	if err := n.post(ctx, payload); err != nil {
		n.logger.Warn("BI sync notification failed",
			slog.String("sync_id", payload.SyncID),
			slog.String("error", err.Error()))
		return
	}

	n.logger.Info("BI sync notified",
		slog.String("sync_id", payload.SyncID),
		slog.Int("customers", customers),
		slog.Int("orders", orders))
}

func (n *Notifier) post(ctx context.Context, payload syncPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("X-API-KEY", n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("endpoint answered %s", resp.Status)
	}
	return nil
}
