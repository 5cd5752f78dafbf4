// track.go wraps the posthog client so callers never have to care whether
// analytics is configured.
package utils

import (
	"log/slog"
	"strconv"

	"github.com/posthog/posthog-go"
)

// Track sends product analytics events (ledger-create, account-update, and
// so on). A zero value is a no-op, so wiring it is always safe.
type Track struct {
	client posthog.Client
	logger *slog.Logger
}

func NewTrack(apiKey string, logger *slog.Logger) *Track {
	if apiKey == "" {
		if logger != nil {
			logger.Warn("Posthog API key is empty, analytics disabled.")
		}
		return &Track{}
	}
	t := &Track{logger: logger}
	t.client, _ = posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://us.i.posthog.com"})
	return t
}

// Event enqueues one event keyed by account id.
func (t *Track) Event(accountID uint, event string, properties map[string]any) {
	if t == nil || t.client == nil {
		return
	}
	if properties == nil {
		properties = map[string]any{}
	}
	properties["app"] = "go-client"
	properties["accountId"] = accountID

	t.client.Enqueue(posthog.Capture{
		DistinctId: strconv.FormatUint(uint64(accountID), 10),
		Event:      event,
		Properties: properties,
	})
}

// Identify associates the logged-in user with subsequent events.
func (t *Track) Identify(userID uint, email string) {
	if t == nil || t.client == nil {
		return
	}
	t.client.Enqueue(posthog.Identify{
		DistinctId: strconv.FormatUint(uint64(userID), 10),
		Properties: posthog.NewProperties().Set("email", email),
	})
}

func (t *Track) Close() {
	if t == nil || t.client == nil {
		return
	}
	t.client.Close()
}
