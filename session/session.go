package session

import "context"

// Session keys used by the handlers.
const (
	KeyEmail    = "email"
	KeyUsername = "username"
)

// Flash is a one-shot notice shown on the next rendered view.
// Categories follow the Bootstrap-ish convention: success, warning,
// danger, info.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Store is per-client session state keyed by an opaque session id. A
// request only ever touches its own session id, so implementations need
// no cross-session coordination beyond their own map/connection safety.
type Store interface {
	Get(ctx context.Context, sid, key string) (string, error)
	Set(ctx context.Context, sid, key, value string) error
	Clear(ctx context.Context, sid string) error
	AddFlash(ctx context.Context, sid string, flash Flash) error
	// PopFlashes returns and removes all pending flashes.
	PopFlashes(ctx context.Context, sid string) ([]Flash, error)
}
