package middleware

import (
	"context"
	"net/http"

	"tastebook/session"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// CookieName is the session cookie.
const CookieName = "session"

// WithSession resolves the client's session id from the signed cookie,
// minting a fresh id and cookie when the token is absent or invalid,
// and stores the id in the request context.
func WithSession(secret []byte, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		var sid string
		if cookie, err := r.Cookie(CookieName); err == nil {
			if id, err := session.ParseToken(cookie.Value, secret); err == nil {
				sid = id
			}
		}

		if sid == "" {
			sid = uuid.NewString()
			if token, err := session.MintToken(sid, secret); err == nil {
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sid)
		next(w, r.WithContext(ctx), ps)
	}
}

// SessionID returns the session id placed in the context by WithSession.
func SessionID(r *http.Request) string {
	sid, ok := r.Context().Value(sessionIDKey).(string)
	if !ok {
		return ""
	}
	return sid
}
