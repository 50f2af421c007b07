package handlers

import (
	"log"
	"net/http"

	"tastebook/middleware"
	"tastebook/session"
	"tastebook/utils"
)

// render emits a JSON view-model. The template layer lives elsewhere;
// the controller only decides which view to show and with what data.
// Pending flashes are popped into every rendered view.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, view string, data utils.M) {
	flashes, err := h.Sessions.PopFlashes(r.Context(), middleware.SessionID(r))
	if err != nil {
		log.Printf("session: pop flashes: %v", err)
	}
	if flashes == nil {
		flashes = []session.Flash{}
	}

	payload := utils.M{"view": view, "flashes": flashes}
	for k, v := range data {
		payload[k] = v
	}
	utils.RespondWithJSON(w, status, payload)
}

func (h *Handler) flash(r *http.Request, message, category string) {
	err := h.Sessions.AddFlash(r.Context(), middleware.SessionID(r), session.Flash{
		Message:  message,
		Category: category,
	})
	if err != nil {
		log.Printf("session: add flash: %v", err)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// currentUsername resolves the logged-in user's name. When the session
// only has an email (plain login), the name is looked up once and cached
// in the session for the rest of its lifetime.
func (h *Handler) currentUsername(r *http.Request) string {
	ctx := r.Context()
	sid := middleware.SessionID(r)

	username, err := h.Sessions.Get(ctx, sid, session.KeyUsername)
	if err != nil {
		log.Printf("session: get username: %v", err)
		return ""
	}
	if username != "" {
		return username
	}

	email, err := h.Sessions.Get(ctx, sid, session.KeyEmail)
	if err != nil || email == "" {
		return ""
	}

	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		return ""
	}
	if err := h.Sessions.Set(ctx, sid, session.KeyUsername, user.Username); err != nil {
		log.Printf("session: cache username: %v", err)
	}
	return user.Username
}
