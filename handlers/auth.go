package handlers

import (
	"errors"
	"log"
	"net/http"

	"tastebook/middleware"
	"tastebook/session"
	"tastebook/stores"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.render(w, r, http.StatusOK, "register", nil)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	sid := middleware.SessionID(r)

	username := r.FormValue("uname")
	email := r.FormValue("uemail")
	password := r.FormValue("upwd")

	// Check-then-insert: not atomic, concurrent registrations with the
	// same email can both pass this check.
	_, err := h.Users.FindByEmail(ctx, email)
	if err == nil {
		h.flash(r, "Email already registered!", "warning")
		redirect(w, r, "/login")
		return
	}
	if !errors.Is(err, stores.ErrNotFound) {
		log.Printf("users: lookup %s failed: %v", email, err)
		h.flash(r, "Registration failed, please try again", "danger")
		redirect(w, r, "/register")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("users: hash password: %v", err)
		h.flash(r, "Registration failed, please try again", "danger")
		redirect(w, r, "/register")
		return
	}

	if _, err := h.Users.Insert(ctx, username, email, string(hashed)); err != nil {
		log.Printf("users: insert: %v", err)
		h.flash(r, "Registration failed, please try again", "danger")
		redirect(w, r, "/register")
		return
	}

	h.Sessions.Set(ctx, sid, session.KeyEmail, email)
	h.Sessions.Set(ctx, sid, session.KeyUsername, username)

	h.flash(r, "Registration successful!", "success")
	redirect(w, r, "/dashboard")
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.render(w, r, http.StatusOK, "login", nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	email := r.FormValue("pemail")
	password := r.FormValue("ppwd")

	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		h.flash(r, "Invalid credentials!", "danger")
		redirect(w, r, "/login")
		return
	}

	h.Sessions.Set(ctx, middleware.SessionID(r), session.KeyEmail, email)
	h.flash(r, "Logged in successfully!", "success")
	redirect(w, r, "/dashboard")
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email, err := h.Sessions.Get(r.Context(), middleware.SessionID(r), session.KeyEmail)
	if err != nil {
		log.Printf("session: get email: %v", err)
	}
	if email == "" {
		h.flash(r, "Please login first.", "warning")
	}
	redirect(w, r, "/main")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.Sessions.Clear(r.Context(), middleware.SessionID(r)); err != nil {
		log.Printf("session: clear: %v", err)
	}
	h.flash(r, "You have been logged out.", "info")
	redirect(w, r, "/login")
}

func (h *Handler) ForgotForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.render(w, r, http.StatusOK, "forgot", nil)
}

func (h *Handler) Forgot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	email := r.FormValue("email")
	newPassword := r.FormValue("new_password")
	confirmPassword := r.FormValue("confirm_password")

	if newPassword != confirmPassword {
		h.flash(r, "Passwords do not match!", "danger")
		redirect(w, r, "/forgot")
		return
	}

	if _, err := h.Users.FindByEmail(ctx, email); err != nil {
		if !errors.Is(err, stores.ErrNotFound) {
			log.Printf("users: lookup %s failed: %v", email, err)
		}
		h.flash(r, "No account found with that email.", "warning")
		redirect(w, r, "/forgot")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("users: hash password: %v", err)
		h.flash(r, "Password reset failed, please try again", "danger")
		redirect(w, r, "/forgot")
		return
	}

	if _, err := h.Users.UpdatePassword(ctx, email, string(hashed)); err != nil {
		log.Printf("users: update password: %v", err)
		h.flash(r, "Password reset failed, please try again", "danger")
		redirect(w, r, "/forgot")
		return
	}

	h.flash(r, "Password reset successful! You can now log in.", "success")
	redirect(w, r, "/login")
}
