package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerForm(username, email, password string) url.Values {
	return url.Values{
		"uname":  {username},
		"uemail": {email},
		"upwd":   {password},
	}
}

func loginForm(email, password string) url.Values {
	return url.Values{
		"pemail": {email},
		"ppwd":   {password},
	}
}

func TestRegisterCreatesUserAndSession(t *testing.T) {
	h, _, users, _ := newTestHandler(t)
	c := newClient(h)

	w := c.do(t, http.MethodPost, "/register", registerForm("alice", "alice@example.com", "hunter2"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	user, ok := users.users["alice@example.com"]
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "hunter2", user.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2")))

	// session was populated: dashboard does not warn
	w = c.do(t, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	flashes := flashMessages(t, c, "/main")
	assert.Contains(t, flashes, "success: Registration successful!")
	assert.NotContains(t, flashes, "warning: Please login first.")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, _, users, _ := newTestHandler(t)

	c1 := newClient(h)
	c1.do(t, http.MethodPost, "/register", registerForm("alice", "alice@example.com", "hunter2"))
	require.Equal(t, 1, users.inserts)

	c2 := newClient(h)
	w := c2.do(t, http.MethodPost, "/register", registerForm("imposter", "alice@example.com", "other"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	assert.Equal(t, 1, users.inserts, "no second user record")
	assert.Equal(t, "alice", users.users["alice@example.com"].Username)
	assert.Contains(t, flashMessages(t, c2, "/login"), "warning: Email already registered!")
}

func TestLoginWrongPassword(t *testing.T) {
	h, _, _, _ := newTestHandler(t)
	newClient(h).do(t, http.MethodPost, "/register", registerForm("alice", "alice@example.com", "hunter2"))

	c := newClient(h)
	w := c.do(t, http.MethodPost, "/login", loginForm("alice@example.com", "wrong"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Contains(t, flashMessages(t, c, "/login"), "danger: Invalid credentials!")

	// session was not populated: dashboard warns
	c.do(t, http.MethodGet, "/dashboard", nil)
	assert.Contains(t, flashMessages(t, c, "/main"), "warning: Please login first.")
}

func TestLoginUnknownEmail(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	c := newClient(h)
	w := c.do(t, http.MethodPost, "/login", loginForm("nobody@example.com", "whatever"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Contains(t, flashMessages(t, c, "/login"), "danger: Invalid credentials!")
}

func TestLoginAndLogout(t *testing.T) {
	h, _, _, _ := newTestHandler(t)
	newClient(h).do(t, http.MethodPost, "/register", registerForm("alice", "alice@example.com", "hunter2"))

	c := newClient(h)
	w := c.do(t, http.MethodPost, "/login", loginForm("alice@example.com", "hunter2"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Contains(t, flashMessages(t, c, "/main"), "success: Logged in successfully!")

	w = c.do(t, http.MethodGet, "/logout", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Contains(t, flashMessages(t, c, "/login"), "info: You have been logged out.")

	// session cleared: dashboard warns again
	c.do(t, http.MethodGet, "/dashboard", nil)
	assert.Contains(t, flashMessages(t, c, "/main"), "warning: Please login first.")
}

func TestForgotPasswordMismatch(t *testing.T) {
	h, _, users, _ := newTestHandler(t)
	newClient(h).do(t, http.MethodPost, "/register", registerForm("alice", "alice@example.com", "hunter2"))
	before := users.users["alice@example.com"].Password

	c := newClient(h)
	w := c.do(t, http.MethodPost, "/forgot", url.Values{
		"email":            {"alice@example.com"},
		"new_password":     {"newpass"},
		"confirm_password": {"different"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/forgot", w.Header().Get("Location"))
	assert.Contains(t, flashMessages(t, c, "/forgot"), "danger: Passwords do not match!")
	assert.Equal(t, before, users.users["alice@example.com"].Password)
}

func TestForgotPasswordUnknownAccount(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	c := newClient(h)
	w := c.do(t, http.MethodPost, "/forgot", url.Values{
		"email":            {"ghost@example.com"},
		"new_password":     {"newpass"},
		"confirm_password": {"newpass"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/forgot", w.Header().Get("Location"))
	assert.Contains(t, flashMessages(t, c, "/forgot"), "warning: No account found with that email.")
}

func TestForgotPasswordResets(t *testing.T) {
	h, _, _, _ := newTestHandler(t)
	newClient(h).do(t, http.MethodPost, "/register", registerForm("alice", "alice@example.com", "hunter2"))

	c := newClient(h)
	w := c.do(t, http.MethodPost, "/forgot", url.Values{
		"email":            {"alice@example.com"},
		"new_password":     {"newpass"},
		"confirm_password": {"newpass"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Contains(t, flashMessages(t, c, "/login"), "success: Password reset successful! You can now log in.")

	// old password no longer works, new one does
	w = c.do(t, http.MethodPost, "/login", loginForm("alice@example.com", "hunter2"))
	assert.Equal(t, "/login", w.Header().Get("Location"))
	flashMessages(t, c, "/login")

	w = c.do(t, http.MethodPost, "/login", loginForm("alice@example.com", "newpass"))
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestSpaceBackfillsUsernameFromEmail(t *testing.T) {
	h, _, _, _ := newTestHandler(t)
	newClient(h).do(t, http.MethodPost, "/register", registerForm("alice", "alice@example.com", "hunter2"))

	// plain login only stores the email in the session
	c := newClient(h)
	c.do(t, http.MethodPost, "/login", loginForm("alice@example.com", "hunter2"))

	view := decodeView(t, c.do(t, http.MethodGet, "/space", nil))
	assert.Equal(t, "alice", view["username"])

	// cached for the rest of the session
	view = decodeView(t, c.do(t, http.MethodGet, "/space", nil))
	assert.Equal(t, "alice", view["username"])
}

func TestSubmitDoubt(t *testing.T) {
	h, _, _, doubts := newTestHandler(t)

	c := newClient(h)
	w := c.do(t, http.MethodPost, "/submit_doubt", url.Values{
		"previous_email": {"alice@example.com"},
		"query":          {"How do I change my username?"},
		"phone":          {"555-0100"},
		"doubts":         {"account"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/main", w.Header().Get("Location"))

	require.Len(t, doubts.doubts, 1)
	assert.Equal(t, "alice@example.com", doubts.doubts[0].Email)
	assert.Equal(t, "account", doubts.doubts[0].Category)
	assert.False(t, doubts.doubts[0].SubmittedAt.IsZero())
	assert.Contains(t, flashMessages(t, c, "/main"), "success: Your doubt has been submitted successfully!")
}

func TestRootAndHomeRedirects(t *testing.T) {
	h, _, _, _ := newTestHandler(t)
	c := newClient(h)

	w := c.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = c.do(t, http.MethodGet, "/home", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/main", w.Header().Get("Location"))
}
