package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"tastebook/middleware"
	"tastebook/models"
	"tastebook/session"
	"tastebook/stores"
	"tastebook/uploads"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- in-memory store fakes ---

type fakeRecipeStore struct {
	recipes map[string]models.Recipe
}

func newFakeRecipeStore() *fakeRecipeStore {
	return &fakeRecipeStore{recipes: make(map[string]models.Recipe)}
}

func (s *fakeRecipeStore) Insert(_ context.Context, recipe *models.Recipe) (string, error) {
	recipe.ID = primitive.NewObjectID()
	s.recipes[recipe.ID.Hex()] = *recipe
	return recipe.ID.Hex(), nil
}

func (s *fakeRecipeStore) FindByID(_ context.Context, id string) (*models.Recipe, error) {
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return &recipe, nil
}

func (s *fakeRecipeStore) FindAll(_ context.Context) ([]models.Recipe, error) {
	out := make([]models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeRecipeStore) Update(_ context.Context, id string, fields map[string]any) (int64, error) {
	recipe, ok := s.recipes[id]
	if !ok {
		return 0, nil
	}
	for key, val := range fields {
		switch key {
		case "title":
			recipe.Title = val.(string)
		case "ingredients":
			recipe.Ingredients = val.([]string)
		case "instructions":
			recipe.Instructions = val.(string)
		case "prep_time":
			recipe.PrepTime = val.(int)
		case "cook_time":
			recipe.CookTime = val.(int)
		case "servings":
			recipe.Servings = val.(int)
		case "difficulty":
			recipe.Difficulty = val.(string)
		case "tags":
			recipe.Tags = val.([]string)
		case "image":
			recipe.Image = val.(string)
		case "updated_at":
			recipe.UpdatedAt = val.(time.Time)
		}
	}
	s.recipes[id] = recipe
	return 1, nil
}

func (s *fakeRecipeStore) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := s.recipes[id]; !ok {
		return 0, nil
	}
	delete(s.recipes, id)
	return 1, nil
}

func (s *fakeRecipeStore) Search(_ context.Context, query string) ([]models.Recipe, error) {
	q := strings.ToLower(query)
	match := func(r models.Recipe) bool {
		if strings.Contains(strings.ToLower(r.Title), q) {
			return true
		}
		for _, tag := range r.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), q) {
				return true
			}
		}
		return false
	}

	out := []models.Recipe{}
	for _, r := range s.recipes {
		if match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users   map[string]models.User
	inserts int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return &user, nil
}

func (s *fakeUserStore) Insert(_ context.Context, username, email, passwordHash string) (string, error) {
	id := primitive.NewObjectID()
	s.users[email] = models.User{ID: id, Username: username, Email: email, Password: passwordHash}
	s.inserts++
	return id.Hex(), nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, email, newHash string) (int64, error) {
	user, ok := s.users[email]
	if !ok {
		return 0, nil
	}
	user.Password = newHash
	s.users[email] = user
	return 1, nil
}

type fakeDoubtStore struct {
	doubts []models.Doubt
}

func (s *fakeDoubtStore) Insert(_ context.Context, doubt *models.Doubt) error {
	s.doubts = append(s.doubts, *doubt)
	return nil
}

// --- test client with cookie continuity ---

func newTestHandler(t *testing.T) (*Handler, *fakeRecipeStore, *fakeUserStore, *fakeDoubtStore) {
	t.Helper()
	recipes := newFakeRecipeStore()
	users := newFakeUserStore()
	doubts := &fakeDoubtStore{}
	h := &Handler{
		Recipes:  recipes,
		Users:    users,
		Doubts:   doubts,
		Sessions: session.NewMemoryStore(),
		Intake:   uploads.New(t.TempDir()),
		Secret:   []byte("test-secret"),
	}
	return h, recipes, users, doubts
}

// client keeps the session cookie across requests the way a browser does.
type client struct {
	router http.Handler
	cookie *http.Cookie
}

func newClient(h *Handler) *client {
	return &client{router: h.Routes()}
}

func (c *client) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			c.cookie = ck
		}
	}
	return w
}

// doMultipart posts a form with an attached file, as the add/edit forms do.
func (c *client) doMultipart(t *testing.T, path string, fields map[string]string, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, val := range fields {
		require.NoError(t, mw.WriteField(key, val))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			c.cookie = ck
		}
	}
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var view map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

// flashMessages renders the given path and returns its flashes as
// "category: message" strings.
func flashMessages(t *testing.T, c *client, path string) []string {
	t.Helper()
	view := decodeView(t, c.do(t, http.MethodGet, path, nil))
	raw, _ := view["flashes"].([]any)
	var out []string
	for _, item := range raw {
		f := item.(map[string]any)
		out = append(out, f["category"].(string)+": "+f["message"].(string))
	}
	return out
}
