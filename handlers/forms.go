package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

const maxUploadSize = 10 << 20

// recipeForm is the validated shape of an add/edit submission. Defaults
// are applied here, in one place, instead of scattered through handlers:
// prep and cook time fall back to 0, servings to 1, difficulty to medium.
type recipeForm struct {
	Title        string
	Ingredients  []string
	Instructions string
	PrepTime     int
	CookTime     int
	Servings     int
	Difficulty   string
	Tags         []string
}

func parseRecipeForm(r *http.Request) recipeForm {
	// multipart when an image rides along, urlencoded otherwise
	_ = r.ParseMultipartForm(maxUploadSize)

	return recipeForm{
		Title:        r.FormValue("title"),
		Ingredients:  splitLines(r.FormValue("ingredients")),
		Instructions: r.FormValue("instructions"),
		PrepTime:     intField(r, "prep_time", 0),
		CookTime:     intField(r, "cook_time", 0),
		Servings:     intField(r, "servings", 1),
		Difficulty:   stringField(r, "difficulty", "medium"),
		Tags:         splitCSV(r.FormValue("tags")),
	}
}

func intField(r *http.Request, name string, fallback int) int {
	val := strings.TrimSpace(r.FormValue(name))
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func stringField(r *http.Request, name, fallback string) string {
	if val := r.FormValue(name); val != "" {
		return val
	}
	return fallback
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// acceptImage hands the optional upload to the intake. A missing or
// rejected file leaves the recipe's image untouched.
func (h *Handler) acceptImage(r *http.Request) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", false
	}
	defer file.Close()
	return h.Intake.Accept(file, header)
}
