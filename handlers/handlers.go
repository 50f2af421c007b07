package handlers

import (
	"net/http"

	"tastebook/middleware"
	"tastebook/session"
	"tastebook/stores"
	"tastebook/uploads"

	"github.com/julienschmidt/httprouter"
)

// Handler binds HTTP routes to the stores. Every dependency is injected;
// there is no package-level state.
type Handler struct {
	Recipes  stores.RecipeStore
	Users    stores.UserStore
	Doubts   stores.DoubtStore
	Sessions session.Store
	Intake   *uploads.Intake
	Secret   []byte
}

func (h *Handler) Routes() *httprouter.Router {
	router := httprouter.New()

	s := func(next httprouter.Handle) httprouter.Handle {
		return middleware.WithSession(h.Secret, next)
	}

	router.GET("/", s(h.Root))
	router.GET("/home", s(h.Home))
	router.GET("/main", s(h.Main))
	router.GET("/space", s(h.Space))
	router.GET("/search", s(h.Search))

	router.GET("/add", s(h.AddRecipeForm))
	router.POST("/add", s(h.AddRecipe))
	router.GET("/recipe/:id", s(h.RecipeDetail))
	router.GET("/edit/:id", s(h.EditRecipeForm))
	router.POST("/edit/:id", s(h.EditRecipe))
	router.GET("/delete/:id", s(h.DeleteRecipe))

	router.GET("/register", s(h.RegisterForm))
	router.POST("/register", s(h.Register))
	router.GET("/login", s(h.LoginForm))
	router.POST("/login", s(h.Login))
	router.GET("/dashboard", s(h.Dashboard))
	router.GET("/logout", s(h.Logout))
	router.GET("/forgot", s(h.ForgotForm))
	router.POST("/forgot", s(h.Forgot))

	router.POST("/submit_doubt", s(h.SubmitDoubt))

	router.ServeFiles("/static/images/*filepath", http.Dir(h.Intake.Dir))

	return router
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	redirect(w, r, "/login")
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	redirect(w, r, "/main")
}

func (h *Handler) Main(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.render(w, r, http.StatusOK, "main", nil)
}
