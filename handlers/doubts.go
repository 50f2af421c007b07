package handlers

import (
	"log"
	"net/http"
	"time"

	"tastebook/models"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) SubmitDoubt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	doubt := &models.Doubt{
		Email:       r.FormValue("previous_email"),
		Query:       r.FormValue("query"),
		Phone:       r.FormValue("phone"),
		Category:    r.FormValue("doubts"),
		SubmittedAt: time.Now(),
	}

	if err := h.Doubts.Insert(r.Context(), doubt); err != nil {
		log.Printf("doubts: insert: %v", err)
		h.flash(r, "Could not submit your doubt, please try again", "danger")
		redirect(w, r, "/main")
		return
	}

	h.flash(r, "Your doubt has been submitted successfully!", "success")
	redirect(w, r, "/main")
}
