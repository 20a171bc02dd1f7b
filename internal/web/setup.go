package web

import (
	"errors"
	"net/http"

	"github.com/sidereusnuntius/microblog/internal/service"
)

func GetSetup(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderSetup(w, http.StatusOK, nil)
	}
}

// SetupComplete creates the instance's single local user. It can only ever succeed
// once; repeated attempts fail without touching the existing user.
func SetupComplete(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		username := r.Form.Get("username")
		password := r.Form.Get("password")

		err := h.service.Setup(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, service.ErrConflict) {
				http.Error(w, "Setup Failed; User already exists", http.StatusInternalServerError)
				return
			}
			http.Error(w, err.Error(), GetCode(err))
			return
		}

		w.Write([]byte("Setup Complete! Login from the Root page!"))
	}
}
