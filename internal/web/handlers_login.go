package web

import (
	"net/http"
)

// GET /login
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "layout.html", map[string]any{
		"Login": LoginViewModel{
			Users:       s.Registry.Users(r.Context()),
			SignInLabel: s.localize("FLPS.UI.SIGN_IN"),
		},
	})
}

// POST /login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	u, ok := s.Registry.User(ctx, r.FormValue("user_id"))
	if !ok {
		http.Error(w, "unknown user", http.StatusBadRequest)
		return
	}

	id := s.sessionID(r)
	if id == "" {
		id = s.Store.NewID()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	if !s.save(w, r, id, Visit{UserID: u.ID}) {
		return
	}
	http.Redirect(w, r, "/party", http.StatusSeeOther)
}
