package web

import (
	"log"
	"net/http"

	"partysheet/internal/travel"
)

// GET /party
func (s *Server) handleParty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v, id, u, ok := s.visit(w, r)
	if !ok {
		return
	}
	w.Header().Set("Cache-Control", "no-store")

	msgs, err := s.Chat.List(ctx)
	if err != nil {
		log.Printf("list chat: %v", err)
		http.Error(w, "failed to load chat", http.StatusInternalServerError)
		return
	}
	vm := s.partyViewModel(ctx, v, u, msgs)

	// Notices are shown once.
	if len(v.Notices) > 0 {
		v.Notices = nil
		if !s.save(w, r, id, v) {
			return
		}
	}
	s.render(w, "layout.html", map[string]any{"Party": vm})
}

// POST /assign
func (s *Server) handleAssign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v, _, _, ok := s.visit(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	act, ok := travel.Lookup(r.FormValue("action"))
	if !ok {
		http.Error(w, "unknown travel action", http.StatusBadRequest)
		return
	}
	p := s.party(ctx, v)
	if p == nil {
		http.Error(w, "no party", http.StatusNotFound)
		return
	}
	ids := travel.NormalizeIDs(r.Form["actor"]...)
	if err := s.Registry.Assign(ctx, p.ID, act.Key, ids); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/party", http.StatusSeeOther)
}

// POST /sheet opens the signed-in user's character sheet.
func (s *Server) handleOpenSheet(w http.ResponseWriter, r *http.Request) {
	_, _, u, ok := s.visit(w, r)
	if !ok {
		return
	}
	if u.CharacterID == "" {
		http.Error(w, "no character assigned", http.StatusBadRequest)
		return
	}
	s.Sheets.Open(u.CharacterID)
	http.Redirect(w, r, "/party", http.StatusSeeOther)
}
