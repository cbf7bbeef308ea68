package web

import (
	"net/http"

	"partysheet/internal/host"
	"partysheet/internal/travel"
)

// POST /travel presses a travel action button.
func (s *Server) handleTravel(w http.ResponseWriter, r *http.Request) {
	v, id, u, ok := s.visit(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ctx, notices := host.WithNotices(r.Context())
	tc, err := s.travelContext(ctx, u)
	if err != nil {
		travelError(w, err)
		return
	}

	res, err := s.Dispatcher.Press(ctx, tc, s.party(ctx, v), r.FormValue("action"), r.FormValue("button"))
	if err != nil {
		travelError(w, err)
		return
	}
	// A new press replaces any pending prompt.
	v.Prompt = nil
	if res.Status == travel.StatusPrompted {
		v.Prompt = res.Prompt
	}
	v.Notices = append(v.Notices, notices.List()...)
	if !s.save(w, r, id, v) {
		return
	}
	http.Redirect(w, r, "/party", http.StatusSeeOther)
}

// POST /pick answers the pending "who rolls" prompt. An empty actor_id
// dismisses it.
func (s *Server) handlePick(w http.ResponseWriter, r *http.Request) {
	v, id, u, ok := s.visit(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if v.Prompt == nil {
		http.Error(w, "nothing to pick", http.StatusBadRequest)
		return
	}
	actorID := r.FormValue("actor_id")
	if actorID == "" {
		v.Prompt = nil
		if s.save(w, r, id, v) {
			http.Redirect(w, r, "/party", http.StatusSeeOther)
		}
		return
	}

	ctx, notices := host.WithNotices(r.Context())
	tc, err := s.travelContext(ctx, u)
	if err != nil {
		travelError(w, err)
		return
	}
	if _, err := s.Dispatcher.Resume(ctx, tc, *v.Prompt, actorID); err != nil {
		travelError(w, err)
		return
	}
	v.Prompt = nil
	v.Notices = append(v.Notices, notices.List()...)
	if !s.save(w, r, id, v) {
		return
	}
	http.Redirect(w, r, "/party", http.StatusSeeOther)
}
