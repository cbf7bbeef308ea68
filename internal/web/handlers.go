// Package web serves the party sheet: travel actions, their assignments,
// the chat log and the travel journal.
package web

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"

	"partysheet/internal/game"
	"partysheet/internal/host"
	"partysheet/internal/session"
	"partysheet/internal/travel"
)

// ChatStore is the chat log the sheet posts to and renders.
type ChatStore interface {
	travel.ChatLog
	List(ctx context.Context) ([]travel.ChatMessage, error)
}

type Server struct {
	Dispatcher *travel.Dispatcher
	Registry   *host.Registry
	Sheets     *host.Sheets
	Chat       ChatStore
	Lang       travel.Localizer
	Store      session.Store[Visit]
	Tmpl       *template.Template
	// DataDir holds portraits/ for actors with a portrait file.
	DataDir string
}

// Visit is the session state of one signed-in browser.
type Visit struct {
	UserID  string
	PartyID string
	Prompt  *travel.Prompt
	Notices []host.Notice
}

const cookieName = "partysheet_sid"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)

	mux.HandleFunc("GET /party", s.handleParty)
	mux.HandleFunc("POST /assign", s.handleAssign)
	mux.HandleFunc("POST /sheet", s.handleOpenSheet)
	mux.HandleFunc("POST /travel", s.handleTravel)
	mux.HandleFunc("POST /pick", s.handlePick)

	mux.HandleFunc("GET /journal.pdf", s.handleJournal)
	mux.HandleFunc("GET /portrait/{actorID}", s.handlePortrait)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/party", http.StatusFound)
}

// visit loads the signed-in visit and its user. It redirects to /login and
// reports false when there is none.
func (s *Server) visit(w http.ResponseWriter, r *http.Request) (Visit, string, game.User, bool) {
	ctx := r.Context()
	id := s.sessionID(r)
	if id == "" {
		http.Redirect(w, r, "/login", http.StatusFound)
		return Visit{}, "", game.User{}, false
	}
	v, ok, err := s.Store.Get(ctx, id)
	if err != nil {
		log.Printf("load session: %v", err)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return Visit{}, "", game.User{}, false
	}
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return Visit{}, "", game.User{}, false
	}
	u, ok := s.Registry.User(ctx, v.UserID)
	if !ok {
		_ = s.Store.Delete(ctx, id)
		http.Redirect(w, r, "/login", http.StatusFound)
		return Visit{}, "", game.User{}, false
	}
	return v, id, u, true
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *Server) party(ctx context.Context, v Visit) *game.Party {
	if v.PartyID != "" {
		if p, ok := s.Registry.Party(ctx, v.PartyID); ok {
			return p
		}
	}
	p, _ := s.Registry.DefaultParty(ctx)
	return p
}

// travelContext is who is acting for this request.
func (s *Server) travelContext(ctx context.Context, u game.User) (travel.Context, error) {
	c := travel.Context{User: u, Actors: s.Registry, Lang: s.Lang}
	if u.CharacterID == "" {
		return c, nil
	}
	a, ok, err := s.Registry.Actor(ctx, u.CharacterID)
	if err != nil {
		return c, err
	}
	if ok {
		c.Character = a
	}
	return c, nil
}

func (s *Server) localize(key string) string {
	if s.Lang == nil {
		return key
	}
	return s.Lang.Localize(key)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.Tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
	}
}

func (s *Server) save(w http.ResponseWriter, r *http.Request, id string, v Visit) bool {
	if err := s.Store.Put(r.Context(), id, v); err != nil {
		log.Printf("save session: %v", err)
		http.Error(w, "failed to save state", http.StatusInternalServerError)
		return false
	}
	return true
}

// travelError maps a dispatcher error to a response.
func travelError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, travel.ErrUnknownAction),
		errors.Is(err, travel.ErrUnknownButton),
		errors.Is(err, travel.ErrNotACandidate),
		errors.Is(err, travel.ErrNotResumable):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("travel: %v", err)
		http.Error(w, "travel roll failed", http.StatusInternalServerError)
	}
}
