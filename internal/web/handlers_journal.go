package web

import (
	"log"
	"net/http"

	"partysheet/internal/journal"
)

// GET /journal.pdf
func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v, _, _, ok := s.visit(w, r)
	if !ok {
		return
	}
	msgs, err := s.Chat.List(ctx)
	if err != nil {
		log.Printf("list chat: %v", err)
		http.Error(w, "failed to load chat", http.StatusInternalServerError)
		return
	}
	title := ""
	if p := s.party(ctx, v); p != nil {
		title = p.Name
	}
	pdf, err := journal.Generate(title, msgs)
	if err != nil {
		log.Printf("journal: %v", err)
		http.Error(w, "failed to build journal", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="travel-journal.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("write journal: %v", err)
	}
}
