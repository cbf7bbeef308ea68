package web

import (
	"context"
	"html"
	"html/template"
	"slices"
	"strings"

	"partysheet/internal/game"
	"partysheet/internal/host"
	"partysheet/internal/travel"
)

// LoginViewModel contains data for the sign-in screen.
type LoginViewModel struct {
	Users       []game.User
	SignInLabel string
}

// PartyViewModel contains data for rendering the party sheet.
type PartyViewModel struct {
	User      game.User
	Character *game.Actor
	SheetOpen bool
	PartyName string
	Actions   []ActionView
	Chat      []ChatView
	Prompt    *travel.Prompt
	Notices   []host.Notice
	Labels    map[string]string
}

type ActionView struct {
	Key      string
	Name     string
	Buttons  []ButtonView
	Assigned []string
	Options  []ActorOption
}

type ButtonView struct {
	Class string
	Name  string
}

type ActorOption struct {
	ID       string
	Name     string
	Selected bool
}

type ChatView struct {
	Time    string
	Journal string
	Content template.HTML
}

var labelKeys = map[string]string{
	"Assigned":  "FLPS.UI.ASSIGNED",
	"Chat":      "FLPS.UI.CHAT",
	"OpenSheet": "FLPS.UI.OPEN_MY_SHEET",
	"Journal":   "FLPS.UI.JOURNAL",
}

func (s *Server) partyViewModel(ctx context.Context, v Visit, u game.User, msgs []travel.ChatMessage) PartyViewModel {
	vm := PartyViewModel{
		User:    u,
		Prompt:  v.Prompt,
		Notices: v.Notices,
		Labels:  map[string]string{},
	}
	for name, key := range labelKeys {
		vm.Labels[name] = s.localize(key)
	}
	if u.CharacterID != "" {
		if a, ok, err := s.Registry.Actor(ctx, u.CharacterID); err == nil && ok {
			vm.Character = a
			vm.SheetOpen = s.Sheets.IsOpen(a.ID)
		}
	}

	p := s.party(ctx, v)
	if p != nil {
		vm.PartyName = p.Name
	}
	actors := s.Registry.Actors(ctx)
	names := make(map[string]string, len(actors))
	for _, a := range actors {
		names[a.ID] = a.Name
	}

	for _, act := range travel.Actions() {
		av := ActionView{Key: act.Key, Name: s.localize(act.Name)}
		for _, b := range act.Buttons {
			av.Buttons = append(av.Buttons, ButtonView{Class: b.Class, Name: s.localize(b.Name)})
		}
		assigned := p.Assigned(act.Key)
		for _, id := range assigned {
			if n, ok := names[id]; ok {
				av.Assigned = append(av.Assigned, n)
			}
		}
		for _, a := range actors {
			av.Options = append(av.Options, ActorOption{
				ID:       a.ID,
				Name:     a.Name,
				Selected: slices.Contains(assigned, a.ID),
			})
		}
		vm.Actions = append(vm.Actions, av)
	}

	for _, m := range msgs {
		cv := ChatView{Journal: m.Journal, Content: chatMarkup(m.Content)}
		if !m.CreatedAt.IsZero() {
			cv.Time = m.CreatedAt.Format("15:04")
		}
		vm.Chat = append(vm.Chat, cv)
	}
	return vm
}

// markupTags is the markup chat messages may carry.
var markupTags = strings.NewReplacer(
	"&lt;b&gt;", "<b>", "&lt;/b&gt;", "</b>",
	"&lt;i&gt;", "<i>", "&lt;/i&gt;", "</i>",
	"&lt;br&gt;", "<br>", "&lt;br/&gt;", "<br>", "&lt;br /&gt;", "<br>",
)

// chatMarkup escapes content and then restores the bold, italic and line
// break tags.
func chatMarkup(content string) template.HTML {
	return template.HTML(markupTags.Replace(html.EscapeString(content)))
}
