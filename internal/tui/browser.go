// Package tui is the terminal catalog browser.
//
// It follows the bubbletea (Elm) architecture: key messages are translated into
// catalog actions, catalog.Reduce produces the next view state, and View renders
// the visible cards from that state. The browser keeps no filter or sort state
// of its own.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/portfolio-cv/internal/catalog"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// Browser is the bubbletea model of the catalog browser.
type Browser struct {
	repo    *types.Repository
	state   catalog.State
	visible []types.Card
	cursor  int

	search textinput.Model

	width    int
	height   int
	quitting bool
}

// New creates a browser over repo, starting from state.
func New(repo *types.Repository, state catalog.State) *Browser {
	search := textinput.New()
	search.Placeholder = "search title, tags, tools..."
	search.Prompt = "/ "
	search.CharLimit = 80
	search.SetValue(state.Query)

	b := &Browser{
		repo:   repo,
		state:  state,
		search: search,
	}
	b.refresh()
	return b
}

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(repo *types.Repository, state catalog.State) error {
	_, err := tea.NewProgram(New(repo, state), tea.WithAltScreen()).Run()
	return err
}

// State returns the current catalog view state.
func (b *Browser) State() catalog.State {
	return b.state
}

// Visible returns the cards currently listed.
func (b *Browser) Visible() []types.Card {
	return b.visible
}

// Cursor returns the index of the highlighted card.
func (b *Browser) Cursor() int {
	return b.cursor
}

// Searching reports whether key presses go to the search box.
func (b *Browser) Searching() bool {
	return b.search.Focused()
}

// Init is called once when the program starts.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update handles one message.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.search.Width = max(10, msg.Width-4)
		return b, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			b.quitting = true
			return b, tea.Quit
		}
		switch {
		case b.state.Modal.Open:
			return b.updateDetail(msg)
		case b.search.Focused():
			return b.updateSearch(msg)
		default:
			return b.updateList(msg)
		}
	}
	return b, nil
}

func (b *Browser) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		b.quitting = true
		return b, tea.Quit
	case "/":
		return b, b.search.Focus()
	case "tab":
		b.dispatch(catalog.SetCategory{Category: catalog.NextCategory(b.state.Category)})
	case "s":
		b.dispatch(catalog.SetSort{Sort: catalog.NextSortMode(b.state.Sort)})
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.visible)-1 {
			b.cursor++
		}
	case "enter":
		if len(b.visible) > 0 {
			b.dispatch(catalog.OpenCard{Card: b.visible[b.cursor]})
		}
	}
	return b, nil
}

func (b *Browser) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		b.search.Blur()
		return b, nil
	}

	var cmd tea.Cmd
	b.search, cmd = b.search.Update(msg)
	if b.search.Value() != b.state.Query {
		b.dispatch(catalog.SetQuery{Query: b.search.Value()})
	}
	return b, cmd
}

func (b *Browser) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace":
		b.dispatch(catalog.CloseModal{})
	case "left", "h":
		b.dispatch(catalog.PrevSlide{})
	case "right", "l":
		b.dispatch(catalog.NextSlide{})
	case "home":
		b.dispatch(catalog.GotoSlide{Index: 0})
	case "end":
		b.dispatch(catalog.GotoSlide{Index: b.state.Modal.Slides - 1})
	}
	return b, nil
}

// dispatch applies an action and recomputes the visible cards.
func (b *Browser) dispatch(action catalog.Action) {
	b.state = catalog.Reduce(b.state, action)
	b.refresh()
}

func (b *Browser) refresh() {
	b.visible = catalog.Visible(b.repo, b.state)
	if b.cursor >= len(b.visible) {
		b.cursor = max(0, len(b.visible)-1)
	}
}

// View renders the current screen.
func (b *Browser) View() string {
	if b.quitting {
		return ""
	}
	if b.state.Modal.Open {
		return b.viewDetail()
	}
	return b.viewList()
}

func (b *Browser) viewList() string {
	var sb strings.Builder

	name := "Portfolio"
	if b.repo != nil && b.repo.Person.Name != "" {
		name = b.repo.Person.Name
	}
	sb.WriteString(titleStyle.Render(name + " · Catalog"))
	sb.WriteString("\n\n")

	sb.WriteString(b.viewCategories())
	sb.WriteString("\n")
	sb.WriteString(b.search.View())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("sort: %s · %d cards", b.state.Sort, len(b.visible))))
	sb.WriteString("\n\n")

	if len(b.visible) == 0 {
		sb.WriteString(dimStyle.Render("No cards match."))
		sb.WriteString("\n")
	}
	for i := range b.visible {
		card := &b.visible[i]
		prefix := "  "
		line := fmt.Sprintf("%s %s", card.Title, kindStyle.Render("["+string(card.Kind)+"]"))
		if card.Date != "" {
			line += " " + dimStyle.Render(card.Date)
		}
		if card.Featured {
			line += " ★"
		}
		if i == b.cursor {
			prefix = cursorStyle.Render("> ")
		}
		sb.WriteString(prefix + line + "\n")
	}

	sb.WriteString(footerStyle.Render("tab category · s sort · / search · ↑/↓ move · enter open · esc quit"))
	return sb.String()
}

func (b *Browser) viewCategories() string {
	opts := catalog.Categories()
	rendered := make([]string, 0, len(opts))
	for _, opt := range opts {
		if opt.ID == b.state.Category {
			rendered = append(rendered, activeCategoryStyle.Render(opt.Label))
		} else {
			rendered = append(rendered, categoryStyle.Render(opt.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (b *Browser) viewDetail() string {
	card, ok := catalog.Find(b.repo, b.state.Modal.Title)
	if !ok {
		return dimStyle.Render("Card not found. esc to go back.")
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(card.Title))
	sb.WriteString("\n")
	meta := []string{string(card.Kind)}
	if card.Date != "" {
		meta = append(meta, card.Date)
	}
	if tags := card.DomainTags(); len(tags) > 0 {
		meta = append(meta, strings.Join(tags, ", "))
	}
	sb.WriteString(dimStyle.Render(strings.Join(meta, " · ")))
	sb.WriteString("\n\n")

	if card.Blurb != "" {
		sb.WriteString(card.Blurb + "\n\n")
	}
	if card.Details != "" {
		sb.WriteString(card.Details + "\n\n")
	}
	for _, bullet := range card.Bullets {
		sb.WriteString("• " + bullet + "\n")
	}
	for _, m := range card.Modules {
		sb.WriteString(kindStyle.Render(m.Title) + "\n")
		for _, bullet := range m.Bullets {
			sb.WriteString("  • " + bullet + "\n")
		}
	}
	if len(card.Tools) > 0 {
		sb.WriteString("\n" + dimStyle.Render("Tools: "+strings.Join(card.Tools, ", ")) + "\n")
	}
	for _, link := range card.Links {
		sb.WriteString(fmt.Sprintf("%s: %s\n", link.Label, link.URL))
	}

	if img, ok := catalog.CurrentImage(card, b.state.Modal); ok {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("image %s  %s\n", b.state.Modal.Position(), img))
		sb.WriteString(dimStyle.Render(catalog.SlideAlt(card, b.state.Modal.Slide)))
		sb.WriteString("\n")
	}

	body := detailStyle.Width(max(40, b.width-4)).Render(strings.TrimRight(sb.String(), "\n"))
	return body + "\n" + footerStyle.Render("←/→ image · esc back")
}
