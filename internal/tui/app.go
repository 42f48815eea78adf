package tui

import (
	"github.com/MKhiriev/go-feed-reader/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit and the f1 build info window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(keyMsg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		// the payload is applied before Init so the page starts from it
		var payloadCmd tea.Cmd
		if msg.Payload != nil {
			payloadCmd = r.delegate(msg.Payload)
		}
		return r, tea.Batch(payloadCmd, r.current.Init())
	case LoginResult:
		cmd := r.delegate(msg)
		if msg.Err == nil {
			return r, tea.Batch(cmd, navigate(pageFeed, SessionStarted{User: msg.User}))
		}
		return r, cmd
	}

	cmd := r.delegate(msg)
	return r, cmd
}

func (r *RootModel) delegate(msg tea.Msg) tea.Cmd {
	if r.current == nil {
		return nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("go-feed-reader", "", "")
	}
	return r.current.View()
}
