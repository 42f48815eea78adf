package tui

import (
	"github.com/MKhiriev/go-feed-reader/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin = "login"
	pageFeed  = "feed"
)

// NavigateTo asks [RootModel] to switch to Page. Payload, when set, is
// delivered to the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is the outcome of the login capability.
type LoginResult struct {
	User models.LoggedInUser
	Err  error
}

// SessionStarted tells the feed page who is logged in.
type SessionStarted struct {
	User models.LoggedInUser
}

// FeedsLoaded is the outcome of the feed loading capability. gen ties it to
// the load that produced it.
type FeedsLoaded struct {
	Items []models.FeedItem
	Err   error

	gen uint64
}

type clearStatusMsg struct{}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
