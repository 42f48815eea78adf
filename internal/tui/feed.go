package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed-reader/internal/capability"
	"github.com/MKhiriev/go-feed-reader/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// FeedScreen lists the items of the current session's feed.
//
// Init invokes LoadFeeds; r invokes it again. l invokes Logout and returns
// to the login page. A nil slot makes the corresponding action do nothing.
type FeedScreen struct {
	LoadFeeds capability.LoadFeeds
	Logout    capability.Logout

	ctx context.Context

	// session bounds the loads of the current session; reset cancels it.
	session context.Context
	cancel  context.CancelFunc
	// gen identifies the latest load; older FeedsLoaded are dropped.
	gen uint64

	user    models.LoggedInUser
	items   []models.FeedItem
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	lastErr error
}

// NewFeedScreen creates an empty FeedScreen. ctx bounds every load started
// from the screen.
func NewFeedScreen(ctx context.Context) *FeedScreen {
	if ctx == nil {
		ctx = context.Background()
	}
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &FeedScreen{ctx: ctx, spinner: s}
}

// Init implements [tea.Model]. It starts loading the feed, or returns nil
// when LoadFeeds is unset.
func (m *FeedScreen) Init() tea.Cmd {
	return m.load()
}

func (m *FeedScreen) load() tea.Cmd {
	if m.LoadFeeds == nil || m.loading {
		return nil
	}
	if m.cancel == nil {
		m.session, m.cancel = context.WithCancel(m.ctx)
	}
	m.gen++
	m.loading = true
	m.lastErr = nil
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *FeedScreen) cmdLoad() tea.Cmd {
	ctx := m.session
	load := m.LoadFeeds
	gen := m.gen

	return func() tea.Msg {
		items, err := await(ctx, func(done func([]models.FeedItem, error)) {
			load(ctx, done)
		})
		return FeedsLoaded{Items: items, Err: err, gen: gen}
	}
}

// Update implements [tea.Model].
func (m *FeedScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionStarted:
		m.reset()
		m.user = msg.User
		return m, nil
	case FeedsLoaded:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.lastErr = msg.Err
			return m, nil
		}
		m.lastErr = nil
		m.items = msg.Items
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *FeedScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		return m, m.load()
	case key.Matches(msg, keys.copy):
		return m, m.copyLink()
	case key.Matches(msg, keys.logout):
		if m.Logout == nil {
			return m, nil
		}
		m.Logout()
		m.reset()
		return m, navigate(pageLogin, nil)
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// reset ends the current session: its in-flight load is cancelled and its
// result, whenever it arrives, is ignored.
func (m *FeedScreen) reset() {
	if m.cancel != nil {
		m.cancel()
		m.session, m.cancel = nil, nil
	}
	if m.loading {
		m.gen++
	}
	m.user = models.LoggedInUser{}
	m.items = nil
	m.idx = 0
	m.loading = false
	m.status = ""
	m.lastErr = nil
}

func (m *FeedScreen) copyLink() tea.Cmd {
	item, ok := m.current()
	if !ok || item.Link == "" {
		m.status = "Nothing to copy"
		return nil
	}
	if err := copyToClipboard(item.Link); err != nil {
		m.lastErr = fmt.Errorf("copy link: %w", err)
		return nil
	}

	m.status = "Link copied"
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *FeedScreen) current() (models.FeedItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.FeedItem{}, false
	}
	return m.items[m.idx], true
}

// View implements [tea.Model].
func (m *FeedScreen) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.items) == 0 && m.lastErr == nil:
		b.WriteString("No items\n")
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%s  %s", formatDate(item.Published), fitText(item.Title, 60))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if item, ok := m.current(); ok {
		b.WriteString("\n")
		if item.Author != "" {
			b.WriteString("By " + item.Author + "\n")
		}
		if item.Description != "" {
			b.WriteString(fitText(item.Description, 200) + "\n")
		}
		if item.Link != "" {
			b.WriteString(item.Link + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeError(m.lastErr)))
		b.WriteString("\n")
	}

	title := "FEED"
	if name := strings.TrimSpace(m.user.Name); name != "" {
		title += " · " + name
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "↑/↓: move │ r: reload │ c: copy link │ l: logout │ q: quit")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "----------"
	}
	return t.Format(time.DateOnly)
}
