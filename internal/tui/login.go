// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-feed-reader/internal/capability"
	"github.com/MKhiriev/go-feed-reader/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginScreen is the Bubble Tea model for the login form. It renders login
// and password inputs and, on enter, invokes the Login capability. The
// outcome arrives as a [LoginResult] message.
//
// When Login is nil, enter does nothing: no command, no error, and the form
// stays idle.
type LoginScreen struct {
	// Login is assigned by the composition root.
	Login capability.Login

	ctx context.Context

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginScreen creates a LoginScreen with the login input focused. ctx
// bounds every login started from the screen.
func NewLoginScreen(ctx context.Context) *LoginScreen {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginScreen{
		ctx:    ctx,
		inputs: []textinput.Model{loginInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor blink of the active input.
func (m *LoginScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears the submitting state; on error shows it.
//   - tab/shift+tab  moves focus between the inputs.
//   - enter          validates the form and invokes Login.
//
// All other key events go to the focused input.
func (m *LoginScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.inputs[1].SetValue("")
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginScreen) submit() tea.Cmd {
	if m.Login == nil || m.submitting {
		return nil
	}

	creds := models.Credentials{
		Login:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
	if creds.Login == "" || creds.Password == "" {
		m.errMsg = "Login and password are required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	return m.cmdLogin(creds)
}

// View implements [tea.Model].
func (m *LoginScreen) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Login     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in")
}

func (m *LoginScreen) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	login := m.Login

	return func() tea.Msg {
		user, err := await(ctx, func(done func(models.LoggedInUser, error)) {
			login(ctx, creds, done)
		})
		return LoginResult{User: user, Err: err}
	}
}

func (m *LoginScreen) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginScreen) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
