// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal screens of the reader on Bubble Tea.
//
// Screens never see the API client: each exposes one exported field per
// capability it uses, assigned by the composition root. Unset fields leave
// the matching action inert.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/MKhiriev/go-feed-reader/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the reader program over a login and a feed page.
type TUI struct {
	login     *LoginScreen
	feed      *FeedScreen
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New wires the pages into a program. It starts on the login page.
func New(login *LoginScreen, feed *FeedScreen, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{login: login, feed: feed, buildInfo: buildInfo, logger: logger.OrNop(log)}
}

// Root returns the router model of the program.
func (t *TUI) Root() RootModel {
	pages := map[string]tea.Model{
		pageLogin: t.login,
		pageFeed:  t.feed,
	}
	return NewRootModel(pages, pageLogin, t.buildInfo)
}

// Run blocks until the user quits or ctx is done. Cancellation is not an
// error.
func (t *TUI) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	final, err := tea.NewProgram(t.Root(), opts...).Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			t.logger.Info().Msg("program stopped by context")
			return nil
		}
		return err
	}

	if root, ok := final.(RootModel); ok && root.quitByUser {
		t.logger.Info().Msg("program quit by user")
	}
	return nil
}
