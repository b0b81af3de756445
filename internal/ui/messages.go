package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg is one display frame. The whole pacing loop is driven off these.
type frameMsg time.Time

// docLoadedMsg carries the content of a freshly read document.
type docLoadedMsg struct {
	title   string
	content string
	err     error
}

const frameInterval = time.Second / 60

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
