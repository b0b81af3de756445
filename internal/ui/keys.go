package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(hasPlaylist bool) string {
	s := "space run/stop  +/- speed  b bounce  x axis  j/k scroll  g/G jump"
	if hasPlaylist {
		s += "  n/p doc"
	}
	s += "  q quit"
	return s
}
