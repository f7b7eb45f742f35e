package ui

import tea "github.com/charmbracelet/bubbletea"

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgScreenLoaded MsgKind = iota
)

// screenLoadedMsg is the constructor for [MsgScreenLoaded]
func screenLoadedMsg() Msg {
	return Msg{kind: MsgScreenLoaded}
}
