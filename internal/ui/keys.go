package ui

import "github.com/charmbracelet/bubbles/key"

// GState tracks the first press of a "gg" jump.
type GState int

const (
	GStateIdle GState = iota
	GStateFirstG
)

func bind(helpKey, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

// KeyMap holds the nav-mode bindings for the shop list and detail screens.
type KeyMap struct {
	Up, Down                           key.Binding
	Top, Bottom                        key.Binding
	HalfPageDown, HalfPageUp           key.Binding
	Open, Back                         key.Binding
	PrevNeighborhood, NextNeighborhood key.Binding
	AllShops                           key.Binding
	Favorite, EditNote                 key.Binding
	Login, Signup                      key.Binding
	Undo, Redo                         key.Binding
	Quit, Help                         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:               bind("k/↑", "up", "k", "up"),
		Down:             bind("j/↓", "down", "j", "down"),
		Top:              bind("gg", "top", "g"),
		Bottom:           bind("G", "bottom", "G"),
		HalfPageDown:     bind("ctrl+d", "½ page down", "ctrl+d"),
		HalfPageUp:       bind("ctrl+u", "½ page up", "ctrl+u"),
		Open:             bind("enter/l", "details", "enter", "l", "right"),
		Back:             bind("esc/h", "back", "esc", "h", "b", "left"),
		PrevNeighborhood: bind("[", "prev area", "["),
		NextNeighborhood: bind("]", "next area", "]"),
		AllShops:         bind("0", "all shops", "0"),
		Favorite:         bind("f/space", "favorite", "f", " "),
		EditNote:         bind("i", "edit note", "i", "n"),
		Login:            bind("L", "log in", "L"),
		Signup:           bind("S", "sign up", "S"),
		Undo:             bind("u", "undo", "u"),
		Redo:             bind("ctrl+r", "redo", "ctrl+r"),
		Quit:             bind("q", "quit", "q", "ctrl+c"),
		Help:             bind("?", "help", "?"),
	}
}

// FormKeyMap holds the auth modal bindings.
type FormKeyMap struct {
	NextField, PrevField key.Binding
	Submit, Cancel       key.Binding
	SwitchView           key.Binding
}

func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		NextField:  bind("tab", "next field", "tab", "down"),
		PrevField:  bind("shift+tab", "prev field", "shift+tab", "up"),
		Submit:     bind("enter", "submit", "enter"),
		Cancel:     bind("esc", "close", "esc"),
		SwitchView: bind("ctrl+t", "log in/sign up", "ctrl+t"),
	}
}
