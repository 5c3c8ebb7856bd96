package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	reload   key.Binding
	copy     key.Binding
	info     key.Binding
	login    key.Binding
	register key.Binding
	logout   key.Binding
	newQuiz  key.Binding
	edit     key.Binding
	delete   key.Binding
	yes      key.Binding
	no       key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	reload:   key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	info:     key.NewBinding(key.WithKeys("v")),
	login:    key.NewBinding(key.WithKeys("l")),
	register: key.NewBinding(key.WithKeys("g")),
	logout:   key.NewBinding(key.WithKeys("o")),
	newQuiz:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
