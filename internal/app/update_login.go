package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/store"
)

func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "tab", "shift+tab", "up", "down":
		a.loginFocus = (a.loginFocus + 1) % 2
		if a.loginFocus == 0 {
			a.username.Focus()
			a.password.Blur()
		} else {
			a.password.Focus()
			a.username.Blur()
		}
		return a, nil

	case "ctrl+s":
		a.signupMode = !a.signupMode
		return a, nil

	case "esc":
		a.banner = ""
		return a, nil

	case "enter":
		if a.busyAuth {
			return a, nil
		}
		username := strings.TrimSpace(a.username.Value())
		password := a.password.Value()
		if username == "" || password == "" {
			return a, a.fail("Username and password are required.")
		}
		a.busyAuth = true
		if a.signupMode {
			return a, a.signupCmd(username, password)
		}
		return a, a.loginCmd(username, password)
	}

	// Keystroke goes to the focused input, then into the store so the
	// slice mirrors the field.
	var cmd tea.Cmd
	if a.loginFocus == 0 {
		a.username, cmd = a.username.Update(msg)
		a.store.Dispatch(store.SetUsername(a.username.Value()))
	} else {
		a.password, cmd = a.password.Update(msg)
		a.store.Dispatch(store.SetPassword(a.password.Value()))
	}
	return a, cmd
}
