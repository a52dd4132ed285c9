package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/store"
)

func (a *App) updatePreferences(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirmingDelete {
		return a.updateDeleteConfirm(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "esc", "backspace":
		a.view = viewDashboard
		return a, nil

	case "x":
		a.banner = ""
		return a, nil

	case "up", "k":
		a.prefCursor = clamp(a.prefCursor-1, 0, prefCount-1)
		return a, nil

	case "down", "j":
		a.prefCursor = clamp(a.prefCursor+1, 0, prefCount-1)
		return a, nil

	case "enter":
		switch a.prefCursor {
		case prefLogout:
			return a.logout()
		case prefDeleteAccount:
			a.confirmingDelete = true
			a.confirmInput.SetValue("")
			a.confirmInput.Focus()
			return a, nil
		}
	}
	return a, nil
}

func (a *App) logout() (tea.Model, tea.Cmd) {
	a.store.Dispatch(store.Logout())
	a.store.Dispatch(store.SetLists(nil))
	a.store.Dispatch(store.SetTasks(nil))
	a.view = viewLogin
	a.pane = paneLists
	a.username.SetValue("")
	a.password.SetValue("")
	a.username.Focus()
	a.password.Blur()
	a.loginFocus = 0
	a.banner = ""
	return a, a.showToast("Signed out", false)
}

func (a *App) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.confirmingDelete = false
		a.confirmInput.SetValue("")
		return a, nil

	case "enter":
		if a.busyAuth {
			return a, nil
		}
		password := a.confirmInput.Value()
		if strings.TrimSpace(password) == "" {
			return a, a.fail("Password is required to delete the account.")
		}
		sess := store.SelectSession(a.store.GetState())
		a.busyAuth = true
		return a, a.deleteAccountCmd(sess.AccessID, sess.Username, password)
	}

	var cmd tea.Cmd
	a.confirmInput, cmd = a.confirmInput.Update(msg)
	return a, cmd
}
