package app

import (
	"fmt"
	"strings"

	"taskpad/internal/store"
)

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.view {
	case viewLogin:
		body = a.renderLogin()
	case viewDashboard:
		body = a.renderDashboard()
	case viewPreferences:
		body = a.renderPreferences()
	}

	var b strings.Builder
	b.WriteString(body)
	if a.banner != "" {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render(a.banner + "  (x to dismiss)"))
	}
	if a.toast.visible {
		b.WriteString("\n")
		if a.toast.isErr {
			b.WriteString(toastErrStyle.Render(a.toast.text))
		} else {
			b.WriteString(toastOKStyle.Render(a.toast.text))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (a *App) renderLogin() string {
	var b strings.Builder

	title := "taskpad — log in"
	if a.signupMode {
		title = "taskpad — sign up"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(a.username.View())
	b.WriteString("\n")
	b.WriteString(a.password.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter submit · tab switch field · ctrl+s toggle signup · ctrl+c quit"))
	return b.String()
}

func (a *App) renderDashboard() string {
	state := a.store.GetState()
	var b strings.Builder

	if a.pane == paneLists {
		b.WriteString(titleStyle.Render("Lists"))
		b.WriteString("\n")

		form := store.SelectListForm(state)
		if form.Visible {
			b.WriteString(a.renderComposeForm("New list"))
		} else {
			b.WriteString(a.renderLists(state))
			b.WriteString(helpStyle.Render("enter open · a add · d delete · r reload · p preferences · q quit"))
		}
	} else {
		active := store.SelectActiveList(state)
		b.WriteString(titleStyle.Render("Tasks — " + displayName(active.Name)))
		b.WriteString("\n")

		form := store.SelectTaskForm(state)
		if form.Visible {
			b.WriteString(a.renderComposeForm("New task"))
		} else {
			b.WriteString(a.renderTasks(state))
			b.WriteString(helpStyle.Render("space toggle done · a add · d delete · esc back · q quit"))
		}
	}
	return b.String()
}

func (a *App) renderLists(state store.State) string {
	lists := store.SelectLists(state)
	if len(lists) == 0 {
		return dimStyle.Render("no lists yet — press a to create one") + "\n"
	}

	var b strings.Builder
	for i, l := range lists {
		line := fmt.Sprintf("%s  %s", displayName(l.Name), dimStyle.Render(l.Description))
		if i == a.listCursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderTasks(state store.State) string {
	tasks := store.SelectTasks(state)
	if len(tasks) == 0 {
		return dimStyle.Render("no tasks in this list — press a to create one") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		mark := "[ ]"
		name := displayName(t.Name)
		if t.IsDone {
			mark = "[x]"
			name = doneStyle.Render(name)
		}
		line := fmt.Sprintf("%s %s  %s", mark, name, dimStyle.Render(t.Description))
		if i == a.taskCursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderComposeForm(title string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(a.nameInput.View())
	b.WriteString("\n")
	b.WriteString(a.descInput.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter create · tab switch field · esc cancel"))
	return b.String()
}

func (a *App) renderPreferences() string {
	state := a.store.GetState()
	sess := store.SelectSession(state)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Preferences"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Signed in as %s\n", displayName(sess.Username)))
	b.WriteString(fmt.Sprintf("Backend: %s\n\n", a.cfg.BaseURL))

	if a.confirmingDelete {
		b.WriteString("Deleting your account removes all lists and tasks.\n")
		b.WriteString(a.confirmInput.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter confirm · esc cancel"))
		return b.String()
	}

	items := []string{"Log out", "Delete account"}
	for i, item := range items {
		if i == a.prefCursor {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter select · esc back"))
	return b.String()
}

// displayName normalizes a name for display. Blank names render as
// "(untitled)".
func displayName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")
	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
