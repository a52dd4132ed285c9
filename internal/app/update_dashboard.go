package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/store"
)

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := a.store.GetState()

	if a.pane == paneLists && store.SelectListForm(state).Visible {
		return a.updateListForm(msg)
	}
	if a.pane == paneTasks && store.SelectTaskForm(state).Visible {
		return a.updateTaskForm(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "p":
		a.view = viewPreferences
		a.prefCursor = 0
		return a, nil

	case "x":
		a.banner = ""
		return a, nil

	case "up", "k":
		a.moveCursor(-1)
		return a, nil

	case "down", "j":
		a.moveCursor(1)
		return a, nil

	case "r":
		return a, a.reloadCurrentPane()

	case "a":
		if a.pane == paneLists {
			a.store.Dispatch(store.ToggleAddList())
		} else {
			a.store.Dispatch(store.ToggleAddTaskForm())
		}
		a.resetComposeForm()
		a.nameInput.Focus()
		return a, nil

	case "enter":
		if a.pane != paneLists {
			return a, nil
		}
		lists := store.SelectLists(state)
		if len(lists) == 0 {
			return a, nil
		}
		selected := lists[a.listCursor]
		// Hand the list identity to the task slice as explicit values.
		a.store.Dispatch(store.SetTaskListName(selected.Name))
		a.store.Dispatch(store.SetTaskListID(selected.ID))
		a.pane = paneTasks
		a.taskCursor = 0
		a.busyTasks = true
		return a, a.loadTasksCmd(store.SelectSession(state).AccessID, selected.ID)

	case "esc", "backspace":
		if a.pane == paneTasks {
			a.pane = paneLists
		}
		return a, nil

	case "d":
		return a, a.deleteSelected()

	case " ", "space":
		return a, a.toggleSelectedTask()
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	state := a.store.GetState()
	if a.pane == paneLists {
		n := len(store.SelectLists(state))
		a.listCursor = clamp(a.listCursor+delta, 0, n-1)
	} else {
		n := len(store.SelectTasks(state))
		a.taskCursor = clamp(a.taskCursor+delta, 0, n-1)
	}
}

func (a *App) reloadCurrentPane() tea.Cmd {
	state := a.store.GetState()
	sess := store.SelectSession(state)
	if a.pane == paneLists {
		if a.busyLists {
			return nil
		}
		a.busyLists = true
		return a.loadListsCmd(sess.AccessID)
	}
	if a.busyTasks {
		return nil
	}
	a.busyTasks = true
	return a.loadTasksCmd(sess.AccessID, store.SelectActiveList(state).ID)
}

func (a *App) deleteSelected() tea.Cmd {
	state := a.store.GetState()
	sess := store.SelectSession(state)

	if a.pane == paneLists {
		if a.busyLists {
			return nil
		}
		lists := store.SelectLists(state)
		if len(lists) == 0 {
			return nil
		}
		a.busyLists = true
		return a.deleteListCmd(sess.AccessID, lists[a.listCursor].ID)
	}

	if a.busyTasks {
		return nil
	}
	tasks := store.SelectTasks(state)
	if len(tasks) == 0 {
		return nil
	}
	a.busyTasks = true
	return a.deleteTaskCmd(sess.AccessID, tasks[a.taskCursor].ID)
}

func (a *App) toggleSelectedTask() tea.Cmd {
	if a.pane != paneTasks || a.busyTasks {
		return nil
	}
	state := a.store.GetState()
	tasks := store.SelectTasks(state)
	if len(tasks) == 0 {
		return nil
	}
	task := tasks[a.taskCursor]

	// The slice records the toggle target even though nothing reads it
	// back; the authoritative value arrives with the reload.
	a.store.Dispatch(store.SetTaskIsDone(!task.IsDone))

	a.busyTasks = true
	sess := store.SelectSession(state)
	return a.toggleTaskCmd(sess.AccessID, task.ID, !task.IsDone)
}

func (a *App) updateListForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.store.Dispatch(store.ToggleAddList())
		a.store.Dispatch(store.SetListName(""))
		a.store.Dispatch(store.SetListDescription(""))
		a.resetComposeForm()
		return a, nil

	case "tab", "shift+tab":
		a.switchFormFocus()
		return a, nil

	case "enter":
		if a.busyLists {
			return a, nil
		}
		state := a.store.GetState()
		sess := store.SelectSession(state)
		if !sess.Authenticated {
			return a, a.fail("You must be logged in to create a list.")
		}
		form := store.SelectListForm(state)
		if strings.TrimSpace(form.Name) == "" {
			return a, a.fail("List name is required.")
		}
		a.busyLists = true
		return a, a.createListCmd(sess.AccessID, form.Name, form.Description)
	}

	var cmd tea.Cmd
	if a.formFocus == 0 {
		a.nameInput, cmd = a.nameInput.Update(msg)
		a.store.Dispatch(store.SetListName(a.nameInput.Value()))
	} else {
		a.descInput, cmd = a.descInput.Update(msg)
		a.store.Dispatch(store.SetListDescription(a.descInput.Value()))
	}
	return a, cmd
}

func (a *App) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.store.Dispatch(store.ToggleAddTaskForm())
		a.store.Dispatch(store.SetTaskName(""))
		a.store.Dispatch(store.SetTaskDescription(""))
		a.resetComposeForm()
		return a, nil

	case "tab", "shift+tab":
		a.switchFormFocus()
		return a, nil

	case "enter":
		if a.busyTasks {
			return a, nil
		}
		state := a.store.GetState()
		sess := store.SelectSession(state)
		if !sess.Authenticated {
			return a, a.fail("You must be logged in to create a task.")
		}
		form := store.SelectTaskForm(state)
		if strings.TrimSpace(form.Name) == "" {
			return a, a.fail("Task name is required.")
		}
		a.busyTasks = true
		active := store.SelectActiveList(state)
		return a, a.createTaskCmd(sess.AccessID, active.ID, form.Name, form.Description)
	}

	var cmd tea.Cmd
	if a.formFocus == 0 {
		a.nameInput, cmd = a.nameInput.Update(msg)
		a.store.Dispatch(store.SetTaskName(a.nameInput.Value()))
	} else {
		a.descInput, cmd = a.descInput.Update(msg)
		a.store.Dispatch(store.SetTaskDescription(a.descInput.Value()))
	}
	return a, cmd
}

func (a *App) switchFormFocus() {
	a.formFocus = (a.formFocus + 1) % 2
	if a.formFocus == 0 {
		a.nameInput.Focus()
		a.descInput.Blur()
	} else {
		a.descInput.Focus()
		a.nameInput.Blur()
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
