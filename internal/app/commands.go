package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Orchestration commands. Each issues exactly one backend request and
// feeds the classified outcome back into Update as a message; errors
// never escape past the message handlers. Preconditions are checked by
// the caller before the command is created.

func (a *App) loginCmd(username, password string) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		sess, err := svc.Login(ctx, username, password)
		return loginResultMsg{username: username, session: sess, err: err}
	}
}

func (a *App) signupCmd(username, password string) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		sess, err := svc.Signup(ctx, username, password)
		return loginResultMsg{username: username, session: sess, signup: true, err: err}
	}
}

func (a *App) deleteAccountCmd(accessID, username, password string) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		return accountDeletedMsg{err: svc.DeleteAccount(ctx, accessID, username, password)}
	}
}

func (a *App) loadListsCmd(accessID string) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		lists, err := svc.ListLists(ctx, accessID)
		return listsLoadedMsg{lists: lists, err: err}
	}
}

func (a *App) createListCmd(accessID, name, description string) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		return listMutatedMsg{op: opCreate, err: svc.CreateList(ctx, accessID, name, description)}
	}
}

func (a *App) deleteListCmd(accessID string, id int) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		return listMutatedMsg{op: opDelete, err: svc.DeleteList(ctx, accessID, id)}
	}
}

func (a *App) loadTasksCmd(accessID string, listID int) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		tasks, err := svc.ListTasks(ctx, accessID, listID)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (a *App) createTaskCmd(accessID string, listID int, name, description string) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		return taskMutatedMsg{op: opCreate, err: svc.CreateTask(ctx, accessID, listID, name, description)}
	}
}

func (a *App) deleteTaskCmd(accessID string, id int) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		return taskMutatedMsg{op: opDelete, err: svc.DeleteTask(ctx, accessID, id)}
	}
}

func (a *App) toggleTaskCmd(accessID string, id int, done bool) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		return taskMutatedMsg{op: opToggle, err: svc.SetTaskDone(ctx, accessID, id, done)}
	}
}
