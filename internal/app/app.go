// Package app implements the terminal UI: the login, dashboard, and
// preferences views, and the request/response orchestration that feeds
// backend results through the state store.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/config"
	"taskpad/internal/service"
	"taskpad/internal/store"
)

type view int

const (
	viewLogin view = iota
	viewDashboard
	viewPreferences
)

type pane int

const (
	paneLists pane = iota
	paneTasks
)

// Preferences menu entries.
const (
	prefLogout = iota
	prefDeleteAccount
	prefCount
)

// App ties the store, the backend service, and the views together.
// All store dispatches happen inside Update, so commits are strictly
// sequential.
type App struct {
	ctx   context.Context
	svc   service.Service
	store *store.Store
	cfg   *config.Config

	view view
	pane pane

	// login view
	username   textinput.Model
	password   textinput.Model
	loginFocus int
	signupMode bool

	// compose forms (shared between list and task creation; only one
	// is ever visible at a time)
	nameInput textinput.Model
	descInput textinput.Model
	formFocus int

	// preferences view
	prefCursor       int
	confirmingDelete bool
	confirmInput     textinput.Model

	listCursor int
	taskCursor int

	toast    toast
	toastSeq int
	banner   string

	// one outstanding request per call site
	busyAuth  bool
	busyLists bool
	busyTasks bool

	// create success resets the form only after the reload lands,
	// keeping the mutate, reload, reset ordering strict
	resetListForm bool
	resetTaskForm bool

	toastTick func(time.Duration, int) tea.Cmd

	width  int
	height int
}

// New creates the application model with a fresh store.
func New(ctx context.Context, cfg *config.Config, svc service.Service) *App {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 128

	descInput := textinput.New()
	descInput.Placeholder = "description"
	descInput.CharLimit = 256

	confirmInput := textinput.New()
	confirmInput.Placeholder = "password to confirm"
	confirmInput.EchoMode = textinput.EchoPassword

	return &App{
		ctx:          ctx,
		svc:          svc,
		store:        store.New(),
		cfg:          cfg,
		view:         viewLogin,
		username:     username,
		password:     password,
		nameInput:    nameInput,
		descInput:    descInput,
		confirmInput: confirmInput,
		toastTick:    defaultToastTick,
	}
}

// Store exposes the state container.
func (a *App) Store() *store.Store {
	return a.store
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case toastExpiredMsg:
		if msg.seq == a.toastSeq {
			a.toast.visible = false
		}
		return a, nil

	case loginResultMsg:
		return a.handleLoginResult(msg)

	case listsLoadedMsg:
		return a.handleListsLoaded(msg)

	case listMutatedMsg:
		return a.handleListMutated(msg)

	case tasksLoadedMsg:
		return a.handleTasksLoaded(msg)

	case taskMutatedMsg:
		return a.handleTaskMutated(msg)

	case accountDeletedMsg:
		return a.handleAccountDeleted(msg)

	case tea.KeyMsg:
		switch a.view {
		case viewLogin:
			return a.updateLogin(msg)
		case viewDashboard:
			return a.updateDashboard(msg)
		case viewPreferences:
			return a.updatePreferences(msg)
		}
	}
	return a, nil
}

func (a *App) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	a.busyAuth = false
	if msg.err != nil {
		return a, a.fail(msg.err.Error())
	}

	a.store.Dispatch(store.LoginSuccess(msg.username, msg.session.AccessID))
	a.store.Dispatch(store.SetPassword(""))
	a.password.SetValue("")
	a.view = viewDashboard
	a.pane = paneLists
	a.banner = ""

	greeting := "Welcome back, " + msg.username
	if msg.signup {
		greeting = "Account created. Welcome, " + msg.username
	}

	a.busyLists = true
	return a, tea.Batch(
		a.showToast(greeting, false),
		a.loadListsCmd(msg.session.AccessID),
	)
}

func (a *App) handleListsLoaded(msg listsLoadedMsg) (tea.Model, tea.Cmd) {
	a.busyLists = false
	if msg.err != nil {
		return a, a.fail(msg.err.Error())
	}

	a.store.Dispatch(store.SetLists(msg.lists))
	a.clampCursors()

	if a.resetListForm {
		a.resetListForm = false
		a.resetComposeForm()
		if store.SelectListForm(a.store.GetState()).Visible {
			a.store.Dispatch(store.ToggleAddList())
		}
		a.store.Dispatch(store.SetListName(""))
		a.store.Dispatch(store.SetListDescription(""))
	}
	return a, nil
}

func (a *App) handleListMutated(msg listMutatedMsg) (tea.Model, tea.Cmd) {
	a.busyLists = false
	if msg.err != nil {
		return a, a.fail(msg.err.Error())
	}

	text := "List deleted"
	if msg.op == opCreate {
		text = "List created"
		a.resetListForm = true
	}

	// Reconcile by reloading the whole collection rather than patching.
	a.busyLists = true
	sess := store.SelectSession(a.store.GetState())
	return a, tea.Batch(
		a.showToast(text, false),
		a.loadListsCmd(sess.AccessID),
	)
}

func (a *App) handleTasksLoaded(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	a.busyTasks = false
	if msg.err != nil {
		return a, a.fail(msg.err.Error())
	}

	a.store.Dispatch(store.SetTasks(msg.tasks))
	a.clampCursors()

	if a.resetTaskForm {
		a.resetTaskForm = false
		a.resetComposeForm()
		if store.SelectTaskForm(a.store.GetState()).Visible {
			a.store.Dispatch(store.ToggleAddTaskForm())
		}
		a.store.Dispatch(store.SetTaskName(""))
		a.store.Dispatch(store.SetTaskDescription(""))
	}
	return a, nil
}

func (a *App) handleTaskMutated(msg taskMutatedMsg) (tea.Model, tea.Cmd) {
	a.busyTasks = false
	if msg.err != nil {
		return a, a.fail(msg.err.Error())
	}

	var text string
	switch msg.op {
	case opCreate:
		text = "Task created"
		a.resetTaskForm = true
	case opDelete:
		text = "Task deleted"
	case opToggle:
		text = "Task updated"
	}

	state := a.store.GetState()
	sess := store.SelectSession(state)
	active := store.SelectActiveList(state)

	a.busyTasks = true
	return a, tea.Batch(
		a.showToast(text, false),
		a.loadTasksCmd(sess.AccessID, active.ID),
	)
}

func (a *App) handleAccountDeleted(msg accountDeletedMsg) (tea.Model, tea.Cmd) {
	a.busyAuth = false
	a.confirmingDelete = false
	a.confirmInput.SetValue("")
	if msg.err != nil {
		return a, a.fail(msg.err.Error())
	}

	a.store.Dispatch(store.Logout())
	a.store.Dispatch(store.SetLists(nil))
	a.store.Dispatch(store.SetTasks(nil))
	a.view = viewLogin
	a.username.SetValue("")
	a.password.SetValue("")
	return a, a.showToast("Account deleted", false)
}

// clampCursors keeps the selection inside the (possibly shrunk)
// collections after a reload.
func (a *App) clampCursors() {
	state := a.store.GetState()
	if n := len(store.SelectLists(state)); a.listCursor >= n {
		a.listCursor = max(0, n-1)
	}
	if n := len(store.SelectTasks(state)); a.taskCursor >= n {
		a.taskCursor = max(0, n-1)
	}
}

func (a *App) resetComposeForm() {
	a.nameInput.SetValue("")
	a.descInput.SetValue("")
	a.nameInput.Blur()
	a.descInput.Blur()
	a.formFocus = 0
}
