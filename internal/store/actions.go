// Package store implements the application state container: three
// independent state slices, a fixed action vocabulary, pure reducers,
// and a store composing them behind dispatch/subscribe/get.
package store

// Type names one state transition. Every transition has exactly one
// globally unique type; reducers ignore types they do not recognize.
type Type string

// Login slice transitions.
const (
	TypeSetUsername  Type = "SET_USERNAME"
	TypeSetPassword  Type = "SET_PASSWORD"
	TypeLoginSuccess Type = "LOGIN_SUCCESS"
	TypeLogout       Type = "LOGOUT"
)

// List slice transitions.
const (
	TypeSetLists           Type = "SET_LISTS"
	TypeToggleAddList      Type = "TOGGLE_ADD_LIST"
	TypeSetListName        Type = "SET_LIST_NAME"
	TypeSetListDescription Type = "SET_LIST_DESCRIPTION"
)

// Task slice transitions.
const (
	TypeSetTasks           Type = "SET_TASKS"
	TypeToggleAddTaskForm  Type = "TOGGLE_ADD_TASK_FORM"
	TypeSetTaskName        Type = "SET_TASK_NAME"
	TypeSetTaskDescription Type = "SET_TASK_DESCRIPTION"
	TypeSetTaskListName    Type = "SET_TASK_LIST_NAME"
	TypeSetTaskListID      Type = "SET_TASK_LIST_ID"
	TypeSetTaskIsDone      Type = "SET_TASK_IS_DONE"
)

// Types lists every action type once. Order matches declaration order.
var Types = []Type{
	TypeSetUsername,
	TypeSetPassword,
	TypeLoginSuccess,
	TypeLogout,
	TypeSetLists,
	TypeToggleAddList,
	TypeSetListName,
	TypeSetListDescription,
	TypeSetTasks,
	TypeToggleAddTaskForm,
	TypeSetTaskName,
	TypeSetTaskDescription,
	TypeSetTaskListName,
	TypeSetTaskListID,
	TypeSetTaskIsDone,
}

// Action is an immutable record describing one requested transition.
type Action struct {
	Type    Type
	Payload any
}

// LoginPayload carries the result of a successful authentication.
type LoginPayload struct {
	Username string
	AccessID string
}

// SetUsername records a keystroke-level change to the username field.
func SetUsername(username string) Action {
	return Action{Type: TypeSetUsername, Payload: username}
}

// SetPassword records a change to the password field.
func SetPassword(password string) Action {
	return Action{Type: TypeSetPassword, Payload: password}
}

// LoginSuccess promotes the session to authenticated.
func LoginSuccess(username, accessID string) Action {
	return Action{Type: TypeLoginSuccess, Payload: LoginPayload{Username: username, AccessID: accessID}}
}

// Logout clears the authentication slice back to its default.
func Logout() Action {
	return Action{Type: TypeLogout}
}

// SetLists replaces the list collection wholesale. The payload is kept
// untyped: the reducer coerces anything that is not a []service.List to
// an empty slice.
func SetLists(payload any) Action {
	return Action{Type: TypeSetLists, Payload: payload}
}

// ToggleAddList flips the list view between browse and compose mode.
func ToggleAddList() Action {
	return Action{Type: TypeToggleAddList}
}

// SetListName records a change to the create-list form's name field.
func SetListName(name string) Action {
	return Action{Type: TypeSetListName, Payload: name}
}

// SetListDescription records a change to the create-list form's description field.
func SetListDescription(description string) Action {
	return Action{Type: TypeSetListDescription, Payload: description}
}

// SetTasks replaces the task collection wholesale. Same coercion
// contract as SetLists.
func SetTasks(payload any) Action {
	return Action{Type: TypeSetTasks, Payload: payload}
}

// ToggleAddTaskForm flips the task view between browse and compose mode.
func ToggleAddTaskForm() Action {
	return Action{Type: TypeToggleAddTaskForm}
}

// SetTaskName records a change to the create-task form's name field.
func SetTaskName(name string) Action {
	return Action{Type: TypeSetTaskName, Payload: name}
}

// SetTaskDescription records a change to the create-task form's description field.
func SetTaskDescription(description string) Action {
	return Action{Type: TypeSetTaskDescription, Payload: description}
}

// SetTaskListName records the name of the list being browsed.
func SetTaskListName(name string) Action {
	return Action{Type: TypeSetTaskListName, Payload: name}
}

// SetTaskListID records the ID of the list being browsed.
func SetTaskListID(id int) Action {
	return Action{Type: TypeSetTaskListID, Payload: id}
}

// SetTaskIsDone records a toggle's target done state. Nothing reads the
// field it writes; it is carried over from the original design as-is.
func SetTaskIsDone(done bool) Action {
	return Action{Type: TypeSetTaskIsDone, Payload: done}
}
