package app

import "taskpad/internal/service"

// Mutation verbs, used to pick the right feedback text and follow-up.
type mutation int

const (
	opCreate mutation = iota
	opDelete
	opToggle
)

// loginResultMsg reports the outcome of a login or signup request.
type loginResultMsg struct {
	username string
	session  service.Session
	signup   bool
	err      error
}

// listsLoadedMsg carries a whole-collection list reload outcome.
type listsLoadedMsg struct {
	lists []service.List
	err   error
}

// listMutatedMsg reports a create or delete against the list collection.
type listMutatedMsg struct {
	op  mutation
	err error
}

// tasksLoadedMsg carries a whole-collection task reload outcome.
type tasksLoadedMsg struct {
	tasks []service.Task
	err   error
}

// taskMutatedMsg reports a create, delete, or done-toggle against the
// task collection.
type taskMutatedMsg struct {
	op  mutation
	err error
}

// accountDeletedMsg reports the outcome of account deletion.
type accountDeletedMsg struct {
	err error
}

// toastExpiredMsg dismisses the toast whose sequence number it carries.
// A stale sequence number means the toast was replaced and the message
// is ignored.
type toastExpiredMsg struct {
	seq int
}
