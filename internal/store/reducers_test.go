package store_test

import (
	"reflect"
	"testing"

	"taskpad/internal/service"
	"taskpad/internal/store"
)

func TestLoginReducerDefaults(t *testing.T) {
	got := store.LoginReducer(store.DefaultLoginState(), store.Action{Type: "UNKNOWN"})
	if !reflect.DeepEqual(got, store.DefaultLoginState()) {
		t.Errorf("unknown action should return default state, got %#v", got)
	}
}

func TestLoginReducerFields(t *testing.T) {
	state := store.DefaultLoginState()

	state = store.LoginReducer(state, store.SetUsername("alice"))
	if state.Username != "alice" {
		t.Errorf("expected username alice, got %q", state.Username)
	}
	if state.AccessID != "" || state.Password != "" {
		t.Errorf("SetUsername touched other fields: %#v", state)
	}

	state = store.LoginReducer(state, store.SetPassword("secret"))
	if state.Password != "secret" {
		t.Errorf("expected password secret, got %q", state.Password)
	}
	if state.Username != "alice" {
		t.Errorf("SetPassword touched username: %q", state.Username)
	}
}

func TestLoginReducerLoginSuccess(t *testing.T) {
	got := store.LoginReducer(store.DefaultLoginState(), store.LoginSuccess("alice", "tok-1"))
	if got.AccessID != "tok-1" || got.Username != "alice" {
		t.Errorf("expected {accessID tok-1, username alice}, got %#v", got)
	}
}

func TestLoginReducerLogout(t *testing.T) {
	state := store.LoginState{AccessID: "tok-1", Username: "alice", Password: "secret"}
	got := store.LoginReducer(state, store.Logout())
	if !reflect.DeepEqual(got, store.DefaultLoginState()) {
		t.Errorf("logout should reset to default, got %#v", got)
	}
}

func TestListReducerDefaults(t *testing.T) {
	def := store.DefaultListState()
	if def.Lists == nil || len(def.Lists) != 0 {
		t.Errorf("default list collection should be empty non-nil, got %#v", def.Lists)
	}
	got := store.ListReducer(def, store.Action{Type: "UNKNOWN"})
	if !reflect.DeepEqual(got, def) {
		t.Errorf("unknown action should return default state, got %#v", got)
	}
}

func TestListReducerSetListsCoercion(t *testing.T) {
	cases := []struct {
		name    string
		payload any
	}{
		{"nil", nil},
		{"object", map[string]any{"detail": "error"}},
		{"string", "oops"},
		{"number", 42},
		{"nil typed slice", []service.List(nil)},
	}
	for _, tc := range cases {
		got := store.ListReducer(store.DefaultListState(), store.SetLists(tc.payload))
		if got.Lists == nil || len(got.Lists) != 0 {
			t.Errorf("%s payload should coerce to empty slice, got %#v", tc.name, got.Lists)
		}
	}
}

func TestListReducerSetListsProperSequence(t *testing.T) {
	lists := []service.List{
		{ID: 2, Name: "work"},
		{ID: 1, Name: "home"},
	}
	got := store.ListReducer(store.DefaultListState(), store.SetLists(lists))
	if !reflect.DeepEqual(got.Lists, lists) {
		t.Errorf("proper sequence should be kept in order, got %#v", got.Lists)
	}
}

func TestListReducerFormFields(t *testing.T) {
	state := store.DefaultListState()

	state = store.ListReducer(state, store.ToggleAddList())
	if !state.ShowAddList {
		t.Error("first toggle should enter compose mode")
	}
	state = store.ListReducer(state, store.ToggleAddList())
	if state.ShowAddList {
		t.Error("second toggle should return to browse mode")
	}

	state = store.ListReducer(state, store.SetListName("groceries"))
	state = store.ListReducer(state, store.SetListDescription("weekly run"))
	if state.Name != "groceries" || state.Description != "weekly run" {
		t.Errorf("form fields not set: %#v", state)
	}
}

func TestTaskReducerDefaults(t *testing.T) {
	def := store.DefaultTaskState()
	got := store.TaskReducer(def, store.Action{Type: "UNKNOWN"})
	if !reflect.DeepEqual(got, def) {
		t.Errorf("unknown action should return default state, got %#v", got)
	}
}

func TestTaskReducerSetTasksCoercion(t *testing.T) {
	for _, payload := range []any{nil, "oops", map[string]any{}, 3.14} {
		got := store.TaskReducer(store.DefaultTaskState(), store.SetTasks(payload))
		if got.Tasks == nil || len(got.Tasks) != 0 {
			t.Errorf("payload %#v should coerce to empty slice, got %#v", payload, got.Tasks)
		}
	}

	tasks := []service.Task{{ID: 1, Name: "milk"}, {ID: 2, Name: "eggs"}}
	got := store.TaskReducer(store.DefaultTaskState(), store.SetTasks(tasks))
	if !reflect.DeepEqual(got.Tasks, tasks) {
		t.Errorf("proper sequence should be kept in order, got %#v", got.Tasks)
	}
}

func TestTaskReducerActiveList(t *testing.T) {
	state := store.DefaultTaskState()
	state = store.TaskReducer(state, store.SetTaskListName("groceries"))
	state = store.TaskReducer(state, store.SetTaskListID(7))
	if state.TaskListName != "groceries" || state.TaskListID != 7 {
		t.Errorf("active list identity not recorded: %#v", state)
	}
}

func TestTaskReducerIsDoneField(t *testing.T) {
	state := store.TaskReducer(store.DefaultTaskState(), store.SetTaskIsDone(true))
	if !state.IsDone {
		t.Error("SET_TASK_IS_DONE should write the IsDone field")
	}
	// Only the targeted field changes.
	state.IsDone = false
	if !reflect.DeepEqual(state, store.DefaultTaskState()) {
		t.Errorf("SET_TASK_IS_DONE touched other fields: %#v", state)
	}
}

func TestReducersIgnoreForeignSliceActions(t *testing.T) {
	login := store.LoginReducer(store.DefaultLoginState(), store.SetListName("x"))
	if !reflect.DeepEqual(login, store.DefaultLoginState()) {
		t.Errorf("login slice reacted to a list action: %#v", login)
	}
	list := store.ListReducer(store.DefaultListState(), store.SetTaskName("x"))
	if !reflect.DeepEqual(list, store.DefaultListState()) {
		t.Errorf("list slice reacted to a task action: %#v", list)
	}
	task := store.TaskReducer(store.DefaultTaskState(), store.SetUsername("x"))
	if !reflect.DeepEqual(task, store.DefaultTaskState()) {
		t.Errorf("task slice reacted to a login action: %#v", task)
	}
}
