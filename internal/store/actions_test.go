package store_test

import (
	"reflect"
	"testing"

	"taskpad/internal/store"
)

func TestActionTypesAreUnique(t *testing.T) {
	seen := make(map[store.Type]bool)
	for _, typ := range store.Types {
		if seen[typ] {
			t.Errorf("duplicate action type: %s", typ)
		}
		seen[typ] = true
	}
	if len(seen) != 15 {
		t.Errorf("expected 15 distinct action types, got %d", len(seen))
	}
}

func TestConstructorsAreDeterministic(t *testing.T) {
	pairs := [][2]store.Action{
		{store.SetUsername("alice"), store.SetUsername("alice")},
		{store.SetPassword("secret"), store.SetPassword("secret")},
		{store.LoginSuccess("alice", "tok-1"), store.LoginSuccess("alice", "tok-1")},
		{store.Logout(), store.Logout()},
		{store.ToggleAddList(), store.ToggleAddList()},
		{store.SetListName("groceries"), store.SetListName("groceries")},
		{store.SetListDescription("weekly"), store.SetListDescription("weekly")},
		{store.ToggleAddTaskForm(), store.ToggleAddTaskForm()},
		{store.SetTaskName("milk"), store.SetTaskName("milk")},
		{store.SetTaskDescription("2L"), store.SetTaskDescription("2L")},
		{store.SetTaskListName("groceries"), store.SetTaskListName("groceries")},
		{store.SetTaskListID(7), store.SetTaskListID(7)},
		{store.SetTaskIsDone(true), store.SetTaskIsDone(true)},
	}
	for _, p := range pairs {
		if !reflect.DeepEqual(p[0], p[1]) {
			t.Errorf("constructor for %s is not deterministic: %#v vs %#v", p[0].Type, p[0], p[1])
		}
	}
}

func TestConstructorTypeMatchesConstant(t *testing.T) {
	cases := []struct {
		action store.Action
		want   store.Type
	}{
		{store.SetUsername("a"), store.TypeSetUsername},
		{store.SetPassword("a"), store.TypeSetPassword},
		{store.LoginSuccess("a", "b"), store.TypeLoginSuccess},
		{store.Logout(), store.TypeLogout},
		{store.SetLists(nil), store.TypeSetLists},
		{store.ToggleAddList(), store.TypeToggleAddList},
		{store.SetListName("a"), store.TypeSetListName},
		{store.SetListDescription("a"), store.TypeSetListDescription},
		{store.SetTasks(nil), store.TypeSetTasks},
		{store.ToggleAddTaskForm(), store.TypeToggleAddTaskForm},
		{store.SetTaskName("a"), store.TypeSetTaskName},
		{store.SetTaskDescription("a"), store.TypeSetTaskDescription},
		{store.SetTaskListName("a"), store.TypeSetTaskListName},
		{store.SetTaskListID(1), store.TypeSetTaskListID},
		{store.SetTaskIsDone(true), store.TypeSetTaskIsDone},
	}
	for _, tc := range cases {
		if tc.action.Type != tc.want {
			t.Errorf("expected type %s, got %s", tc.want, tc.action.Type)
		}
	}
}
