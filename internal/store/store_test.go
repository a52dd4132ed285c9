package store_test

import (
	"reflect"
	"testing"

	"taskpad/internal/service"
	"taskpad/internal/store"
)

func TestNewStoreHasSliceDefaults(t *testing.T) {
	s := store.New()
	if !reflect.DeepEqual(s.GetState(), store.DefaultState()) {
		t.Errorf("initial state should be the union of slice defaults, got %#v", s.GetState())
	}
}

func TestDispatchUnknownActionChangesNothing(t *testing.T) {
	s := store.New()
	before := s.GetState()
	s.Dispatch(store.Action{Type: "NOT_A_THING", Payload: 99})
	if !reflect.DeepEqual(s.GetState(), before) {
		t.Errorf("unknown action changed state: %#v", s.GetState())
	}
}

func TestDispatchRoutesToAllSlices(t *testing.T) {
	s := store.New()
	s.Dispatch(store.LoginSuccess("alice", "tok-1"))
	s.Dispatch(store.SetLists([]service.List{{ID: 1, Name: "home"}}))
	s.Dispatch(store.SetTaskListID(1))

	state := s.GetState()
	if state.Login.AccessID != "tok-1" {
		t.Errorf("login slice not updated: %#v", state.Login)
	}
	if len(state.List.Lists) != 1 || state.List.Lists[0].Name != "home" {
		t.Errorf("list slice not updated: %#v", state.List)
	}
	if state.Task.TaskListID != 1 {
		t.Errorf("task slice not updated: %#v", state.Task)
	}
}

func TestSubscribeNotifiesAfterCommit(t *testing.T) {
	s := store.New()

	var seen []string
	unsub := s.Subscribe(func() {
		seen = append(seen, s.GetState().Login.Username)
	})

	s.Dispatch(store.SetUsername("alice"))
	s.Dispatch(store.SetUsername("bob"))
	unsub()
	s.Dispatch(store.SetUsername("carol"))

	want := []string{"alice", "bob"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("expected notifications %v, got %v", want, seen)
	}
}

func TestReentrantDispatchPanics(t *testing.T) {
	s := store.New()
	s.Subscribe(func() {
		defer func() {
			if recover() == nil {
				t.Error("dispatch from a listener should panic")
			}
		}()
		s.Dispatch(store.SetUsername("again"))
	})
	s.Dispatch(store.SetUsername("once"))
}

func TestSelectors(t *testing.T) {
	s := store.New()

	sess := store.SelectSession(s.GetState())
	if sess.Authenticated {
		t.Error("default state should not be authenticated")
	}

	s.Dispatch(store.LoginSuccess("alice", "tok-1"))
	s.Dispatch(store.SetTaskListName("groceries"))
	s.Dispatch(store.SetTaskListID(7))
	s.Dispatch(store.ToggleAddList())
	s.Dispatch(store.SetListName("new list"))

	state := s.GetState()
	sess = store.SelectSession(state)
	if !sess.Authenticated || sess.AccessID != "tok-1" || sess.Username != "alice" {
		t.Errorf("unexpected session selector result: %#v", sess)
	}

	active := store.SelectActiveList(state)
	if active.ID != 7 || active.Name != "groceries" {
		t.Errorf("unexpected active list: %#v", active)
	}

	form := store.SelectListForm(state)
	if !form.Visible || form.Name != "new list" {
		t.Errorf("unexpected list form: %#v", form)
	}
}
