package store

import "taskpad/internal/service"

// ListState is the list slice: the loaded collection plus the
// create-form's transient fields.
type ListState struct {
	Lists       []service.List
	ShowAddList bool
	Name        string
	Description string
}

// DefaultListState returns the slice's initial state. Lists starts as
// an empty, non-nil slice so the collection invariant holds from the
// first read.
func DefaultListState() ListState {
	return ListState{Lists: []service.List{}}
}

// ListReducer computes the next list state.
func ListReducer(state ListState, action Action) ListState {
	switch action.Type {
	case TypeSetLists:
		state.Lists = coerceLists(action.Payload)
		return state
	case TypeToggleAddList:
		state.ShowAddList = !state.ShowAddList
		return state
	case TypeSetListName:
		name, _ := action.Payload.(string)
		state.Name = name
		return state
	case TypeSetListDescription:
		description, _ := action.Payload.(string)
		state.Description = description
		return state
	default:
		return state
	}
}

// coerceLists guards the collection invariant: any payload that is not
// already a list sequence collapses to an empty one.
func coerceLists(payload any) []service.List {
	if lists, ok := payload.([]service.List); ok && lists != nil {
		return lists
	}
	return []service.List{}
}
