package store

import "taskpad/internal/service"

// TaskState is the task slice: the loaded collection of the list being
// browsed, the create-form's transient fields, and the identity of that
// list (passed in explicitly when the user navigates, never read from
// the list slice).
type TaskState struct {
	Tasks           []service.Task
	ShowAddTaskForm bool
	Name            string
	Description     string
	TaskListName    string
	TaskListID      int

	// IsDone is written by SET_TASK_IS_DONE and read by nothing.
	// Kept to match the original state shape; likely a latent defect.
	IsDone bool
}

// DefaultTaskState returns the slice's initial state.
func DefaultTaskState() TaskState {
	return TaskState{Tasks: []service.Task{}}
}

// TaskReducer computes the next task state.
func TaskReducer(state TaskState, action Action) TaskState {
	switch action.Type {
	case TypeSetTasks:
		state.Tasks = coerceTasks(action.Payload)
		return state
	case TypeToggleAddTaskForm:
		state.ShowAddTaskForm = !state.ShowAddTaskForm
		return state
	case TypeSetTaskName:
		name, _ := action.Payload.(string)
		state.Name = name
		return state
	case TypeSetTaskDescription:
		description, _ := action.Payload.(string)
		state.Description = description
		return state
	case TypeSetTaskListName:
		name, _ := action.Payload.(string)
		state.TaskListName = name
		return state
	case TypeSetTaskListID:
		id, _ := action.Payload.(int)
		state.TaskListID = id
		return state
	case TypeSetTaskIsDone:
		done, _ := action.Payload.(bool)
		state.IsDone = done
		return state
	default:
		return state
	}
}

func coerceTasks(payload any) []service.Task {
	if tasks, ok := payload.([]service.Task); ok && tasks != nil {
		return tasks
	}
	return []service.Task{}
}
