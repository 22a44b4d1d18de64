package profile

import "crypto/rand"

// Todo is a single item on the user's to-do list.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// AddTodo appends a new incomplete item and returns the updated list.
func AddTodo(list []Todo, text string) []Todo {
	return append(list, Todo{ID: rand.Text(), Text: text, Completed: false})
}

// RemoveTodo deletes the item with the given ID, if present.
func RemoveTodo(list []Todo, id string) []Todo {
	filtered := make([]Todo, 0, len(list))
	for _, todo := range list {
		if todo.ID != id {
			filtered = append(filtered, todo)
		}
	}
	return filtered
}

// ToggleTodo flips the completion state of the item with the given ID.
func ToggleTodo(list []Todo, id string) []Todo {
	updated := make([]Todo, len(list))
	for i, todo := range list {
		if todo.ID == id {
			todo.Completed = !todo.Completed
		}
		updated[i] = todo
	}
	return updated
}
