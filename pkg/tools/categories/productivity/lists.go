package productivity

import "sync"

// NoteList is an in-memory collection of free-form notes. The list is
// shared between the note tool and anything else that wants to display
// it, so all methods are safe for concurrent use.
type NoteList struct {
	mu    sync.Mutex
	notes []string
}

// NewNoteList creates an empty note list.
func NewNoteList() *NoteList {
	return &NoteList{}
}

// Add appends a note to the end of the list.
func (l *NoteList) Add(note string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notes = append(l.notes, note)
}

// Remove deletes the first note that exactly matches the given text and
// reports whether anything was removed.
func (l *NoteList) Remove(note string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, n := range l.notes {
		if n == note {
			l.notes = append(l.notes[:i], l.notes[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the notes in insertion order.
func (l *NoteList) Items() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]string, len(l.notes))
	copy(items, l.notes)
	return items
}

// Clear removes every note and returns how many were removed.
func (l *NoteList) Clear() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.notes)
	l.notes = nil
	return n
}

// TodoItem is a single task and its completion state.
type TodoItem struct {
	Task string `json:"task"`
	Done bool   `json:"done"`
}

// TodoList is an in-memory task list shared between the to-do tool and
// anything else that wants to display it. All methods are safe for
// concurrent use.
type TodoList struct {
	mu    sync.Mutex
	items []TodoItem
}

// NewTodoList creates an empty to-do list.
func NewTodoList() *TodoList {
	return &TodoList{}
}

// Add appends a task and reports whether it was added. A task whose
// text matches an existing entry is rejected so that complete and
// remove stay unambiguous.
func (l *TodoList) Add(task string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, item := range l.items {
		if item.Task == task {
			return false
		}
	}
	l.items = append(l.items, TodoItem{Task: task})
	return true
}

// Complete marks the first task matching the given text as done and
// reports whether a task was found.
func (l *TodoList) Complete(task string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].Task == task {
			l.items[i].Done = true
			return true
		}
	}
	return false
}

// Remove deletes the first task matching the given text and reports
// whether a task was found.
func (l *TodoList) Remove(task string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].Task == task {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the tasks in insertion order.
func (l *TodoList) Items() []TodoItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]TodoItem, len(l.items))
	copy(items, l.items)
	return items
}

// Clear drops every task and returns how many were removed.
func (l *TodoList) Clear() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.items)
	l.items = nil
	return n
}
