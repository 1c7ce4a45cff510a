// Serial command surface
//
// A Registry maps command names to handlers. A Remote polls a serial
// port for newline-terminated lines and dispatches them against a
// Registry, so a firmware build exposes exactly the commands its
// assembler registered.
package remote

import (
	"errors"

	"tickwork/core"
)

var (
	// ErrUnknownCommand is returned for a line whose first word matches
	// no registered command
	ErrUnknownCommand = errors.New("remote: unknown command")
	// ErrDuplicateCommand is returned when a name is registered twice
	ErrDuplicateCommand = errors.New("remote: duplicate command")
)

// Handler executes one command invocation. args holds the words after
// the command name.
type Handler func(args []string) error

// Entry describes one registered command for dictionary listings
type Entry struct {
	ID   uint32
	Name string
	Help string
}

type command struct {
	entry   Entry
	handler Handler
}

// Registry holds the command dictionary for one remote surface
type Registry struct {
	ids      core.Ordinal
	commands []command
}

// NewRegistry returns an empty command dictionary
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a named command. Names are matched exactly against the
// first word of each received line.
func (r *Registry) Register(name, help string, h Handler) error {
	if r.find(name) >= 0 {
		return ErrDuplicateCommand
	}
	r.commands = append(r.commands, command{
		entry:   Entry{ID: r.ids.Next(), Name: name, Help: help},
		handler: h,
	})
	return nil
}

// MustRegister is Register for assembly-time tables, panicking on a
// duplicate name.
func (r *Registry) MustRegister(name, help string, h Handler) {
	if err := r.Register(name, help, h); err != nil {
		panic(err)
	}
}

// Dispatch runs the handler named by fields[0] with the remaining words
func (r *Registry) Dispatch(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	i := r.find(fields[0])
	if i < 0 {
		return ErrUnknownCommand
	}
	return r.commands[i].handler(fields[1:])
}

// Dictionary returns the registered commands in registration order
func (r *Registry) Dictionary() []Entry {
	out := make([]Entry, len(r.commands))
	for i, c := range r.commands {
		out[i] = c.entry
	}
	return out
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.commands)
}

func (r *Registry) find(name string) int {
	for i := range r.commands {
		if r.commands[i].entry.Name == name {
			return i
		}
	}
	return -1
}
