// Package application wraps a loop.Loop together with the arguments passed
// to the process at start up. It is the conventional embedding point for
// hosts: keep an Application, implement loop.Updater, and call Run.
package application

import (
	"github.com/dbosnich/simple-application/loop"
)

// Application is an update loop that stores the program arguments as
// received at process start. The arguments are held as-is, read-only, with
// no validation or parsing.
type Application struct {
	*loop.Loop

	args []string
}

// New returns an Application holding the given arguments, typically os.Args.
func New(args []string) *Application {
	return &Application{
		Loop: loop.New(),
		args: args,
	}
}

// ArgCount returns the count of arguments passed to the program at start up.
func (a *Application) ArgCount() int {
	return len(a.args)
}

// ArgValues returns the arguments passed to the program at start up.
func (a *Application) ArgValues() []string {
	return a.args
}
