package shell

import (
	"fmt"

	"github.com/gyonder/shellgo/internal/builtin"
	"github.com/gyonder/shellgo/internal/resolve"
)

// Kind names how a command word was classified by Resolve.
type Kind int

const (
	KindBuiltin Kind = iota
	KindExternal
)

// Resolved is the outcome of resolving a Stage's leading word.
type Resolved struct {
	Kind    Kind
	Handler builtin.Handler // set when Kind == KindBuiltin
	Path    string          // set when Kind == KindExternal
}

// ErrCommandNotFound is returned when a command word is neither a builtin
// nor found on $PATH.
type ErrCommandNotFound struct {
	Name string
}

func (e *ErrCommandNotFound) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}

// Resolve classifies a command word as a builtin or an external executable.
func Resolve(name string) (*Resolved, error) {
	if h, ok := builtin.Get(name); ok {
		return &Resolved{Kind: KindBuiltin, Handler: h}, nil
	}
	if path, ok := resolve.Lookup(name); ok {
		return &Resolved{Kind: KindExternal, Path: path}, nil
	}
	return nil, &ErrCommandNotFound{Name: name}
}
