package builtin

import (
	"context"
	"fmt"

	"github.com/gyonder/shellgo/internal/resolve"
)

// Type reports how a command word would be classified: builtin, an
// executable found on $PATH, or not found.
func Type(ctx context.Context, env *Env, args []string) Result {
	if len(args) == 0 {
		return Result{Status: 0}
	}

	status := 0
	for _, name := range args {
		switch {
		case IsBuiltin(name):
			fmt.Fprintf(env.Stdout, "%s is a shell builtin\n", name)
		default:
			if path, ok := resolve.Lookup(name); ok {
				fmt.Fprintf(env.Stdout, "%s is %s\n", name, path)
			} else {
				fmt.Fprintf(env.Stderr, "%s: not found\n", name)
				status = 1
			}
		}
	}
	return Result{Status: status}
}
