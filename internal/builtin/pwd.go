package builtin

import (
	"context"
	"fmt"
	"os"
)

// Pwd prints the current working directory, read fresh from the OS on
// every call rather than from any cached session state.
func Pwd(ctx context.Context, env *Env, args []string) Result {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(env.Stderr, "pwd: %v\n", err)
		return Result{Status: 1}
	}
	fmt.Fprintln(env.Stdout, dir)
	return Result{Status: 0}
}
