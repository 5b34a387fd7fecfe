package builtin

import (
	"context"
	"strconv"
)

// Exit requests shell termination. With no argument the exit status is 0.
// With a numeric argument, that number (mod 256, matching the OS exit-status
// width) is used. A non-numeric argument is accepted silently and also
// exits with status 0 — there is no diagnostic for it.
func Exit(ctx context.Context, env *Env, args []string) Result {
	if len(args) == 0 {
		return Result{Status: 0, Exit: true}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return Result{Status: 0, Exit: true}
	}
	return Result{Status: n & 0xff, Exit: true}
}
