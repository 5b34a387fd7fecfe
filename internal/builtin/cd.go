package builtin

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Cd changes the process's working directory. With no argument, or with
// exactly "~", it changes to $HOME. A leading "~/" is expanded against
// $HOME as well; $HOME is read fresh on every call, never cached.
func Cd(ctx context.Context, env *Env, args []string) Result {
	target := "~"
	if len(args) > 0 {
		target = args[0]
	}

	if target == "~" || strings.HasPrefix(target, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			fmt.Fprintln(env.Stderr, "cd: HOME not set")
			return Result{Status: 1}
		}
		if target == "~" {
			target = home
		} else {
			target = home + target[1:]
		}
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(env.Stderr, "cd: %s: No such file or directory\n", target)
		return Result{Status: 1}
	}
	return Result{Status: 0}
}
