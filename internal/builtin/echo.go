package builtin

import (
	"context"
	"fmt"
	"strings"
)

// Echo writes its arguments to stdout, space-separated, followed by a
// newline. No backslash or flag interpretation: each argument is printed
// exactly as the tokenizer delivered it.
func Echo(ctx context.Context, env *Env, args []string) Result {
	fmt.Fprintln(env.Stdout, strings.Join(args, " "))
	return Result{Status: 0}
}
