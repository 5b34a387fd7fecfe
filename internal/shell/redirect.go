package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/gyonder/shellgo/internal/builtin"
)

// openStreams resolves a Stage's redirections into concrete in/out/err
// streams, falling back to the streams the pipeline wired for this stage's
// position (the shell's own streams for a single stage, or the adjoining
// pipe ends in a multi-stage pipeline). Any files it opens are returned as
// closers for the caller to close once the stage is done.
func openStreams(stage *Stage, in io.Reader, out, errOut io.Writer) (io.Reader, io.Writer, io.Writer, []io.Closer, error) {
	var closers []io.Closer

	if stage.HasStdin {
		f, err := os.Open(stage.Stdin)
		if err != nil {
			return nil, nil, nil, closers, fmt.Errorf("%s: No such file or directory", stage.Stdin)
		}
		closers = append(closers, f)
		in = f
	}

	if stage.Stdout != nil {
		f, err := openRedirectTarget(stage.Stdout)
		if err != nil {
			return nil, nil, nil, closers, err
		}
		closers = append(closers, f)
		out = f
	}

	if stage.Stderr != nil {
		f, err := openRedirectTarget(stage.Stderr)
		if err != nil {
			return nil, nil, nil, closers, err
		}
		closers = append(closers, f)
		errOut = f
	}

	return in, out, errOut, closers, nil
}

func openRedirectTarget(r *Redirect) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if r.Mode == Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(r.Path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", r.Path, err)
	}
	return f, nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}

func builtinEnv(in io.Reader, out, errOut io.Writer) *builtin.Env {
	return &builtin.Env{Stdin: in, Stdout: out, Stderr: errOut}
}
