package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/gyonder/shellgo/internal/builtin"
)

// Outcome is the result of running a Pipeline.
type Outcome struct {
	Status int
	// Exit is set when the pipeline's only stage was a builtin that
	// requested shell termination.
	Exit bool
}

// Execute runs a Pipeline to completion. stdin/stdout/stderr are the
// shell's own streams, used by any stage that has no redirection of its
// own.
func Execute(ctx context.Context, p *Pipeline, stdin io.Reader, stdout, stderr io.Writer) Outcome {
	if len(p.Stages) == 1 {
		return executeSingle(ctx, p.Stages[0], stdin, stdout, stderr)
	}
	return executeMulti(ctx, p.Stages, stdin, stdout, stderr)
}

// executeSingle runs a lone stage. A builtin runs in-process: a sole-stage
// builtin's Exit request is honored by the caller.
func executeSingle(ctx context.Context, stage *Stage, stdin io.Reader, stdout, stderr io.Writer) Outcome {
	// The resolver runs before redirections are applied: a not-found
	// external command's diagnostic goes to the shell's own stderr even
	// when the stage redirects stderr to a file, which is left untouched.
	resolved, err := Resolve(stage.Words[0])
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return Outcome{Status: 127}
	}

	in, out, errOut, closers, err := openStreams(stage, stdin, stdout, stderr)
	defer closeAll(closers)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return Outcome{Status: 1}
	}

	if resolved.Kind == KindBuiltin {
		env := builtinEnv(in, out, errOut)
		result := resolved.Handler(ctx, env, stage.Words[1:])
		return Outcome{Status: result.Status, Exit: result.Exit}
	}

	return Outcome{Status: runExternal(ctx, resolved.Path, stage.Words, in, out, errOut)}
}

// executeMulti wires stages together with os.Pipe and runs each stage in
// its own goroutine. A builtin used mid-pipeline runs isolated: its cd/exit
// affect only that goroutine, never the shell, matching ordinary fork
// semantics for an external command in the same position.
func executeMulti(ctx context.Context, stages []*Stage, stdin io.Reader, stdout, stderr io.Writer) Outcome {
	n := len(stages)
	readers := make([]io.Reader, n)
	writers := make([]io.Writer, n)

	readers[0] = stdin
	writers[n-1] = stdout

	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return Outcome{Status: 1}
		}
		writers[i] = w
		readers[i+1] = r
	}

	statuses := make([]int, n)
	var wg sync.WaitGroup
	wg.Add(n)

	for i, stage := range stages {
		i, stage := i, stage
		go func() {
			defer wg.Done()

			resolved, err := Resolve(stage.Words[0])
			if err != nil {
				fmt.Fprintln(stderr, err.Error())
				statuses[i] = 127
				closeStageEnds(i, n, readers, writers)
				return
			}

			in, out, errOut, closers, err := openStreams(stage, readers[i], writers[i], stderr)
			defer closeAll(closers)
			if err != nil {
				fmt.Fprintln(stderr, err.Error())
				statuses[i] = 1
				closeStageEnds(i, n, readers, writers)
				return
			}

			defer closeStageEnds(i, n, readers, writers)

			if resolved.Kind == KindBuiltin {
				env := builtinEnv(in, out, errOut)
				result := resolved.Handler(ctx, env, stage.Words[1:])
				statuses[i] = result.Status
				return
			}

			statuses[i] = runExternal(ctx, resolved.Path, stage.Words, in, out, errOut)
		}()
	}

	wg.Wait()
	return Outcome{Status: statuses[n-1]}
}

// closeStageEnds closes the pipe ends this stage owns: the read end it was
// handed (if it is a pipe, i.e. not the shell's own stdin) and the write
// end it was handed (if it is a pipe). Each descriptor is closed exactly
// once, by its owning stage, once that stage is done with it.
func closeStageEnds(i, n int, readers []io.Reader, writers []io.Writer) {
	if i > 0 {
		if c, ok := readers[i].(io.Closer); ok {
			c.Close()
		}
	}
	if i < n-1 {
		if c, ok := writers[i].(io.Closer); ok {
			c.Close()
		}
	}
}

func runExternal(ctx context.Context, path string, words []string, in io.Reader, out, errOut io.Writer) int {
	cmd := exec.CommandContext(ctx, path, words[1:]...)
	cmd.Args[0] = words[0]
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = errOut

	err := cmd.Run()
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	fmt.Fprintln(errOut, err.Error())
	return 126
}
