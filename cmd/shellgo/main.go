// Command shellgo is a small interactive POSIX-flavored shell: it reads
// commands from a line editor, builds pipelines, and executes built-in or
// external commands. It takes no command-line flags.
package main

import (
	"fmt"
	"os"

	"github.com/gyonder/shellgo/internal/config"
	"github.com/gyonder/shellgo/internal/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellgo: %v\n", err)
		os.Exit(1)
	}

	sh, err := shell.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellgo: %v\n", err)
		os.Exit(1)
	}

	os.Exit(sh.Run())
}
