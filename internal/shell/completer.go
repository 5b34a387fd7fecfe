package shell

import (
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/gyonder/shellgo/internal/builtin"
)

// completer provides tab completion: builtin and $PATH executable names for
// the first word of a line, real filesystem entries for later words.
type completer struct{}

// NewCompleter builds the shell's readline.AutoCompleter.
func NewCompleter() readline.AutoCompleter {
	return &completer{}
}

func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])
	words := strings.Fields(lineStr)

	if len(words) == 0 || (len(words) == 1 && !strings.HasSuffix(lineStr, " ")) {
		prefix := ""
		if len(words) == 1 {
			prefix = words[0]
		}
		return c.completeCommand(prefix)
	}

	lastSpace := strings.LastIndex(lineStr, " ")
	partial := ""
	if lastSpace < len(lineStr)-1 {
		partial = lineStr[lastSpace+1:]
	}
	return c.completePath(partial)
}

func (c *completer) completeCommand(prefix string) ([][]rune, int) {
	names := map[string]bool{}
	for _, name := range builtin.Names() {
		names[name] = true
	}
	for _, dir := range strings.Split(os.Getenv("PATH"), ":") {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			names[e.Name()] = true
		}
	}

	var matches []string
	for name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	result := make([][]rune, len(matches))
	for i, m := range matches {
		result[i] = []rune(m[len(prefix):] + " ")
	}
	return result, len(prefix)
}

func (c *completer) completePath(partial string) ([][]rune, int) {
	dir := "."
	prefix := partial

	if idx := strings.LastIndex(partial, "/"); idx >= 0 {
		dir = partial[:idx]
		if dir == "" {
			dir = "/"
		}
		prefix = partial[idx+1:]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0
	}

	var matches []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, prefix) {
			if e.IsDir() {
				name += "/"
			}
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	result := make([][]rune, len(matches))
	for i, m := range matches {
		suffix := m[len(prefix):]
		if !strings.HasSuffix(suffix, "/") {
			suffix += " "
		}
		result[i] = []rune(suffix)
	}
	return result, len(prefix)
}
