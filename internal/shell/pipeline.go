package shell

import "fmt"

// Redirect is one parsed output redirection: a target path and the mode it
// should be opened in.
type Redirect struct {
	Path string
	Mode RedirectMode
}

// Stage is one command within a Pipeline: its words plus any redirections
// that apply to it. The command name is Words[0]; Stage is never
// constructed with an empty Words slice.
type Stage struct {
	Words    []string
	Stdin    string // path for "<", set only on the first stage
	HasStdin bool
	Stdout   *Redirect // set only on the last stage
	Stderr   *Redirect // set only on the last stage
}

// Pipeline is a non-empty ordered sequence of Stages joined by "|".
type Pipeline struct {
	Stages []*Stage
}

// Assembler errors (spec.md §4.2's syntax error set).
var (
	ErrEmptyPipeStage       = fmt.Errorf("syntax error near unexpected token `|'")
	ErrEmptyCommand         = fmt.Errorf("syntax error: empty command")
	ErrMissingRedirectTarget = fmt.Errorf("syntax error: missing filename after redirection")
	ErrMultipleRedirections = fmt.Errorf("syntax error: multiple redirections for the same stream")
	ErrRedirectInPlacement  = fmt.Errorf("syntax error: '<' only allowed on the first command in a pipeline")
	ErrRedirectOutPlacement = fmt.Errorf("syntax error: output redirection only allowed on the last command in a pipeline")
)

// Assemble groups a token sequence into a Pipeline: it partitions on Pipe
// tokens, then separates each sub-sequence's command words from its
// redirection directives.
func Assemble(tokens []Token) (*Pipeline, error) {
	groups := splitByPipe(tokens)

	p := &Pipeline{}
	for i, group := range groups {
		if len(group) == 0 {
			return nil, ErrEmptyPipeStage
		}
		stage, err := buildStage(group, i == 0, i == len(groups)-1)
		if err != nil {
			return nil, err
		}
		p.Stages = append(p.Stages, stage)
	}
	return p, nil
}

func splitByPipe(tokens []Token) [][]Token {
	var groups [][]Token
	var current []Token
	for _, tok := range tokens {
		if tok.Kind == TokenPipe {
			groups = append(groups, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}
	return append(groups, current)
}

func buildStage(tokens []Token, isFirst, isLast bool) (*Stage, error) {
	stage := &Stage{}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Kind {
		case TokenWord:
			stage.Words = append(stage.Words, tok.Value)

		case TokenRedirectIn:
			if !isFirst {
				return nil, ErrRedirectInPlacement
			}
			target, err := expectWord(tokens, i)
			if err != nil {
				return nil, err
			}
			if stage.HasStdin {
				return nil, ErrMultipleRedirections
			}
			stage.Stdin = target
			stage.HasStdin = true
			i++

		case TokenRedirectOut:
			if !isLast {
				return nil, ErrRedirectOutPlacement
			}
			target, err := expectWord(tokens, i)
			if err != nil {
				return nil, err
			}
			slot := &stage.Stdout
			if tok.Stream == Stderr {
				slot = &stage.Stderr
			}
			if *slot != nil {
				return nil, ErrMultipleRedirections
			}
			*slot = &Redirect{Path: target, Mode: tok.Mode}
			i++
		}
	}

	if len(stage.Words) == 0 {
		return nil, ErrEmptyCommand
	}
	return stage, nil
}

// expectWord requires tokens[i+1] to be a Word, returning its value.
func expectWord(tokens []Token, i int) (string, error) {
	if i+1 >= len(tokens) || tokens[i+1].Kind != TokenWord {
		return "", ErrMissingRedirectTarget
	}
	return tokens[i+1].Value, nil
}
