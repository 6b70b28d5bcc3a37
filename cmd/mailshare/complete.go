package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/mailshare/render"
)

var commands = []string{
	"classify",
	"doc",
	"import",
	"stat",
	"repl",
	"version",
	"bash",
	"help",
}

var commandFlags = map[string][]string{
	"classify": {"-o", "-format", "-no-score", "-uniform", "-w", "-batch", "-config"},
	"doc":      {"-d", "-format", "-no-score", "-relevant", "-config"},
	"import":   {"-from", "-to"},
	"stat":     {"-config"},
	"repl":     {"-no-score", "-config"},
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	for _, c := range getCompletions(args) {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

// getCompletions returns the candidates for the last word of args.
// args[0] is the binary name (COMP_WORDS[0]).
func getCompletions(args []string) []string {
	if len(args) < 2 {
		return nil
	}

	commandIndex := 1
	cursorIndex := len(args) - 1
	lastWord := args[cursorIndex]

	if cursorIndex == commandIndex {
		return withPrefix(commands, lastWord)
	}

	if args[cursorIndex-1] == "-format" {
		return withPrefix(render.SupportedFormats(), lastWord)
	}

	if strings.HasPrefix(lastWord, "-") {
		return withPrefix(commandFlags[args[commandIndex]], lastWord)
	}

	if args[commandIndex] == "help" && cursorIndex == commandIndex+1 {
		return withPrefix(commands, lastWord)
	}

	return nil
}

func withPrefix(candidates []string, prefix string) []string {
	var completions []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			completions = append(completions, c)
		}
	}
	return completions
}
