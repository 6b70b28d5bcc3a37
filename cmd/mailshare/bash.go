package main

import (
	"fmt"
)

const complete = `#! /bin/bash

_mailshare_autocomplete() {
    local cur

    if declare -F _init_completion >/dev/null 2>&1; then
        _init_completion -n "=:" 2>/dev/null
    fi

    if [[ -z "$cur" ]]; then
        cur="${COMP_WORDS[COMP_CWORD]}"
    fi

    local suggestions=$(mailshare complete -- "${COMP_WORDS[@]}")

    if [ $? -eq 0 ] && [ -n "$suggestions" ]; then
        COMPREPLY=( $(compgen -W "$suggestions" -- "$cur") )
    else
        # sentences and text files
        COMPREPLY=( $(compgen -f -- "$cur") )
    fi
}

complete -F _mailshare_autocomplete mailshare
`

func bashCommand(ui UI) error {
	_, err := fmt.Fprint(ui.Out, complete)
	return err
}
