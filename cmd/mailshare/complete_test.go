package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetCompletions(t *testing.T) {
	cases := []struct {
		args []string
		want []string
	}{
		{[]string{"mailshare"}, nil},
		{[]string{"mailshare", ""}, commands},
		{[]string{"mailshare", "st"}, []string{"stat"}},
		{[]string{"mailshare", "classify", "-f"}, []string{"-format"}},
		{[]string{"mailshare", "classify", "-format", "j"}, []string{"json"}},
		{[]string{"mailshare", "doc", "-r"}, []string{"-relevant"}},
		{[]string{"mailshare", "help", "re"}, []string{"repl"}},
		{[]string{"mailshare", "classify", "emails.txt"}, nil},
	}

	for _, c := range cases {
		got := getCompletions(c.args)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", c.args, diff)
		}
	}
}

func TestBashCommand(t *testing.T) {
	got := run(t, "bash")
	if !strings.Contains(got, "complete -F _mailshare_autocomplete mailshare") {
		t.Fatalf("unexpected script %q", got)
	}

	got = run(t, "complete", "--", "mailshare", "ver")
	if got != "version\n" {
		t.Fatalf("got %q", got)
	}
}
