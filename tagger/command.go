package tagger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	sent "github.com/revelaction/mailshare/sentence"
	"golang.org/x/sync/errgroup"
)

// maxLine bounds a single response line of the tagging program.
const maxLine = 4 * 1024 * 1024

// Command tags texts with an external program, typically a spaCy script
// (see scripts/tag.py).
//
// The program reads one JSON request per line on stdin
//
//	{"id": 3, "text": "Can I share your email?"}
//
// and writes one JSON response per line on stdout, in any order
//
//	{"id": 3, "tokens": [{"text": "Can", "lemma": "can", "tag": "MD", "pos": "AUX", ...}, ...]}
//
// Each batch of texts is handed to its own process. Up to Procs processes
// run at the same time.
type Command struct {
	Path string
	Args []string

	// Env is appended to the environment of the current process.
	Env []string

	// Procs is the maximum number of concurrent processes.
	Procs int
}

var _ Tagger = (*Command)(nil)

// NewCommand builds a Command from an argv style slice.
func NewCommand(argv []string, procs int) (*Command, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, fmt.Errorf("%w: empty command", ErrCommand)
	}

	return &Command{Path: argv[0], Args: argv[1:], Procs: procs}, nil
}

type request struct {
	Id   int    `json:"id"`
	Text string `json:"text"`
}

type response struct {
	Id     int          `json:"id"`
	Tokens []sent.Token `json:"tokens"`
}

func (c *Command) Tag(ctx context.Context, texts []string, size int) ([][]sent.Token, error) {
	n := batchSize(size)
	out := make([][]sent.Token, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Procs, 1))

	for start := 0; start < len(texts); start += n {
		start := start
		end := min(start+n, len(texts))
		g.Go(func() error {
			return c.run(ctx, start, texts[start:end], out[start:end])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// run tags one batch. offset is the position of the batch in the whole
// input, used as the request id base.
func (c *Command) run(ctx context.Context, offset int, texts []string, out [][]sent.Token) error {
	var stdin bytes.Buffer
	enc := json.NewEncoder(&stdin)
	for i, text := range texts {
		if err := enc.Encode(request{Id: offset + i, Text: text}); err != nil {
			return err
		}
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	cmd.Stdin = &stdin
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCommand, c.Path, err)
	}

	abort := func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}

	seen := 0
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), maxLine)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var resp response
		if err := json.Unmarshal(line, &resp); err != nil {
			abort()
			return fmt.Errorf("%w: bad response line: %v", ErrCommand, err)
		}

		i := resp.Id - offset
		if i < 0 || i >= len(texts) {
			abort()
			return fmt.Errorf("%w: response id %d outside batch [%d, %d)", ErrCommand, resp.Id, offset, offset+len(texts))
		}

		if out[i] == nil {
			seen++
		}
		explain(resp.Tokens)
		out[i] = nonNil(resp.Tokens)
	}

	// the program may still be writing, Wait would block on the pipe
	if err := scanner.Err(); err != nil {
		abort()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: reading output: %v", ErrCommand, err)
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s: %v: %s", ErrCommand, c.Path, err, strings.TrimSpace(stderr.String()))
	}

	if seen != len(texts) {
		return fmt.Errorf("%w: got %d responses for %d texts", ErrCommand, seen, len(texts))
	}

	return nil
}

// nonNil keeps an empty token list distinguishable from a missing response.
func nonNil(tokens []sent.Token) []sent.Token {
	if tokens == nil {
		return []sent.Token{}
	}
	return tokens
}
