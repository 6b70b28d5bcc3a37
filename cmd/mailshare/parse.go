package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/mailshare/config"
	"github.com/revelaction/mailshare/render"
)

// Option structs for subcommands that have flags
type ClassifyOptions struct {
	Output  string
	Format  string
	NoScore bool
	Uniform bool
	Weights string
	Batch   int
	Config  string

	// names of the flags given on the command line
	set map[string]bool
}

type DocOptions struct {
	DocPath  string
	Format   string
	NoScore  bool
	Relevant bool
	Config   string
}

type ImportDocOptions struct {
	From string
	To   string
}

type StatOptions struct {
	Config string
}

type ReplOptions struct {
	NoScore bool
	Config  string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("mailshare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

// parseFailed reports a flag parsing error the way every subcommand does.
func parseFailed(fs *flag.FlagSet, err error, ui UI) error {
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(ui.Out)
		fs.Usage()
		return err
	}
	fs.SetOutput(ui.Err)
	fprintErr(ui.Err, err)
	fs.Usage()
	return err
}

func parseClassifyArgs(args []string, ui UI) (ClassifyOptions, string, error) {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := ClassifyOptions{Format: render.Defaultformat, set: map[string]bool{}}
	fs.StringVar(&opts.Output, "o", config.DefaultOutputPath, "File the classified lines of a text file are written to")
	fs.Var(&enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}, "format", "Output format: "+strings.Join(render.SupportedFormats(), ", "))
	fs.BoolVar(&opts.NoScore, "no-score", false, "Do not write the scores")
	fs.BoolVar(&opts.Uniform, "uniform", false, "Score with the mean of the signals instead of the weights")
	fs.StringVar(&opts.Weights, "w", "", "Comma separated weights of verb before pronoun, present tense and question mark (default 0.5,0.3,0.2)")
	fs.IntVar(&opts.Batch, "batch", 0, "Number of sentences scored together (default 250)")
	fs.StringVar(&opts.Config, "config", "", "Path to a YAML configuration file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s classify [options] <text|file>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Classify a sentence, or every line of a text file, as asking to share\n")
		_, _ = fmt.Fprintf(fs.Output(), "  an email or having shared it.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, "", parseFailed(fs, err, ui)
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("classify command needs a text or a file argument")
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	if opts.Uniform && opts.Weights != "" {
		return opts, "", errors.New("-uniform and -w are mutually exclusive")
	}

	// unquoted sentences arrive as several arguments
	return opts, strings.Join(fs.Args(), " "), nil
}

func parseDocArgs(args []string, ui UI) (DocOptions, string, error) {
	fs := flag.NewFlagSet("doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := DocOptions{Format: "text"}
	fs.StringVar(&opts.DocPath, "doc-path", "", "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", "", "alias for -doc-path")
	fs.Var(&enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}, "format", "Output format: "+strings.Join(render.SupportedFormats(), ", "))
	fs.BoolVar(&opts.NoScore, "no-score", false, "Do not show the scores")
	fs.BoolVar(&opts.Relevant, "relevant", false, "Classify every relevant sentence of a SQLite corpus")
	fs.StringVar(&opts.Config, "config", "", "Path to a YAML configuration file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s doc [options] [file_path|db_id]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Classify the sentences of a tagged document file or corpus entry.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Without argument, list the documents of the corpus.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, "", parseFailed(fs, err, ui)
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("doc command accepts at most one argument")
	}

	arg := fs.Arg(0)

	if opts.Relevant && arg != "" {
		return opts, "", errors.New("-relevant does not accept a document argument")
	}

	if opts.DocPath == "" && (arg == "" || !strings.HasSuffix(arg, ".json")) {
		return opts, "", errors.New("-d is required unless a .json file is given")
	}

	return opts, arg, nil
}

func parseImportDocArgs(args []string, ui UI) (ImportDocOptions, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportDocOptions
	fs.StringVar(&opts.From, "from", "", "Source directory with JSON docs")
	fs.StringVar(&opts.To, "to", "", "Target SQLite database file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import --from <dir> --to <sqlite_file>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, parseFailed(fs, err, ui)
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, string, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	fs.StringVar(&opts.Config, "config", "", "Path to a YAML configuration file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options] <file>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show classification statistics for the lines of a text file.\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, "", parseFailed(fs, err, ui)
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("stat command needs one file argument")
	}

	return opts, fs.Arg(0), nil
}

func parseReplArgs(args []string, ui UI) (ReplOptions, error) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ReplOptions
	fs.BoolVar(&opts.NoScore, "no-score", false, "Do not show the scores")
	fs.StringVar(&opts.Config, "config", "", "Path to a YAML configuration file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s repl [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Classify sentences typed at a prompt.\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, parseFailed(fs, err, ui)
	}

	return opts, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	if err := fs.Parse(args); err != nil {
		return parseFailed(fs, err, ui)
	}
	return nil
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s <text|file>\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "       %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Detect email excerpts asking to share an email address\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  classify  Classify a sentence or the lines of a text file.\n")
		_, _ = fmt.Fprintf(output, "  doc       Classify the sentences of a tagged document.\n")
		_, _ = fmt.Fprintf(output, "  import    Import tagged docs from filesystem to SQLite.\n")
		_, _ = fmt.Fprintf(output, "  stat      Show statistics for a text file.\n")
		_, _ = fmt.Fprintf(output, "  repl      Enter interactive mode.\n")
		_, _ = fmt.Fprintf(output, "  version   Show version.\n")
		_, _ = fmt.Fprintf(output, "  bash      Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}
