// Command trie loads a word list into a prefix tree and answers exact-word
// and prefix queries from the command line or over HTTP.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/config"
	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/dictionary"
	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/logging"
	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/trie"
)

// env is what every command gets to work with
type env struct {
	cfg    *config.Config
	logger zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
}

// Command represents a CLI command
type Command struct {
	Name        string
	Usage       string
	Description string
	Run         func(e *env, args []string) error
}

// Available commands
var commands = []Command{
	{
		Name:        "word",
		Usage:       "word <word>...",
		Description: "Report whether each word was inserted",
		Run:         runWord,
	},
	{
		Name:        "prefix",
		Usage:       "prefix <prefix>...",
		Description: "Report whether any inserted word starts with each prefix",
		Run:         runPrefix,
	},
	{
		Name:        "serve",
		Usage:       "serve",
		Description: "Serve insert and lookup requests over HTTP",
		Run:         runServe,
	},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("trie", flag.ContinueOnError)
	fs.SetOutput(stderr)
	helpFlag := fs.Bool("help", false, "Show help message")
	configPath := fs.String("config", "", "Path to config file")
	dictPath := fs.String("dict", "", "Word list to load, one word per line (- for stdin)")
	segmentation := fs.String("segmentation", "", "Character granularity: rune or grapheme")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: trie [flags] <command> [arguments]\n")
		fmt.Fprintf(out, "\nAvailable commands:\n")
		for _, cmd := range commands {
			fmt.Fprintf(out, "  %-20s %s\n", cmd.Usage, cmd.Description)
		}
		fmt.Fprintf(out, "\nGlobal flags:\n")
		fs.PrintDefaults()

		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  \ttrie -dict words.txt word hello help\n")
		fmt.Fprintf(out, "  \ttrie -dict words.txt prefix hel\n")
		fmt.Fprintf(out, "  \ttrie -config config.yaml serve\n")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *helpFlag {
		fs.Usage()
		return 0
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 1
	}

	var cmd *Command
	for i := range commands {
		if commands[i].Name == fs.Arg(0) {
			cmd = &commands[i]
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", fs.Arg(0))
		fs.Usage()
		return 1
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if *dictPath != "" {
		cfg.Dictionary.Path = *dictPath
	}
	if *segmentation != "" {
		cfg.Trie.Segmentation = *segmentation
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
		return 1
	}

	e := &env{cfg: cfg, logger: logger, stdin: stdin, stdout: stdout}
	if err := cmd.Run(e, fs.Args()[1:]); err != nil {
		logger.Error().Err(err).Str("command", cmd.Name).Msg("Command failed")
		return 1
	}
	return 0
}

// loadTrie builds a trie from the configured dictionary. No dictionary
// yields an empty trie.
func loadTrie(e *env, dst dictionary.Inserter) error {
	path := e.cfg.Dictionary.Path
	if path == "" {
		e.logger.Warn().Msg("No dictionary configured, starting with an empty trie")
		return nil
	}

	var (
		n   int
		err error
	)
	if path == "-" {
		n, err = dictionary.Load(e.stdin, dst)
	} else {
		n, err = dictionary.LoadFile(path, dst)
	}
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	e.logger.Info().Str("path", path).Int("words", n).Msg("Loaded dictionary")
	return nil
}

func newTrie(e *env) *trie.Trie {
	return trie.New(e.cfg.Trie.Options()...)
}
