package main

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cipherkit/cmd/app/commands"
	"github.com/allisson/cipherkit/internal/app"
	"github.com/allisson/cipherkit/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getAESCommands()...)
	cmds = append(cmds, getRSACommands()...)
	cmds = append(cmds, getSignatureCommands()...)
	return cmds
}

// runWithContainer loads and validates configuration, builds a container and runs fn with it.
func runWithContainer(fn func(*app.Container) error) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	return commands.WithContainer(app.NewContainer(cfg), os.Stderr, fn)
}

// openKeyFile opens path for reading; "-" reads the key from stdin.
func openKeyFile(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path) //nolint:gosec // user-supplied key path
}

// closeKeyFile closes f unless it is stdin.
func closeKeyFile(f *os.File) {
	if f != os.Stdin {
		_ = f.Close()
	}
}

func keyFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "key-file",
		Aliases:  []string{"k"},
		Required: true,
		Usage:    "Path to a base64 or PEM key file ('-' for stdin)",
	}
}

func inputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"in"},
		Usage:   "Input text (reads stdin when omitted)",
	}
}
