package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cipherkit/cmd/app/commands"
	"github.com/allisson/cipherkit/internal/app"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "sha256",
			Usage: "Print the hex SHA-256 digest of the input",
			Flags: []cli.Flag{inputFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					return commands.RunSHA256(container.Logger(), commands.DefaultIO(), cmd.String("input"))
				})
			},
		},
		{
			Name:  "version",
			Usage: "Print the application version",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				_, err := fmt.Fprintln(commands.DefaultIO().Writer, version)
				return err
			},
		},
	}
}
