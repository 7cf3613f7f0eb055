package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cipherkit/cmd/app/commands"
	"github.com/allisson/cipherkit/internal/app"
	"github.com/allisson/cipherkit/internal/config"
)

func aesFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "transformation",
			Aliases: []string{"t"},
			Usage:   "Transformation such as AES/CBC/PKCS7Padding (defaults to DEFAULT_AES_TRANSFORMATION)",
		},
		&cli.StringFlag{
			Name:  "key",
			Usage: "Raw AES key as base64 (16, 24 or 32 bytes)",
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Password to derive the key from with PBKDF2",
		},
		&cli.StringFlag{
			Name:  "salt",
			Usage: "PBKDF2 salt",
		},
		&cli.IntFlag{
			Name:  "iterations",
			Usage: "PBKDF2 iteration count (defaults to PBKDF2_DEFAULT_ITERATIONS)",
		},
		&cli.IntFlag{
			Name:  "key-length",
			Value: 256,
			Usage: "Derived key length in bits (128, 192 or 256)",
		},
		&cli.StringFlag{
			Name:  "prf",
			Usage: "PBKDF2 PRF: sha1, sha224, sha256, sha384 or sha512 (defaults to PBKDF2_DEFAULT_PRF)",
		},
		&cli.StringFlag{
			Name:  "iv",
			Usage: "Initialization vector as base64 (not used by ECB)",
		},
		inputFlag(),
	}
}

// aesParams reads the AES flags, filling PBKDF2 defaults from configuration.
func aesParams(cmd *cli.Command, cfg *config.Config) commands.AESParams {
	params := commands.AESParams{
		PasswordParams: commands.PasswordParams{
			Key:           cmd.String("key"),
			Password:      cmd.String("password"),
			Salt:          cmd.String("salt"),
			Iterations:    cmd.Int("iterations"),
			KeyLengthBits: cmd.Int("key-length"),
			PRF:           cmd.String("prf"),
		},
		Transformation: cmd.String("transformation"),
		IV:             cmd.String("iv"),
		Input:          cmd.String("input"),
	}
	if params.Iterations == 0 {
		params.Iterations = cfg.PBKDF2DefaultIterations
	}
	if params.PRF == "" {
		params.PRF = cfg.PBKDF2DefaultPRF
	}
	return params
}

func encodingFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Value:   "base64",
		Usage:   "Output encoding: 'base64' or 'hex'",
	}
}

func getAESCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "aes-generate-key",
			Usage: "Generate a random AES key",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "bits",
					Aliases: []string{"b"},
					Value:   256,
					Usage:   "Key length in bits (128, 192 or 256)",
				},
				encodingFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					symmetricUseCase, err := container.SymmetricUseCase()
					if err != nil {
						return err
					}
					return commands.RunAESGenerateKey(
						ctx,
						symmetricUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.Int("bits"),
						cmd.String("encoding"),
					)
				})
			},
		},
		{
			Name:  "aes-generate-iv",
			Usage: "Generate a random initialization vector",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   16,
					Usage:   "IV length in bytes",
				},
				encodingFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					symmetricUseCase, err := container.SymmetricUseCase()
					if err != nil {
						return err
					}
					return commands.RunAESGenerateIV(
						ctx,
						symmetricUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.Int("length"),
						cmd.String("encoding"),
					)
				})
			},
		},
		{
			Name:  "aes-encrypt",
			Usage: "Encrypt input with AES and print base64 ciphertext",
			Flags: aesFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					symmetricUseCase, err := container.SymmetricUseCase()
					if err != nil {
						return err
					}
					return commands.RunAESEncrypt(
						ctx,
						symmetricUseCase,
						container.Logger(),
						commands.DefaultIO(),
						aesParams(cmd, container.Config()),
					)
				})
			},
		},
		{
			Name:  "aes-decrypt",
			Usage: "Decrypt base64 AES ciphertext",
			Flags: aesFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					symmetricUseCase, err := container.SymmetricUseCase()
					if err != nil {
						return err
					}
					return commands.RunAESDecrypt(
						ctx,
						symmetricUseCase,
						container.Logger(),
						commands.DefaultIO(),
						aesParams(cmd, container.Config()),
					)
				})
			},
		},
	}
}
