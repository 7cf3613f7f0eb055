package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cipherkit/cmd/app/commands"
	"github.com/allisson/cipherkit/internal/app"
)

func rsaFlags(defaultKeyType string) []cli.Flag {
	return []cli.Flag{
		keyFileFlag(),
		&cli.StringFlag{
			Name:  "key-type",
			Value: defaultKeyType,
			Usage: "Kind of key in --key-file: 'public' or 'private'",
		},
		&cli.StringFlag{
			Name:    "transformation",
			Aliases: []string{"t"},
			Usage:   "Transformation such as RSA/ECB/PKCS1Padding (default)",
		},
		&cli.IntFlag{
			Name:    "bits",
			Aliases: []string{"b"},
			Usage:   "Key length in bits (defaults to the key's modulus size)",
		},
		inputFlag(),
	}
}

func rsaParams(cmd *cli.Command) commands.RSAParams {
	return commands.RSAParams{
		Transformation: cmd.String("transformation"),
		KeyLengthBits:  cmd.Int("bits"),
		KeyType:        cmd.String("key-type"),
		Input:          cmd.String("input"),
	}
}

func getRSACommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "rsa-generate",
			Usage: "Generate an RSA key pair (X.509 public key, PKCS#8 private key)",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "bits",
					Aliases: []string{"b"},
					Usage:   "Key length in bits, 512 to 2048 (defaults to RSA_DEFAULT_KEY_BITS)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "base64",
					Usage:   "Output format: 'base64', 'pem' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					asymmetricUseCase, err := container.AsymmetricUseCase()
					if err != nil {
						return err
					}
					return commands.RunRSAGenerate(
						ctx,
						asymmetricUseCase,
						container.KeyCodec(),
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.Int("bits"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "rsa-encrypt",
			Usage: "Encrypt input of any length with RSA and print base64 ciphertext",
			Flags: rsaFlags("public"),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					asymmetricUseCase, err := container.AsymmetricUseCase()
					if err != nil {
						return err
					}
					keyFile, err := openKeyFile(cmd.String("key-file"))
					if err != nil {
						return err
					}
					defer closeKeyFile(keyFile)

					return commands.RunRSAEncrypt(
						ctx,
						asymmetricUseCase,
						container.Logger(),
						commands.DefaultIO(),
						keyFile,
						rsaParams(cmd),
					)
				})
			},
		},
		{
			Name:  "rsa-decrypt",
			Usage: "Decrypt base64 RSA ciphertext",
			Flags: rsaFlags("private"),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					asymmetricUseCase, err := container.AsymmetricUseCase()
					if err != nil {
						return err
					}
					keyFile, err := openKeyFile(cmd.String("key-file"))
					if err != nil {
						return err
					}
					defer closeKeyFile(keyFile)

					return commands.RunRSADecrypt(
						ctx,
						asymmetricUseCase,
						container.Logger(),
						commands.DefaultIO(),
						keyFile,
						rsaParams(cmd),
					)
				})
			},
		},
	}
}

func signatureFlags() []cli.Flag {
	return []cli.Flag{
		keyFileFlag(),
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"alg"},
			Value:   "SHA256withRSA",
			Usage:   "MD5withRSA, SHA1withRSA, SHA224withRSA, SHA256withRSA, SHA384withRSA or SHA512withRSA",
		},
		inputFlag(),
	}
}

func getSignatureCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "sign",
			Usage: "Sign input with an RSA private key and print the base64 signature",
			Flags: signatureFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					signatureUseCase, err := container.SignatureUseCase()
					if err != nil {
						return err
					}
					asymmetricUseCase, err := container.AsymmetricUseCase()
					if err != nil {
						return err
					}
					keyFile, err := openKeyFile(cmd.String("key-file"))
					if err != nil {
						return err
					}
					defer closeKeyFile(keyFile)

					return commands.RunSign(
						ctx,
						signatureUseCase,
						asymmetricUseCase,
						container.Logger(),
						commands.DefaultIO(),
						keyFile,
						cmd.String("algorithm"),
						cmd.String("input"),
					)
				})
			},
		},
		{
			Name:  "verify",
			Usage: "Verify a base64 signature with an RSA public key",
			Flags: append(signatureFlags(), &cli.StringFlag{
				Name:     "signature",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "Signature as base64",
			}),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(func(container *app.Container) error {
					signatureUseCase, err := container.SignatureUseCase()
					if err != nil {
						return err
					}
					asymmetricUseCase, err := container.AsymmetricUseCase()
					if err != nil {
						return err
					}
					keyFile, err := openKeyFile(cmd.String("key-file"))
					if err != nil {
						return err
					}
					defer closeKeyFile(keyFile)

					return commands.RunVerify(
						ctx,
						signatureUseCase,
						asymmetricUseCase,
						container.Logger(),
						commands.DefaultIO(),
						keyFile,
						cmd.String("algorithm"),
						cmd.String("signature"),
						cmd.String("input"),
					)
				})
			},
		},
	}
}
