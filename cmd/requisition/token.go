package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"requisitionprint/config"
	"requisitionprint/internal/adapters/auth"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Issue a bearer token for a settings owner, signed with AUTH_SECRET",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "subject",
				Aliases:  []string{"s"},
				Usage:    "Owner id the token authenticates",
				Required: true,
			},
			&cli.DurationFlag{
				Name:  "expiry",
				Usage: "Token lifetime",
				Value: 24 * time.Hour,
			},
		},
		Action: issueToken,
	}
}

func issueToken(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.AuthSecret == "" {
		return errors.New("AUTH_SECRET is not set")
	}
	token, err := auth.NewJWTIssuer(cfg.AuthSecret).Issue(cmd.String("subject"), cmd.Duration("expiry"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, token)
	return err
}
