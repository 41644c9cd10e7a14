package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"requisitionprint/internal/delivery/http/controllers"
	"requisitionprint/internal/domain"
	"requisitionprint/internal/pagination"
)

func planCommand() *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "Print the page plan for a requisition form JSON file",
		ArgsUsage: "<form.json | ->",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "items-per-page",
				Aliases: []string{"n"},
				Usage:   "Manual items per page (turns auto-size off)",
			},
		},
		Action: planForm,
	}
}

func planForm(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("expected exactly one form file (use - for stdin)")
	}
	form, err := readForm(cmd.Args().First())
	if err != nil {
		return err
	}
	if errs := form.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid form: %s", strings.Join(errs, "; "))
	}

	var settings *domain.PaginationSettings
	if cmd.IsSet("items-per-page") {
		settings = &domain.PaginationSettings{ItemsPerPage: int(cmd.Int("items-per-page")), AutoSize: false}
	}
	plan := controllers.NewPlanResponse(pagination.Plan(form.Items, settings))

	enc := json.NewEncoder(cmd.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

func readForm(path string) (domain.RequisitionForm, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return domain.RequisitionForm{}, err
		}
		defer f.Close()
		r = f
	}
	var form domain.RequisitionForm
	if err := json.NewDecoder(r).Decode(&form); err != nil {
		return domain.RequisitionForm{}, fmt.Errorf("decode form: %w", err)
	}
	return form, nil
}
