// Command requisition serves the requisition print API and offers offline helpers.
//
// @title Requisition Print API
// @version 1.0
// @description Pagination settings, print preview and PDF export for requisition forms.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	_ "requisitionprint/docs"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "requisition",
		Usage: "Paginate, preview and export requisition forms",
		Commands: []*cli.Command{
			serveCommand(),
			planCommand(),
			tokenCommand(),
		},
	}
}
