package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/nhdewitt/jwp-dispatch/internal/app"
	"github.com/nhdewitt/jwp-dispatch/internal/config"
	"github.com/nhdewitt/jwp-dispatch/internal/session"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the dispatch table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		t, err := buildTable(cfg, app.NewUsers(), session.NewStore())
		if err != nil {
			return err
		}

		color.New(color.Bold).Printf("%d routes\n", t.Len())
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Method", "Path", "Handler", "Params"})
		table.SetAutoWrapText(false)
		for _, r := range t.Routes() {
			params := make([]string, len(r.Params))
			for i, p := range r.Params {
				params[i] = p.String()
			}
			table.Append([]string{r.Method.String(), r.Path, r.Name, strings.Join(params, ", ")})
		}
		table.Render()
		return nil
	},
}
