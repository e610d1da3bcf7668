package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog.json>",
	Short: "Check a lesson catalog file against the schema and structural rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := readCatalogFile(args[0])
		if err != nil {
			color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), "invalid")
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprint(out, "ok")
		fmt.Fprintf(out, "  version %s, %d categories, %d lessons\n",
			cat.Version(), len(cat.Categories()), cat.Total())
		return nil
	},
}
