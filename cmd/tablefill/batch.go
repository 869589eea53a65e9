package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill"
)

func newBatchCmd() *cobra.Command {
	var (
		pattern string
		marker  string
		outDir  string
		records recordOptions
	)

	cmd := &cobra.Command{
		Use:     "batch",
		Short:   "Fill every template matching a glob pattern",
		Example: `  tablefill batch -g "templates/**/*.docx" -m "CELL TEXT" -r rows.yaml -d out/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := records.load()
			if err != nil {
				return err
			}

			results, err := tablefill.New().FillGlob(pattern, marker, rows, outDir)
			for _, r := range results {
				status := "ok"
				if r.Err != nil {
					status = "FAILED"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s -> %s\n", status, r.Template, r.Output)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&pattern, "glob", "g", "", "Template glob pattern, ** matches directories")
	cmd.Flags().StringVarP(&marker, "marker", "m", "", "Marker text of the template cell")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "Output directory")
	records.register(cmd)
	_ = cmd.MarkFlagRequired("glob")
	_ = cmd.MarkFlagRequired("marker")
	_ = cmd.MarkFlagRequired("out-dir")

	return cmd
}
