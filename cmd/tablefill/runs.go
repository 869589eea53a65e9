package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill"
)

func newRunsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "runs <docx>",
		Short: "Print the text runs of a document grouped by table, row, cell and paragraph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := tablefill.ReadAll(args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(runs, "", "  ")
				data = append(data, '\n')
			case "yaml":
				data, err = yaml.Marshal(runs)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml")
	return cmd
}
