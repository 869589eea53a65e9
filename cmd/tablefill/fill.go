package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill"
)

type recordOptions struct {
	recordsFile string
	rows        []string
}

func (o *recordOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.recordsFile, "records", "r", "", "Records file (.csv, .json, .yaml)")
	cmd.Flags().StringArrayVar(&o.rows, "row", nil, "Inline record as comma separated fields (repeatable)")
}

// load returns the records from the file followed by the inline rows.
func (o *recordOptions) load() ([][]string, error) {
	if o.recordsFile == "" && len(o.rows) == 0 {
		return nil, errors.New("no records given: use --records or --row")
	}

	records := [][]string{}
	if o.recordsFile != "" {
		loaded, err := tablefill.LoadRecords(o.recordsFile)
		if err != nil {
			return nil, err
		}
		records = append(records, loaded...)
	}
	for _, row := range o.rows {
		records = append(records, strings.Split(row, ","))
	}
	return records, nil
}

func newFillCmd() *cobra.Command {
	var (
		template string
		marker   string
		output   string
		records  recordOptions
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill the marked table row of one template",
		Example: `  tablefill fill -t template.docx -m "CELL TEXT" -r rows.csv -o out.docx
  tablefill fill -t template.docx -m "CELL TEXT" --row 1,2,3 --row 4,5,6 -o out.docx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := records.load()
			if err != nil {
				return err
			}
			if err := tablefill.New().InsertTableRows(template, marker, rows, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d rows)\n", output, len(rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "", "Template DOCX file")
	cmd.Flags().StringVarP(&marker, "marker", "m", "", "Marker text of the template cell")
	cmd.Flags().StringVarP(&output, "out", "o", "", "Output DOCX file")
	records.register(cmd)
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("marker")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
