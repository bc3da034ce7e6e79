package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bluegreyowl/gradebook/internal/export"
	"github.com/bluegreyowl/gradebook/internal/store"
)

func makeExportCommand() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all records to CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			file, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, "Failed to create export file")
			}
			defer file.Close()

			students := s.List(store.ListOptions{Sort: store.SortRollNumber})
			switch format {
			case "csv":
				err = export.WriteCsv(file, students)
			case "json":
				err = export.WriteJson(file, students)
			default:
				err = errors.Errorf("unknown export format %q", format)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d records to %s\n", len(students), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format (csv or json)")
	cmd.Flags().StringVar(&out, "out", "", "Output file")
	cmd.MarkFlagRequired("out")

	return cmd
}
