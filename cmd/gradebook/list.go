package main

import (
	"github.com/spf13/cobra"

	"github.com/bluegreyowl/gradebook/internal/grades"
	"github.com/bluegreyowl/gradebook/internal/store"
)

func makeListCommand() *cobra.Command {
	var (
		sortKey string
		grade   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List student records",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := store.ParseSortKey(sortKey)
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			printStudents(s.List(store.ListOptions{
				Grade: grades.Grade(grade),
				Sort:  key,
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort by roll_number, name or marks")
	cmd.Flags().StringVar(&grade, "grade", "", "Only show one grade")

	return cmd
}
