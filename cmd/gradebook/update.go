package main

import (
	"github.com/spf13/cobra"

	"github.com/bluegreyowl/gradebook/internal/store"
)

func makeUpdateCommand() *cobra.Command {
	var (
		name  string
		age   int
		marks float64
	)

	cmd := &cobra.Command{
		Use:   "update <roll-number>",
		Short: "Update fields of a student record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := store.Update{}
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("age") {
				update.Age = &age
			}
			if cmd.Flags().Changed("marks") {
				update.Marks = &marks
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			student, err := s.Update(args[0], update)
			if err != nil {
				return err
			}

			printStudent(student)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().IntVar(&age, "age", 0, "New age")
	cmd.Flags().Float64Var(&marks, "marks", 0, "New marks")

	return cmd
}
