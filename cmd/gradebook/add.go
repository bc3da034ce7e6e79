package main

import (
	"github.com/spf13/cobra"

	"github.com/bluegreyowl/gradebook/internal/models"
)

func makeAddCommand() *cobra.Command {
	var (
		roll  string
		name  string
		age   int
		marks float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student record",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			student, err := s.Add(models.Student{
				RollNumber: roll,
				Name:       name,
				Age:        age,
				Marks:      marks,
			})
			if err != nil {
				return err
			}

			printStudent(student)
			return nil
		},
	}

	cmd.Flags().StringVar(&roll, "roll", "", "Roll number")
	cmd.Flags().StringVar(&name, "name", "", "Student name")
	cmd.Flags().IntVar(&age, "age", 0, "Age (1-150)")
	cmd.Flags().Float64Var(&marks, "marks", 0, "Marks (0-100)")
	cmd.MarkFlagRequired("roll")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("marks")

	return cmd
}
