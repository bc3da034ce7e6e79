package main

import (
	"github.com/spf13/cobra"
)

func makeGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <roll-number>",
		Short: "Show one student record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			student, err := s.Get(args[0])
			if err != nil {
				return err
			}

			printStudent(student)
			return nil
		},
	}
}
