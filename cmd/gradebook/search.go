package main

import (
	"github.com/spf13/cobra"
)

func makeSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search by name or roll number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			printStudents(s.Search(args[0]))
			return nil
		},
	}
}
