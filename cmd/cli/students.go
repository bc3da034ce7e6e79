package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bluegreyowl/gradebook/pkg/client/gradebook"
)

func makeDumpStudentsCommand() *cobra.Command {
	var (
		query string
		sort  string
		grade string
	)

	cmd := &cobra.Command{
		Use:   "students",
		Short: "Dump student records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpStudents(query, sort, grade)
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "Search query")
	cmd.Flags().StringVar(&sort, "sort", "", "Sort key (roll_number, name, marks)")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade filter")

	return cmd
}

func dumpStudents(query, sort, grade string) error {
	gbk, err := gradebook.NewClient(endpoint)
	if err != nil {
		return err
	}

	log.Info("Waiting for server", zap.String("endpoint", endpoint))
	if err := gbk.WaitReady(5 * time.Second); err != nil {
		return err
	}

	students, err := gbk.ListStudents(gradebook.ListOptions{
		Query: query,
		Sort:  sort,
		Grade: grade,
	})
	if err != nil {
		return err
	}

	for _, student := range students {
		fmt.Printf("%s\t%s\t%d\t%g\t%s\n",
			student.RollNumber, student.Name, student.Age, student.Marks, student.Grade)
	}
	return nil
}
