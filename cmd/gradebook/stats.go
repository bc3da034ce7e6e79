package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/bluegreyowl/gradebook/internal/grades"
	"github.com/bluegreyowl/gradebook/internal/store"
)

func makeStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show record statistics and grade distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			printStatistics(s.Statistics())
			return nil
		},
	}
}

func printStatistics(stats store.Statistics) {
	if stats.Count == 0 {
		fmt.Println("No student records found")
		return
	}

	fmt.Printf("Total students: %d\n", stats.Count)
	fmt.Printf("Average marks:  %.2f\n", stats.MeanMarks)
	fmt.Printf("Highest marks:  %g\n", stats.MaxMarks)
	fmt.Printf("Lowest marks:   %g\n", stats.MinMarks)

	fmt.Println("\nGrade distribution:")
	order := make([]grades.Grade, 0, len(stats.Grades))
	for grade := range stats.Grades {
		order = append(order, grade)
	}
	slices.Sort(order)

	for _, grade := range order {
		stat := stats.Grades[grade]
		bar := strings.Repeat("#", barWidth(stat.Percentage))
		fmt.Printf("%-3s %3d (%5.1f%%) %s\n", grade, stat.Count, stat.Percentage, bar)
	}
}

// barWidth scales a percentage to at most 40 characters,
// always at least one for a non-empty bucket.
func barWidth(percentage float64) int {
	width := int(percentage * 40 / 100)
	if width < 1 {
		width = 1
	}
	return width
}
