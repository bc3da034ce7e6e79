package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bluegreyowl/gradebook/internal/grades"
	"github.com/bluegreyowl/gradebook/pkg/client/gradebook"
)

func makeDumpStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Dump record statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpStats()
		},
	}
}

func dumpStats() error {
	gbk, err := gradebook.NewClient(endpoint)
	if err != nil {
		return err
	}

	log.Info("Waiting for server", zap.String("endpoint", endpoint))
	if err := gbk.WaitReady(5 * time.Second); err != nil {
		return err
	}

	stats, err := gbk.LoadStatistics()
	if err != nil {
		return err
	}
	if stats.Count == 0 {
		fmt.Println("no records")
		return nil
	}

	fmt.Printf("count\t%d\nmean\t%.2f\nmin\t%g\nmax\t%g\n",
		stats.Count, stats.MeanMarks, stats.MinMarks, stats.MaxMarks)

	keys := make([]string, 0, len(stats.Grades))
	for grade := range stats.Grades {
		keys = append(keys, string(grade))
	}
	sort.Strings(keys)
	for _, grade := range keys {
		stat := stats.Grades[grades.Grade(grade)]
		fmt.Printf("%s\t%d\t%.1f%%\n", grade, stat.Count, stat.Percentage)
	}
	return nil
}
