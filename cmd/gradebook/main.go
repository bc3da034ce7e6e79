package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bluegreyowl/gradebook/internal/grades"
	"github.com/bluegreyowl/gradebook/internal/storage"
	"github.com/bluegreyowl/gradebook/internal/store"
	zlog "github.com/bluegreyowl/gradebook/pkg/log"
)

var (
	flagBackend      string
	flagFile         string
	flagScale        string
	flagPersistGrade bool
	flagLogFile      string

	rootCmd = &cobra.Command{
		Use:   "gradebook",
		Short: "Manage student records",
	}
)

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "csv", "Storage backend (csv or sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "students.csv", "Path to the data file")
	rootCmd.PersistentFlags().StringVar(&flagScale, "grade-scale", "", "Path to a YAML grade scale (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&flagPersistGrade, "persist-grade", false, "Write the derived grade column to the CSV file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "gradebook.log", "Path to the log file")

	rootCmd.AddCommand(makeAddCommand())
	rootCmd.AddCommand(makeGetCommand())
	rootCmd.AddCommand(makeListCommand())
	rootCmd.AddCommand(makeSearchCommand())
	rootCmd.AddCommand(makeUpdateCommand())
	rootCmd.AddCommand(makeRemoveCommand())
	rootCmd.AddCommand(makeStatsCommand())
	rootCmd.AddCommand(makeExportCommand())
}

// openStore builds the store from the persistent flags. The log goes
// to a file so stdout stays clean for the tables.
func openStore() (*store.Store, error) {
	logger := zlog.InitFile(flagLogFile)

	scale := grades.Default()
	if flagScale != "" {
		var err error
		if scale, err = grades.Load(flagScale); err != nil {
			return nil, err
		}
	}

	backend, err := storage.NewBackend(logger, flagBackend, flagFile, flagPersistGrade)
	if err != nil {
		return nil, err
	}

	return store.Open(logger, scale, backend)
}

func init() {
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s\n", err.Error())
		os.Exit(1)
	}
}
