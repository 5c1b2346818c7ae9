package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"kocicube/internal/cube"
	"kocicube/internal/kociemba"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the kociemba solver's move/pruning tables",
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build (or load, if already present) the eleven kociemba tables",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("tables")
		quiet, _ := cmd.Flags().GetBool("quiet")

		solver := kociemba.NewSolver(dir)
		if !quiet {
			solver.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger())
		}

		start := time.Now()
		if err := solver.InitializeTables(context.Background()); err != nil {
			fmt.Printf("Error building tables: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Tables ready in %s (%s)\n", dir, time.Since(start).Round(time.Millisecond))
	},
}

var tablesStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report which table files already exist under the table directory",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("tables")
		names := []string{
			"Twist.mtb", "Flip.mtb", "Choice.mtb", "CrnrPerm.mtb", "EdgePerm.mtb", "SlicPerm.mtb",
			"TwstFlip.ptb", "TwstChce.ptb", "FlipChce.ptb", "CrnrSlic.ptb", "EdgeSlic.ptb",
		}
		missing := 0
		for _, n := range names {
			path := filepath.Join(dir, n)
			info, err := os.Stat(path)
			if err != nil {
				fmt.Printf("%-14s missing\n", n)
				missing++
				continue
			}
			fmt.Printf("%-14s %d bytes\n", n, info.Size())
		}
		if missing > 0 {
			fmt.Printf("\n%d table(s) missing; run `cube tables build` to generate them.\n", missing)
		}
	},
}

func init() {
	tablesCmd.PersistentFlags().String("tables", cube.DefaultKociembaTableDir, "Directory holding the kociemba table files")
	tablesBuildCmd.Flags().Bool("quiet", false, "Suppress build progress logging")
	tablesCmd.AddCommand(tablesBuildCmd)
	tablesCmd.AddCommand(tablesStatusCmd)
	rootCmd.AddCommand(tablesCmd)
}
