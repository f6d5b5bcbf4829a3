// cmd/sokosolve/main.go
// Copyright (C) 2024 Yahia Zakaria
// Entry point for the sokosolve command-line tool.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yahiaetman/sokosolve"
)

var (
	configPath string
	envPath    string
	cfg        sokosolve.Config
	logger     *sokosolve.Logger

	rootCmd = &cobra.Command{
		Use:   "sokosolve",
		Short: "A BFS/A* Sokoban level solver",
		Long: `sokosolve searches Sokoban levels for push sequences that move
every crate onto a goal, using breadth-first search or a weighted
best-first search guided by a push-distance heuristic.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := sokosolve.LoadConfig(configPath, envPath)
			if err != nil {
				return err
			}
			cfg = loaded
			logger = sokosolve.NewTextLogger(parseLevel(cmd))
			return nil
		},
	}
)

func parseLevel(cmd *cobra.Command) slog.Level {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "path to a .env file (missing file is not an error)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
