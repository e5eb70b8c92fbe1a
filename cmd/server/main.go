// Package main is the entry point for the journey binary
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hagni1/jurney/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "journey",
	Short: "Idle RPG game server",
	Long: `Journey serves the idle RPG core over gRPC: characters, stage fights,
offline training and the ranking.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (defaults to $JOURNEY_CONFIG)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reindexCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
