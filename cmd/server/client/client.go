// Package client provides test commands for the journey gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1alpha1 "github.com/Hagni1/jurney/internal/handlers/journey/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	// Output flags
	asJSON bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the journey API",
	Long:  `Client commands allow you to test the journey API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the raw JSON response")

	// Character commands
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(rankingCmd)

	// Combat commands
	ClientCmd.AddCommand(listStagesCmd)
	ClientCmd.AddCommand(fightCmd)
	ClientCmd.AddCommand(getCombatCmd)
	ClientCmd.AddCommand(listCombatsCmd)

	// Training commands
	ClientCmd.AddCommand(getTrainingCmd)
	ClientCmd.AddCommand(startTrainingCmd)
	ClientCmd.AddCommand(claimTrainingCmd)
}

// createClient dials the server and returns a journey client with its cleanup
func createClient() (v1alpha1.JourneyServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewJourneyServiceClient(conn), cleanup, nil
}

// printJSON writes v as indented JSON when --json is set and reports whether it did
func printJSON(v any) (bool, error) {
	if !asJSON {
		return false, nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return true, fmt.Errorf("failed to encode response: %w", err)
	}
	return true, nil
}

func printCharacter(c *v1alpha1.Character) {
	if c == nil {
		return
	}
	fmt.Printf("  ID: %s\n", c.ID)
	fmt.Printf("  Nickname: %s\n", c.Nickname)
	fmt.Printf("  Level: %d (%d/%d exp)\n", c.Level, c.Exp, c.ExpToNextLevel)
	fmt.Printf("  STR %d  DEX %d  INT %d\n", c.Strength, c.Dexterity, c.Intelligence)
	fmt.Printf("  Completed Stage: %d\n", c.CompletedStage)
	if c.Stats != nil {
		fmt.Printf("  HP %d  Shield %d  Damage %d  Speed %d  Dodge %.1f%%\n",
			c.Stats.HP, c.Stats.Shield, c.Stats.Damage, c.Stats.AttackSpeed, c.Stats.DodgeChance)
	}
	fmt.Printf("  Max AFK: %d minutes\n", c.MaxAFKMinutes)
}
