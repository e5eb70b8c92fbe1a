package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/Hagni1/jurney/internal/handlers/journey/v1alpha1"
)

var createCharacterCmd = &cobra.Command{
	Use:   "create-character [nickname]",
	Short: "Create a new level 1 character",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{
			Nickname: strings.Join(args, " "),
		})
		if err != nil {
			return fmt.Errorf("failed to create character: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		fmt.Printf("Character created:\n")
		printCharacter(resp.Character)
		return nil
	},
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Show a character with derived stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetCharacter(ctx, &v1alpha1.GetCharacterRequest{CharacterID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to get character: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		fmt.Printf("Character:\n")
		printCharacter(resp.Character)
		return nil
	},
}

var rankingLimit int

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the top characters",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetRanking(ctx, &v1alpha1.GetRankingRequest{Limit: rankingLimit})
		if err != nil {
			return fmt.Errorf("failed to get ranking: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		fmt.Printf("Ranking (%d characters):\n", len(resp.Entries))
		for _, entry := range resp.Entries {
			c := entry.Character
			fmt.Printf("  #%-3d %-20s stage %-3d level %-3d (%s)\n",
				entry.Rank, c.Nickname, c.CompletedStage, c.Level, c.ID)
		}
		return nil
	},
}

func init() {
	rankingCmd.Flags().IntVar(&rankingLimit, "limit", 0, "number of entries, 0 uses the server default")
}
