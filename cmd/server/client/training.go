package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/Hagni1/jurney/internal/handlers/journey/v1alpha1"
)

var getTrainingCmd = &cobra.Command{
	Use:   "get-training [character-id]",
	Short: "Show the active training session and what it has earned",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetTraining(ctx, &v1alpha1.GetTrainingRequest{CharacterID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to get training: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		if resp.Training == nil {
			fmt.Printf("Character %s is not training\n", args[0])
			return nil
		}
		printTraining(resp.Training)
		return nil
	},
}

var startTrainingCmd = &cobra.Command{
	Use:   "start-training [character-id] [strength|dexterity|intelligence]",
	Short: "Start training a stat offline",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.StartTraining(ctx, &v1alpha1.StartTrainingRequest{CharacterID: args[0], Stat: args[1]})
		if err != nil {
			return fmt.Errorf("failed to start training: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		if resp.Replaced {
			fmt.Printf("Previous session replaced, unclaimed progress was discarded\n")
		}
		printTraining(resp.Training)
		return nil
	},
}

var claimTrainingCmd = &cobra.Command{
	Use:   "claim-training [character-id]",
	Short: "Claim offline training gains and end the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ClaimTraining(ctx, &v1alpha1.ClaimTrainingRequest{CharacterID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to claim training: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		fmt.Printf("Trained %s for %d minutes (%d counted): +%d\n",
			resp.Stat, resp.ElapsedMinutes, resp.CappedMinutes, resp.Gains)
		printCharacter(resp.Character)
		return nil
	},
}

func printTraining(t *v1alpha1.Training) {
	if t == nil {
		return
	}
	fmt.Printf("Training %s since %s\n", t.Stat, t.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Elapsed: %d minutes (cap %d)\n", t.ElapsedMinutes, t.MaxAFKMinutes)
	fmt.Printf("  Claimable: +%d\n", t.StatGains)
}
