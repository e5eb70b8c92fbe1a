package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/Hagni1/jurney/internal/handlers/journey/v1alpha1"
)

var (
	showActions bool
	combatLimit int
)

var listStagesCmd = &cobra.Command{
	Use:   "list-stages [character-id]",
	Short: "List the stage catalog, optionally with a character's progress",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		req := &v1alpha1.ListStagesRequest{}
		if len(args) == 1 {
			req.CharacterID = args[0]
		}

		resp, err := client.ListStages(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to list stages: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		for _, s := range resp.Stages {
			marker := " "
			switch {
			case s.Cleared:
				marker = "x"
			case s.Unlocked:
				marker = ">"
			}
			boss := ""
			if s.IsBoss {
				boss = " [boss]"
			}
			fmt.Printf("[%s] %2d  %-16s lvl %-3d %5d exp%s\n",
				marker, s.ID, s.EnemyName, s.EnemyLevel, s.ExpReward, boss)
		}
		return nil
	},
}

var fightCmd = &cobra.Command{
	Use:   "fight [character-id] [stage]",
	Short: "Fight a stage",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		stage, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid stage %q: %w", args[1], err)
		}

		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Fight(ctx, &v1alpha1.FightRequest{CharacterID: args[0], Stage: stage})
		if err != nil {
			return fmt.Errorf("failed to fight: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		printCombat(resp.Combat)
		if resp.LevelsGained > 0 {
			fmt.Printf("Leveled up %d time(s)!\n", resp.LevelsGained)
		}
		if resp.StageUnlocked {
			fmt.Printf("Stage %d cleared for the first time\n", stage)
		}
		if !resp.Archived {
			fmt.Printf("Warning: the fight was not archived\n")
		}
		fmt.Printf("\nCharacter after the fight:\n")
		printCharacter(resp.Character)
		return nil
	},
}

var getCombatCmd = &cobra.Command{
	Use:   "get-combat [combat-id]",
	Short: "Show an archived fight",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetCombat(ctx, &v1alpha1.GetCombatRequest{CombatID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to get combat: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		printCombat(resp.Combat)
		return nil
	},
}

var listCombatsCmd = &cobra.Command{
	Use:   "list-combats [character-id]",
	Short: "List a character's recent fights",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ListCombats(ctx, &v1alpha1.ListCombatsRequest{CharacterID: args[0], Limit: combatLimit})
		if err != nil {
			return fmt.Errorf("failed to list combats: %w", err)
		}
		if printed, err := printJSON(resp); printed {
			return err
		}

		for _, c := range resp.Combats {
			outcome := "loss"
			if c.IsWin {
				outcome = "win"
			}
			fmt.Printf("%s  stage %-3d %-4s %s\n", c.CreatedAt.Format("2006-01-02 15:04:05"), c.Stage, outcome, c.ID)
		}
		return nil
	},
}

func printCombat(c *v1alpha1.Combat) {
	if c == nil {
		return
	}
	outcome := "DEFEAT"
	if c.IsWin {
		outcome = "VICTORY"
	}

	fmt.Printf("Combat %s: %s\n", c.ID, outcome)
	fmt.Printf("  Stage %d vs %s (level %d)\n", c.Stage, c.EnemyID, c.EnemyLevel)
	fmt.Printf("  Seed: %d  Ticks: %d  Actions: %d\n", c.Seed, c.Iterations, len(c.Actions))
	if c.IsWin {
		fmt.Printf("  Exp gained: %d\n", c.ExpGained)
	} else {
		fmt.Printf("  Exp lost: %d\n", c.ExpLost)
	}

	if !showActions {
		return
	}
	for i, a := range c.Actions {
		if a.Dodged {
			fmt.Printf("  %3d. %s attacks %s for %d, dodged\n", i+1, a.Attacker, a.Defender, a.AttackerDamage)
			continue
		}
		fmt.Printf("  %3d. %s hits %s for %d (hp %d -> %d, shield %d -> %d)\n",
			i+1, a.Attacker, a.Defender, a.Damage, a.HPBefore, a.HPAfter, a.ShieldBefore, a.ShieldAfter)
	}
}

func init() {
	fightCmd.Flags().BoolVar(&showActions, "actions", false, "print the full action log")
	getCombatCmd.Flags().BoolVar(&showActions, "actions", false, "print the full action log")
	listCombatsCmd.Flags().IntVar(&combatLimit, "limit", 0, "number of fights, 0 uses the server default")
}
