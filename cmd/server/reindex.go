package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hagni1/jurney/internal/config"
	"github.com/Hagni1/jurney/internal/logging"
	"github.com/Hagni1/jurney/internal/redis"
	characterrepo "github.com/Hagni1/jurney/internal/repositories/character"
)

var deleteCorrupted bool

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the ranking and nickname indexes from stored characters",
	Long: `Scan every stored character, rebuild the ranking and nickname indexes and
report entries that no longer decode. Run it while the server is stopped.`,
	RunE: runReindex,
}

func init() {
	reindexCmd.Flags().BoolVar(&deleteCorrupted, "delete-corrupted", false, "delete character entries that fail to decode")
}

func runReindex(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := redis.Ping(cmd.Context(), client); err != nil {
		return err
	}

	out, err := characterrepo.Reindex(cmd.Context(), client, characterrepo.ReindexInput{
		DeleteCorrupted: deleteCorrupted,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Checked %d characters, indexed %d\n", out.Checked, out.Indexed)
	if len(out.Corrupted) == 0 {
		fmt.Fprintln(w, "No corrupted entries found")
		return nil
	}

	fmt.Fprintf(w, "Corrupted entries (%d):\n", len(out.Corrupted))
	for _, key := range out.Corrupted {
		fmt.Fprintf(w, "  - %s\n", key)
	}
	if !deleteCorrupted {
		fmt.Fprintln(w, "Re-run with --delete-corrupted to remove them")
	}
	return nil
}
