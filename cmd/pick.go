package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"unipick/core/config"
	"unipick/core/database"
	"unipick/core/finder"
	"unipick/core/logger"
	"unipick/core/picker"
	"unipick/feature/emoji"
	"unipick/feature/unicode"

	"github.com/spf13/cobra"
)

const (
	modeEmoji     = "1"
	modeCharacter = "2"
)

var (
	pickMode   string
	autoIngest bool
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Fuzzy-pick a character from the store",
	Long: `Presents the ingested emoji catalog or character registry to an external
fuzzy finder and prints the chosen character to standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		ctx := cmd.Context()

		if autoIngest && storeMissing(cfg) {
			logg.Info("Store not found, running ingest first")
			if err := runIngest(ctx, cfg, logg); err != nil {
				return err
			}
		}

		mode := pickMode
		if mode == "" {
			mode, err = promptMode(cmd)
			if err != nil {
				return err
			}
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to store: %w", err)
		}
		defer database.Close(db)

		f := finder.NewExecFinder(cfg.Picker)

		var glyph string
		switch mode {
		case modeEmoji:
			listings, err := emoji.List(db.WithContext(ctx), "", "")
			if err != nil {
				return err
			}
			glyph, err = picker.PickEmoji(ctx, f, listings)
			if err != nil {
				if errors.Is(err, picker.ErrNoSelection) {
					logg.Info("No selection")
					return nil
				}
				return err
			}

		case modeCharacter:
			listings, err := unicode.List(db.WithContext(ctx))
			if err != nil {
				return err
			}
			glyph, err = picker.PickCharacter(ctx, f, listings)
			if err != nil {
				if errors.Is(err, picker.ErrNoSelection) {
					logg.Info("No selection")
					return nil
				}
				return err
			}

		default:
			return fmt.Errorf("invalid choice %q: expected %s (emoji) or %s (character registry)", mode, modeEmoji, modeCharacter)
		}

		fmt.Fprintln(cmd.OutOrStdout(), glyph)
		return nil
	},
}

func init() {
	pickCmd.Flags().StringVar(&pickMode, "mode", "", "selection mode: 1 = emoji, 2 = character registry (prompted when omitted)")
	pickCmd.Flags().BoolVar(&autoIngest, "auto-ingest", false, "run ingest first when the store file is missing")
	RootCmd.AddCommand(pickCmd)
}

// promptMode asks the operator which table to browse.
func promptMode(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Pick from: [1] emojis  [2] character registry\n> ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read choice: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// storeMissing reports whether the sqlite store file does not exist yet.
// Server-backed drivers are assumed present.
func storeMissing(cfg *config.Config) bool {
	if !strings.EqualFold(cfg.Database.Driver, "sqlite") && cfg.Database.Driver != "" {
		return false
	}
	_, err := os.Stat(cfg.Database.Path)
	return os.IsNotExist(err)
}
