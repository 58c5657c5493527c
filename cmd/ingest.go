package cmd

import (
	"context"
	"fmt"
	"time"

	"unipick/core/config"
	"unipick/core/database"
	"unipick/core/downloader"
	"unipick/core/logger"
	"unipick/feature/emoji"
	emojimodels "unipick/feature/emoji/models"
	"unipick/feature/unicode"
	unicodemodels "unipick/feature/unicode/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Download and load the Unicode data files into the store",
	Long: `Fetches emoji-test.txt and UnicodeData.txt (cached on disk between runs),
parses both into normalized records and loads them into the relational store
as a single batch.`,
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

		return runIngest(cmd.Context(), cfg, logg)
	},
}

func init() {
	RootCmd.AddCommand(ingestCmd)
}

// runIngest performs the full download-parse-load sequence. The store load is
// one transaction: either both tables reflect this run or neither does.
func runIngest(ctx context.Context, cfg *config.Config, logg *zap.Logger) error {
	start := time.Now()

	dl := downloader.NewClient(cfg.Source, logg)

	emojiPath, err := dl.Fetch(ctx, cfg.Source.EmojiTestURL, cfg.Source.EmojiTestPath())
	if err != nil {
		return fmt.Errorf("emoji test download failed: %w", err)
	}
	dataPath, err := dl.Fetch(ctx, cfg.Source.UnicodeDataURL, cfg.Source.UnicodeDataPath())
	if err != nil {
		return fmt.Errorf("unicode data download failed: %w", err)
	}

	catalog, emojiDiags, err := emoji.ParseFile(emojiPath)
	if err != nil {
		return err
	}
	logSkipped(logg, "emoji-test", len(emojiDiags))
	for _, d := range emojiDiags {
		logg.Warn("Skipped emoji test line",
			zap.Int("line", d.Line),
			zap.String("reason", d.Reason),
			zap.String("text", d.Text),
		)
	}

	registry, unicodeDiags, err := unicode.ParseFile(dataPath)
	if err != nil {
		return err
	}
	logSkipped(logg, "unicode-data", len(unicodeDiags))

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer database.Close(db)

	if err := emoji.Migrate(db); err != nil {
		return err
	}
	if err := unicode.Migrate(db); err != nil {
		return err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := emoji.Replace(tx, catalog); err != nil {
			return err
		}
		return unicode.Upsert(tx, registry)
	})
	if err != nil {
		return fmt.Errorf("store load failed: %w", err)
	}

	emojiReport := emojimodels.NewReport(catalog, emojiDiags, start)
	unicodeReport := unicodemodels.NewReport(registry, unicodeDiags, start)
	logg.Info("Ingest complete",
		zap.Int("groups", emojiReport.Groups),
		zap.Int("subgroups", emojiReport.Subgroups),
		zap.Int("emojis", emojiReport.TotalEntries),
		zap.Int("characters", unicodeReport.TotalCharacters),
		zap.String("execution_time", emojiReport.ExecutionTime),
	)

	return nil
}

func logSkipped(logg *zap.Logger, source string, n int) {
	if n > 0 {
		logg.Warn("Skipped malformed lines", zap.String("source", source), zap.Int("count", n))
	}
}
