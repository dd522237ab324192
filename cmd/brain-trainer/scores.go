package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/brain-trainer/config"
	"github.com/lixenwraith/brain-trainer/game"
	"github.com/lixenwraith/brain-trainer/locale"
	"github.com/lixenwraith/brain-trainer/score"
	"github.com/lixenwraith/brain-trainer/storage"
)

func newScoresCmd(f *flagValues) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Print the best result of every game",
		Long: `Print the best result of every game from the configured store.

Examples:
  brain-trainer scores                 # table in the configured language
  brain-trainer scores --json          # stored record as JSON
  brain-trainer scores --store sqlite  # read another backend`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return printScores(cmd.Context(), cmd.OutOrStdout(), cfg, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored record as JSON")
	return cmd
}

func printScores(ctx context.Context, w io.Writer, cfg config.Config, asJSON bool) error {
	st, err := storage.Open(ctx, cfg.StorageOptions(), zerolog.Nop())
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	defer st.Close()

	record := score.Load(ctx, st, zerolog.Nop())

	if asJSON {
		data, err := score.Encode(record)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	tag, _ := locale.ParseTag(cfg.Locale)
	p := locale.NewPrinter(tag)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range game.AllGameTypes {
		var name, best string
		switch t {
		case game.ColorWord:
			name = p.T(locale.KeyColorWord)
			best = p.T(locale.KeyBestScore, record.ColorWord)
		case game.NumberHunt:
			name = p.T(locale.KeyNumberHunt)
			best = p.T(locale.KeyBestTime, game.FormatBest(record.NumberHunt))
		case game.MemoryMatch:
			name = p.T(locale.KeyMemoryMatch)
			best = p.T(locale.KeyBestTime, game.FormatBest(record.MemoryMatch))
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, best)
	}
	return tw.Flush()
}
