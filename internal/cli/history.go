package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xhy51/wordfreq/internal/freq"
	"github.com/xhy51/wordfreq/internal/present"
)

var (
	historyDB   string
	historyTop  int
	historyJSON bool
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List saved runs or print one of them",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "", "SQLite history database")
	historyCmd.Flags().IntVarP(&historyTop, "top", "n", 0, "print only the N most frequent tokens (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db := flagOrConfig(cmd, "db", historyDB, cfg.DB)
	if db == "" {
		return errors.New("no history database: pass --db or set db in the config file")
	}
	s, err := openStore(db)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		run, err := s.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		entries := freq.Top(run.Entries, historyTop)
		if historyJSON {
			return (&present.JSON{W: cmd.OutOrStdout()}).Present(entries)
		}
		return (&present.Lines{W: cmd.OutOrStdout()}).Present(entries)
	}

	runs, err := s.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No saved runs.")
		return nil
	}
	if historyJSON {
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal runs: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tTOKENS\tKEPT\tSOURCE")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Tokens, r.Kept, r.Source)
	}
	return tw.Flush()
}
