package cli

import (
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/xhy51/wordfreq/internal/config"
	"github.com/xhy51/wordfreq/internal/freq"
	"github.com/xhy51/wordfreq/internal/logger"
	"github.com/xhy51/wordfreq/internal/present"
	"github.com/xhy51/wordfreq/internal/source"
	"github.com/xhy51/wordfreq/internal/store"
)

var (
	runURL            string
	runText           string
	runFile           string
	runCrawl          int
	runStopwords      string
	runBuiltin        bool
	runTop            int
	runChart          bool
	runJSON           bool
	runShowUnfiltered bool
	runStem           bool
	runDB             string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute a word frequency distribution",
	Long: `Reads text from --text, --file, --url or a --crawl of one site, removes
stopwords and single-character tokens, and prints token:count lines sorted by
descending count. Without a source flag a built-in sentence is analysed.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runURL, "url", "", "fetch this web page and analyse its visible text")
	f.StringVar(&runText, "text", "", "analyse this literal text")
	f.StringVar(&runFile, "file", "", "analyse a text file (- for stdin)")
	f.IntVar(&runCrawl, "crawl", 0, "crawl up to N pages on the same host as --url")
	f.StringVar(&runStopwords, "stopwords", config.DefaultStopwords, "stopword list, one word per line")
	f.BoolVar(&runBuiltin, "builtin-stopwords", false, "use the built-in English stopword list")
	f.IntVarP(&runTop, "top", "n", 0, "print only the N most frequent tokens (0 for all)")
	f.BoolVar(&runChart, "chart", false, "draw a bar chart of the top 50 tokens")
	f.BoolVar(&runJSON, "json", false, "output the ranking as JSON")
	f.BoolVar(&runShowUnfiltered, "show-unfiltered", false, "print the distribution before stopword filtering to stderr")
	f.BoolVar(&runStem, "stem", false, "count English word stems instead of exact tokens")
	f.StringVar(&runDB, "db", "", "save the run to this SQLite history database")

	runCmd.MarkFlagsMutuallyExclusive("url", "text", "file")
	runCmd.MarkFlagsMutuallyExclusive("crawl", "text")
	runCmd.MarkFlagsMutuallyExclusive("crawl", "file")
	runCmd.MarkFlagsMutuallyExclusive("stopwords", "builtin-stopwords")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	// stopwords first: a missing list aborts before any text is read
	logger.Section("Stopwords")
	stop, err := loadStopwords(cmd, runStopwords, runBuiltin)
	if err != nil {
		return err
	}

	src, finish := runSource(cmd)

	var opts []freq.Option
	if runStem {
		opts = append(opts, freq.WithStemming())
	}

	logger.Section("Pipeline")
	res, err := freq.Run(cmd.Context(), src, stop, opts...)
	finish()
	if err != nil {
		return err
	}

	if runShowUnfiltered {
		if err := (&present.Lines{W: cmd.ErrOrStderr()}).Present(res.Unfiltered); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	top := flagOrConfig(cmd, "top", runTop, cfg.Top)
	if err := ranking(cmd.OutOrStdout()).Present(freq.Top(res.Ranked, top)); err != nil {
		return err
	}
	if runChart {
		if err := (&present.Chart{W: cmd.OutOrStdout()}).Present(res.Ranked); err != nil {
			return err
		}
	}

	if db := flagOrConfig(cmd, "db", runDB, cfg.DB); db != "" {
		return saveRun(cmd, db, fmt.Sprint(src), res)
	}
	return nil
}

func ranking(w io.Writer) present.Presenter {
	if runJSON {
		return &present.JSON{W: w}
	}
	return &present.Lines{W: w}
}

// runSource picks the text source from the flags. The returned finish func
// must be called once the source has been read.
func runSource(cmd *cobra.Command) (freq.Source, func()) {
	noop := func() {}
	switch {
	case runCrawl > 0:
		u := runURL
		if u == "" {
			u = cfg.URL
		}
		bar := pb.New(runCrawl).SetWriter(cmd.ErrOrStderr()).Start()
		site := &source.Site{
			URL:      u,
			MaxPages: runCrawl,
			Rate:     cfg.CrawlRate,
			OnPage:   func(string, error) { bar.Increment() },
		}
		return site, func() { bar.Finish() }
	case runURL != "":
		return &source.Web{URL: runURL}, noop
	case runFile != "":
		return source.File(runFile), noop
	case cmd.Flags().Changed("text"):
		return source.Literal(runText), noop
	default:
		logger.Debug("no source flag, analysing the built-in text")
		return source.Literal(source.DefaultText), noop
	}
}

func saveRun(cmd *cobra.Command, path, src string, res *freq.Result) error {
	s, err := openStore(path)
	if err != nil {
		return err
	}
	defer s.Close()

	run := store.NewRun(src, res)
	if err := s.Save(cmd.Context(), run); err != nil {
		return err
	}
	cmd.PrintErrf("saved run %s\n", run.ID)
	return nil
}
