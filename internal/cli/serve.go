package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/xhy51/wordfreq/internal/config"
	"github.com/xhy51/wordfreq/internal/freq"
	"github.com/xhy51/wordfreq/internal/logger"
	"github.com/xhy51/wordfreq/internal/server"
)

const shutdownTimeout = 5 * time.Second

var (
	serveAddr      string
	serveDB        string
	serveStopwords string
	serveBuiltin   bool
	serveStem      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve word frequency distributions over HTTP",
	Long: `Starts an HTTP server with:

  GET  /freq?url=U&top=N  analyse a web page
  POST /freq?top=N        analyse the request body
  GET  /runs              list saved runs
  GET  /runs/{id}         show one saved run`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveAddr, "addr", config.DefaultAddr, "listen address")
	f.StringVar(&serveDB, "db", "", "SQLite history database (in memory if empty)")
	f.StringVar(&serveStopwords, "stopwords", config.DefaultStopwords, "stopword list, one word per line")
	f.BoolVar(&serveBuiltin, "builtin-stopwords", false, "use the built-in English stopword list")
	f.BoolVar(&serveStem, "stem", false, "count English word stems instead of exact tokens")
	serveCmd.MarkFlagsMutuallyExclusive("stopwords", "builtin-stopwords")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	stop, err := loadStopwords(cmd, serveStopwords, serveBuiltin)
	if err != nil {
		return err
	}
	s, err := openStore(flagOrConfig(cmd, "db", serveDB, cfg.DB))
	if err != nil {
		return err
	}
	defer s.Close()

	svc := &server.Service{Stopwords: stop, Store: s}
	if serveStem {
		svc.Options = append(svc.Options, freq.WithStemming())
	}

	ln, err := net.Listen("tcp", flagOrConfig(cmd, "addr", serveAddr, cfg.Addr))
	if err != nil {
		return err
	}
	return serve(cmd.Context(), ln, server.NewMux(svc), func(addr string) {
		cmd.PrintErrf("listening on %s\n", addr)
	})
}

// serve runs the HTTP server on ln until ctx is cancelled.
func serve(ctx context.Context, ln net.Listener, h http.Handler, ready func(addr string)) error {
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	if ready != nil {
		ready(ln.Addr().String())
	}

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
