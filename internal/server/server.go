// Package server exposes the word-frequency pipeline over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/xhy51/wordfreq/internal/freq"
	"github.com/xhy51/wordfreq/internal/logger"
	"github.com/xhy51/wordfreq/internal/source"
	"github.com/xhy51/wordfreq/internal/store"
)

const maxBodySize = 10 << 20 // 10 MB

// Service holds what every request shares. Stopwords are read-only.
type Service struct {
	Stopwords freq.Stopwords
	Store     store.Store
	Client    *http.Client
	Options   []freq.Option
}

// NewMux routes:
//
//	GET  /freq?url=U&top=N  analyse a web page
//	POST /freq?top=N        analyse the request body
//	GET  /runs              list saved runs
//	GET  /runs/{id}         one saved run
//
// Library-only: does not start the server by itself.
func NewMux(svc *Service) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /freq", svc.handleFetch)
	mux.HandleFunc("POST /freq", svc.handleText)
	mux.HandleFunc("GET /runs", svc.handleList)
	mux.HandleFunc("GET /runs/{id}", svc.handleGet)
	return mux
}

func (s *Service) handleFetch(w http.ResponseWriter, r *http.Request) {
	u := r.URL.Query().Get("url")
	if u == "" {
		writeError(w, http.StatusBadRequest, "missing url parameter")
		return
	}
	top, ok := parseTop(w, r)
	if !ok {
		return
	}

	web := &source.Web{URL: u, Client: s.Client}
	res, err := freq.Run(r.Context(), web, s.Stopwords, s.Options...)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, source.ErrFetch) {
			status = http.StatusBadGateway
		}
		logger.Warn("analyse %s: %v", u, err)
		writeError(w, status, err.Error())
		return
	}
	s.respond(w, r, web.String(), res, top)
}

func (s *Service) handleText(w http.ResponseWriter, r *http.Request) {
	top, ok := parseTop(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "body too large")
		return
	}
	res := freq.Analyze(string(body), s.Stopwords, s.Options...)
	s.respond(w, r, source.Literal("").String(), res, top)
}

func (s *Service) respond(w http.ResponseWriter, r *http.Request, src string, res *freq.Result, top int) {
	run := store.NewRun(src, res)
	if s.Store != nil {
		if err := s.Store.Save(r.Context(), run); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	out := *run
	out.Entries = freq.Top(run.Entries, top)
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeJSON(w, http.StatusOK, []store.Run{})
		return
	}
	runs, err := s.Store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusNotFound, "history disabled")
		return
	}
	run, err := s.Store.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func parseTop(w http.ResponseWriter, r *http.Request) (int, bool) {
	v := r.URL.Query().Get("top")
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "top must be a non-negative integer")
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
