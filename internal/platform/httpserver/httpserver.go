package httpserver

import (
	"net/http"
	"time"
)

// New builds the ledger's HTTP server. Every endpoint is a short read or a
// single-pool trade, so the timeouts are tight; a request that outlives them
// indicates a stuck store and should be cut off rather than queued.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
