package mcp

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
)

// NewHTTPHandler returns the MCP streamable-HTTP endpoint at /mcp plus an
// unauthenticated /healthz. A non-empty apiKey guards /mcp with Bearer auth.
func NewHTTPHandler(apiKey string, scrape ScrapeFunc) http.Handler {
	httpServer := server.NewStreamableHTTPServer(newServer(scrape), server.WithStateLess(true))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	var mcpHandler http.Handler = httpServer
	if apiKey != "" {
		mcpHandler = bearerAuth(apiKey, httpServer)
	}
	mux.Handle("/mcp", mcpHandler)
	return mux
}

// ServeHTTP starts the MCP server over HTTP.
func ServeHTTP(addr, apiKey string, scrape ScrapeFunc) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      NewHTTPHandler(apiKey, scrape),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // a scrape waits for every page
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("MCP HTTP server listening", "addr", addr, "auth", apiKey != "")
	return srv.ListenAndServe()
}

func bearerAuth(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="mcp"`)
			http.Error(w, `{"error":"missing Authorization header"}`, http.StatusUnauthorized)
			return
		}
		token, found := strings.CutPrefix(auth, "Bearer ")
		if !found || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			w.Header().Set("WWW-Authenticate", `Bearer realm="mcp", error="invalid_token"`)
			http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
