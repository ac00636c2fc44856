package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/lukman83/sportvision-scrap/config"
	"github.com/lukman83/sportvision-scrap/internal/httputil"
	"github.com/lukman83/sportvision-scrap/internal/models"
	"github.com/lukman83/sportvision-scrap/internal/platform"
	"github.com/lukman83/sportvision-scrap/internal/sportvision"
	"github.com/lukman83/sportvision-scrap/internal/stock"
	"github.com/lukman83/sportvision-scrap/internal/transport"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sportvision",
	Short: "Sport Vision Scrap - product listing scraper CLI & MCP server",
	Long:  "A Go-based CLI tool and MCP server that scrapes sportvision.rs product listings into JSON.",
	// Errors are printed once by Execute.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("base-url", "", "Site origin (default https://sportvision.rs)")
	rootCmd.PersistentFlags().String("engine", "http", "Fetch engine: http, headless")
	rootCmd.PersistentFlags().Bool("respect-robots", false, "Check robots.txt before each page fetch")
	rootCmd.PersistentFlags().Int("max-browsers", 4, "Concurrent browsers for --engine=headless")
	rootCmd.PersistentFlags().String("proxy-file", "", "Path to proxy list file")
	rootCmd.PersistentFlags().String("stock-mode", "random", "Stock estimator: random, fixed, redis")
	rootCmd.PersistentFlags().Int("stock-fixed", 0, "Stock value for --stock-mode=fixed")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Flags override env only when set explicitly.
	flags := rootCmd.PersistentFlags()
	if flags.Changed("base-url") {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}
	if flags.Changed("engine") {
		cfg.Engine, _ = flags.GetString("engine")
	}
	if flags.Changed("respect-robots") {
		cfg.RespectRobots, _ = flags.GetBool("respect-robots")
	}
	if flags.Changed("max-browsers") {
		if n, _ := flags.GetInt("max-browsers"); n > 0 {
			cfg.MaxBrowsers = n
		}
	}
	if flags.Changed("proxy-file") {
		cfg.ProxyFile, _ = flags.GetString("proxy-file")
	}
	if flags.Changed("stock-mode") {
		cfg.StockMode, _ = flags.GetString("stock-mode")
	}
	if flags.Changed("stock-fixed") {
		cfg.StockFixed, _ = flags.GetInt("stock-fixed")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	resetHTTPClient()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
}

// The HTTP client and its robots cache live for the whole process, so
// repeated MCP tool calls share connections and robots.txt lookups.
// initConfig drops it whenever the configuration is rebuilt.
var (
	clientMu   sync.Mutex
	httpClient *http.Client
)

func resetHTTPClient() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if httpClient != nil {
		httpClient.CloseIdleConnections()
		httpClient = nil
	}
}

// sharedHTTPClient returns the process-wide client, building it from config
// on first use.
func sharedHTTPClient() (*http.Client, error) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if httpClient != nil {
		return httpClient, nil
	}

	var proxy *transport.ProxyRotator
	if cfg.ProxyFile != "" {
		providers, err := transport.LoadProxyFile(cfg.ProxyFile)
		if err != nil {
			return nil, err
		}
		proxy = transport.NewProxyRotator(providers)
		logger.Info("proxy rotation enabled", "proxies", proxy.Len())
	}

	rt := &transport.Transport{
		Base:   httputil.NewPooledTransport(),
		Robots: transport.NewRobotsChecker(&http.Client{}, cfg.RespectRobots),
		Proxy:  proxy,
	}
	httpClient = httputil.NewHTTPClient(rt)
	return httpClient, nil
}

// initFetchers registers the available fetch engines.
func initFetchers() error {
	client, err := sharedHTTPClient()
	if err != nil {
		return err
	}
	platform.Register("http", sportvision.NewStaticFetcher(client))
	platform.Register("headless", sportvision.NewHeadlessFetcher(cfg.LauncherURL, cfg.MaxBrowsers))
	return nil
}

// newScraper wires the configured engine, stock estimator and parser. The
// returned release func frees the estimator and must be called once the
// scraper is done.
func newScraper(strict bool) (*sportvision.Scraper, func(), error) {
	if err := initFetchers(); err != nil {
		return nil, nil, err
	}
	fetcher, err := platform.Get(cfg.Engine)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (available: %v)", err, platform.List())
	}

	est, err := stock.New(stock.Options{
		Mode:          cfg.StockMode,
		Fixed:         cfg.StockFixed,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		RedisPrefix:   cfg.RedisPrefix,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := stock.Close(est); err != nil {
			logger.Warn("release stock estimator", "stock", est.Name(), "error", err)
		}
	}

	extractor, err := sportvision.NewExtractor(cfg.BaseURL, est, logger)
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("invalid base url: %w", err)
	}

	logger.Debug("scraper configured",
		"engine", fetcher.Name(),
		"stock", est.Name(),
		"base_url", cfg.BaseURL,
		"strict", strict,
	)
	s := sportvision.NewScraper(fetcher, sportvision.NewParser(extractor), sportvision.Options{
		BaseURL: cfg.BaseURL,
		Strict:  strict,
		Logger:  logger,
	})
	return s, release, nil
}

// runScrape is shared by the CLI commands and the MCP tools.
func runScrape(ctx context.Context, selections []models.Selection, strict bool) (*sportvision.Report, error) {
	s, release, err := newScraper(strict)
	if err != nil {
		return nil, err
	}
	defer release()
	return s.Run(ctx, selections)
}
