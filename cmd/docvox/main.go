// Command docvox is the main entry point for the DocVox voice command server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NithinRegidi/docvox/internal/config"
	"github.com/NithinRegidi/docvox/internal/observe"
	"github.com/NithinRegidi/docvox/internal/server"
	"github.com/NithinRegidi/docvox/internal/voice"
	"github.com/NithinRegidi/docvox/internal/voice/phonetic"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "docvox: config file %q not found, copy configs/example.yaml to get started\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "docvox: %v\n", err)
		}
		return 1
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	level := new(slog.LevelVar)
	level.Set(logLevel(cfg.Server.LogLevel))
	slog.SetDefault(newLogger(level))

	slog.Info("docvox starting",
		"version", version,
		"config", *configPath,
		"listen_addr", cfg.Server.ListenAddr,
		"log_level", cfg.Server.LogLevel,
	)

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName:    "docvox",
		ServiceVersion: version,
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	metrics := observe.DefaultMetrics()

	// ── Voice pipeline ────────────────────────────────────────────────────────
	if err := voice.ValidateCatalog(); err != nil {
		slog.Error("command catalog is broken", "err", err)
		return 1
	}

	bridge := server.NewBridge()

	sessionOpts := []voice.SessionOption{
		voice.WithMatcher(buildMatcher(cfg.Voice.Phonetic)),
		voice.WithMetrics(metrics),
		voice.WithErrorHandler(func(msg string) {
			slog.Warn("speech capture error", "err", msg)
		}),
	}
	if cfg.Voice.DefaultLocale != "" {
		sessionOpts = append(sessionOpts, voice.WithLocale(cfg.Voice.DefaultLocale))
	}
	if d := cfg.Voice.ProcessingDebounce(); d > 0 {
		sessionOpts = append(sessionOpts, voice.WithDebounce(d))
	}

	session := voice.NewSession(voice.Collaborators{
		Capture:    bridge,
		Synth:      bridge,
		Translator: bridge,
	}, sessionOpts...)

	// ── HTTP server ───────────────────────────────────────────────────────────
	srv := server.New(cfg.Server, session,
		server.WithBridge(bridge),
		server.WithMetrics(metrics),
	)

	// ── Config hot reload ─────────────────────────────────────────────────────
	watcher, err := config.NewWatcher(*configPath, func(old, new *config.Config) {
		d := config.Diff(old, new)
		if !d.Changed() {
			return
		}
		if d.LogLevelChanged {
			level.Set(logLevel(d.NewLogLevel))
			slog.Info("log level changed", "level", d.NewLogLevel)
		}
		if d.DefaultLocaleChanged {
			session.SetVoiceLanguage(d.NewDefaultLocale)
			slog.Info("command locale changed", "locale", d.NewDefaultLocale)
		}
		if d.DebounceChanged {
			session.SetDebounce(time.Duration(d.NewDebounceMs) * time.Millisecond)
			slog.Info("processing debounce changed", "ms", d.NewDebounceMs)
		}
		if d.PhoneticChanged {
			session.ReplaceMatcher(buildMatcher(d.NewPhonetic))
			slog.Info("phonetic correction stage rebuilt",
				"enabled", d.NewPhonetic.Enabled,
				"phonetic_threshold", d.NewPhonetic.PhoneticThreshold,
				"fuzzy_threshold", d.NewPhonetic.FuzzyThreshold,
			)
		}
	})
	if err != nil {
		slog.Warn("config hot reload disabled", "err", err)
	} else {
		defer watcher.Stop()
	}

	printStartupSummary(cfg)
	slog.Info("server ready, press Ctrl+C to shut down")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

// buildMatcher assembles the normaliser and intent matcher from the phonetic
// config block.
func buildMatcher(pc config.PhoneticConfig) *voice.Matcher {
	var normOpts []voice.NormalizerOption
	if pc.Enabled {
		var phonOpts []phonetic.Option
		if pc.PhoneticThreshold > 0 {
			phonOpts = append(phonOpts, phonetic.WithPhoneticThreshold(pc.PhoneticThreshold))
		}
		if pc.FuzzyThreshold > 0 {
			phonOpts = append(phonOpts, phonetic.WithFuzzyThreshold(pc.FuzzyThreshold))
		}
		normOpts = append(normOpts, voice.WithPhoneticMatcher(phonetic.New(phonOpts...)))
	}
	return voice.NewMatcher(voice.WithNormalizer(voice.NewNormalizer(normOpts...)))
}

// ── Startup summary ───────────────────────────────────────────────────────────

func printStartupSummary(cfg *config.Config) {
	fmt.Println("╔═══════════════════════════════════════╗")
	fmt.Println("║         DocVox startup summary        ║")
	fmt.Println("╠═══════════════════════════════════════╣")
	printRow("Listen addr", orDefault(cfg.Server.ListenAddr, ":8080"))
	printRow("Locale", orDefault(cfg.Voice.DefaultLocale, "en-IN"))
	if cfg.Voice.Phonetic.Enabled {
		printRow("Phonetic", "enabled")
	} else {
		printRow("Phonetic", "(disabled)")
	}
	if cfg.Server.TLS != nil {
		printRow("TLS", "enabled")
	} else {
		printRow("TLS", "(disabled)")
	}
	fmt.Println("╚═══════════════════════════════════════╝")
}

func printRow(key, value string) {
	if len(value) > 19 {
		value = value[:16] + "…"
	}
	fmt.Printf("║  %-15s : %-19s ║\n", key, value)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ── Logger ─────────────────────────────────────────────────────────────────────

func newLogger(level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func logLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogDebug:
		return slog.LevelDebug
	case config.LogWarn:
		return slog.LevelWarn
	case config.LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
