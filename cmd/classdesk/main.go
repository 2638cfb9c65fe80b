package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/classdesk/classdesk/internal/database"
	"github.com/classdesk/classdesk/internal/importer"
	"github.com/classdesk/classdesk/internal/logging"
	"github.com/classdesk/classdesk/internal/web"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	port      int
	bind      string
	dbPath    string
	importDir string
	verbosity int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "classdesk",
		Short: "Classdesk - Tuition centre management server",
		Long:  `Classdesk manages a tuition centre's students, batches, attendance, fees, timetable and messaging over a JSON API backed by SQLite.`,
		RunE:  run,
	}

	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (required, or set PORT env var)")
	rootCmd.Flags().StringVarP(&bind, "bind", "b", "", "IP address to bind to (e.g., 127.0.0.1, 0.0.0.0)")
	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "./student_management.db", "SQLite database path (or set DB_PATH env var)")
	rootCmd.Flags().StringVarP(&importDir, "import-dir", "i", "", "Directory watched for timetable CSV drops (or set IMPORT_DIR env var)")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("classdesk %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Optional .env next to the binary, flags still win
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded .env file")
	}

	if port == 0 {
		if envPort := os.Getenv("PORT"); envPort != "" {
			if _, err := fmt.Sscanf(envPort, "%d", &port); err != nil {
				return fmt.Errorf("invalid PORT environment variable %q: %w", envPort, err)
			}
		}
	}
	if dbPath == "./student_management.db" {
		if envDB := os.Getenv("DB_PATH"); envDB != "" {
			dbPath = envDB
		}
	}
	if importDir == "" {
		importDir = os.Getenv("IMPORT_DIR")
	}

	if port == 0 {
		return fmt.Errorf("--port flag or PORT environment variable is required")
	}
	if bind != "" {
		if ip := net.ParseIP(bind); ip == nil {
			return fmt.Errorf("invalid bind address: %s", bind)
		}
	}

	logging.Apply(levelForVerbosity(verbosity), logging.FilePathForDB(dbPath))

	log.Info().
		Str("version", version).
		Int("port", port).
		Str("bind", bind).
		Str("database", dbPath).
		Msg("Starting Classdesk")

	db, err := database.New(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	server := web.NewServer(db, port, bind)

	// Nightly maintenance while nobody is in the building
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		if err := db.Optimize(); err != nil {
			log.Warn().Err(err).Msg("Nightly optimize failed")
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule maintenance job")
	}
	scheduler.Start()
	defer scheduler.Stop()

	if importDir != "" {
		watcher := importer.NewWatcher(importer.New(db), importDir)
		if err := watcher.Start(); err != nil {
			log.Warn().Err(err).Str("dir", importDir).Msg("Failed to start timetable import watcher")
		} else {
			defer watcher.Stop()
			log.Info().Str("dir", importDir).Msg("Watching for timetable CSV drops")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}

	log.Info().Msg("Classdesk stopped")
	return nil
}

func levelForVerbosity(verbosity int) string {
	switch verbosity {
	case 0:
		return "info"
	case 1:
		return "debug"
	default:
		return "trace"
	}
}
