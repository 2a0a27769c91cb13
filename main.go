package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/travel-blog-backend/api"
	"github.com/rpupo63/travel-blog-backend/config"
	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rpupo63/travel-blog-backend/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	settings := config.Load(config.New())
	setupLogging(settings.Log)

	if err := settings.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().Str("dbType", settings.Database.Type).Msg("Initializing app...")

	driver := database.DriverPostgres
	if settings.Database.Type == "sqlite" {
		driver = database.DriverSQLite
	}
	gormDB, err := database.Open(database.Options{
		Driver:       driver,
		DSN:          settings.Database.DSN(),
		ReplicaDSNs:  settings.Database.ReplicaURLs,
		MaxOpenConns: settings.Database.MaxOpenConns,
		MaxIdleConns: settings.Database.MaxIdleConns,
		Logger:       log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	currentDB := database.New(gormDB)
	defer currentDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := currentDB.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("error testing database connection")
	}

	// If generating a schema drift report, run it and exit
	if settings.Database.SchemaReport {
		reportSchema(ctx, currentDB)
		return
	}

	if settings.Database.AutoMigrate {
		if err := currentDB.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("error migrating database")
		}
	}

	if settings.Admin.Username != "" {
		if _, err := services.EnsureAdmin(ctx, currentDB.UserRepo(), settings.Admin.Username, settings.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("error provisioning admin account")
		}
	}

	opts := []api.Option{
		api.WithSite(api.SiteInfo{
			URL:         settings.Site.URL,
			Name:        settings.Site.Name,
			Description: settings.Site.Description,
		}),
	}

	switch settings.Media.Store {
	case "s3":
		store, err := services.NewS3Store(ctx, settings.Media.S3Bucket, settings.Media.S3Region, settings.Media.S3Prefix, settings.Media.PublicURL)
		if err != nil {
			log.Fatal().Err(err).Msg("error configuring s3 media store")
		}
		opts = append(opts, api.WithUploads(services.NewMediaService(store), ""))
	case "local":
		store := services.NewLocalStore(settings.Media.LocalDir, settings.Media.PublicURL)
		opts = append(opts, api.WithUploads(services.NewMediaService(store), store.Dir()))
	}

	if settings.Mail.Enabled() {
		mailer := services.NewResendMailer(settings.Mail.ResendAPIKey, settings.Mail.From)
		opts = append(opts, api.WithContactNotifier(services.NewContactNotifier(mailer, settings.Mail.NotifyTo, settings.Site.Name)))
	}

	errChannel := make(chan error, 2)

	server := api.NewServer(currentDB, settings.Server, opts...)
	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
}

func setupLogging(settings config.LogSettings) {
	level, err := zerolog.ParseLevel(settings.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if settings.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func reportSchema(ctx context.Context, db database.Database) {
	drift, err := db.SchemaReport(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating schema report")
	}

	clean := true
	for _, table := range drift {
		if table.Clean() {
			continue
		}
		clean = false
		log.Warn().
			Str("table", table.Table).
			Bool("missing", table.Missing).
			Strs("extraColumns", table.ExtraColumns).
			Strs("absentColumns", table.AbsentColumns).
			Msg("schema drift")
	}
	if clean {
		log.Info().Int("tables", len(drift)).Msg("schema matches models")
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
