package server

import (
	"context"
	"flag"
	"fmt"
	"net/http"

	"github.com/ironlog-io/ironlog/internal/api"
	"github.com/ironlog-io/ironlog/internal/auth"
	"github.com/ironlog-io/ironlog/internal/cmd/base"
	"github.com/ironlog-io/ironlog/internal/config"
	"github.com/ironlog-io/ironlog/internal/logbook"
	intsrv "github.com/ironlog-io/ironlog/internal/server"
	"github.com/ironlog-io/ironlog/pkg/storage/gdrive"
)

type Command struct {
	*base.Command

	flagConfig string
	flagAddr   string
}

func (c *Command) Synopsis() string {
	return "Run the IronLog server"
}

func (c *Command) Help() string {
	return `Usage: ironlog server -config=config.hcl

  This command runs the IronLog HTTP server against the configured
  Google Drive folder. Secrets may also be provided through the
  IRONLOG_* environment variables.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("server", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to config file",
	)
	f.StringVar(
		&c.flagAddr, "addr", "",
		"Listen address (overrides the config file)",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := config.NewConfig(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	if c.flagAddr != "" {
		cfg.ListenAddr = c.flagAddr
	}
	if err := cfg.Validate(); err != nil {
		c.UI.Error(fmt.Sprintf("invalid config: %v", err))
		return 1
	}

	ctx := context.Background()
	drv, err := gdrive.New(ctx, gdrive.Config{
		ClientID:     cfg.GDrive.ClientID,
		ClientSecret: cfg.GDrive.ClientSecret,
		RefreshToken: cfg.GDrive.RefreshToken,
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating Drive service: %v", err))
		return 1
	}

	srv := intsrv.Server{
		Config: cfg,
		Logbook: &logbook.Service{
			Provider: drv,
			FolderID: cfg.GDrive.FolderID,
			Logger:   c.Log,
		},
		Logger: c.Log,
	}

	requireAuth := auth.Bearer(cfg.APIKey, c.Log)

	mux := http.NewServeMux()
	mux.Handle("/health", api.HealthHandler(c.Log))
	mux.Handle("/logs", requireAuth(api.LogsHandler(srv)))
	mux.Handle("/logs/index", requireAuth(api.IndexHandler(srv)))
	mux.Handle("/logs/latest", requireAuth(api.LatestHandler(srv)))
	mux.Handle("/logs/latest_for_workout", requireAuth(api.LatestForWorkoutHandler(srv)))
	mux.Handle("/logs/latest_for_muscle", requireAuth(api.LatestForMuscleHandler(srv)))
	mux.Handle("/logs/by-date/", requireAuth(api.ByDateHandler(srv)))

	c.Log.Info("starting server", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, api.CORS(mux)); err != nil {
		c.UI.Error(fmt.Sprintf("server error: %v", err))
		return 1
	}

	return 0
}
