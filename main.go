package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"kopadb/cmd/web"
	"kopadb/config"
	"kopadb/database"
	"kopadb/executor"
	"kopadb/lending"
	"kopadb/logging"
	"kopadb/shell"
	"kopadb/storage"
)

var (
	configPath = flag.String("config", "", "path of the YAML config file")
	driver     = flag.String("driver", "", "snapshot driver: file, sqlite or mysql")
	snapshot   = flag.String("snapshot", "", "snapshot path for the file and sqlite drivers")
	dsn        = flag.String("dsn", "", "mysql DSN for the mysql driver")
	logLevel   = flag.String("log-level", "", "log level")
	withLender = flag.Bool("lending", false, "install the lending tables and hook")
	httpAddr   = flag.String("http", "", "serve the lending API on this address instead of the shell")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("kopadb stopped")
		os.Exit(1)
	}
}

// applyFlags lets flags set on the command line override the config file.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "driver":
			cfg.Snapshot.Driver = *driver
		case "snapshot":
			cfg.Snapshot.Path = *snapshot
		case "dsn":
			cfg.Snapshot.DSN = *dsn
		case "log-level":
			cfg.Log.Level = *logLevel
		case "lending":
			cfg.Lending.Enabled = *withLender
		case "http":
			cfg.Web.Addr = *httpAddr
		}
	})
}

func run(cfg *config.Config, log *logrus.Logger) error {
	store, err := storage.Open(cfg.Snapshot.Driver, cfg.Target(), cfg.Snapshot.Table)
	if err != nil {
		return err
	}
	log.WithField("driver", cfg.Snapshot.Driver).Info("snapshot store opened")

	db, err := database.New(store, database.WithLogger(log))
	if err != nil {
		store.Close()
		return err
	}
	defer db.Close()

	if cfg.Web.Addr != "" {
		return web.RunServer(db, log, cfg.Web.Addr)
	}

	if cfg.Lending.Enabled {
		if err := lending.Install(db); err != nil {
			return err
		}
		if err := lending.Seed(db); err != nil {
			return err
		}
	}

	exec := executor.New(db, executor.ImplicitPrimaryKey(cfg.Shell.ImplicitPrimaryKey))
	sh := shell.New(db, exec, os.Stdin, os.Stdout,
		shell.WithPrompt(cfg.Shell.Prompt),
		shell.WithLogger(log),
	)
	return sh.Run()
}
