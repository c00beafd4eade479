// Package cli implements the gemdic command line application.
package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spiralborn/gemdic/pkg/config"
	"github.com/spiralborn/gemdic/pkg/data"
	"github.com/spiralborn/gemdic/pkg/logging"
	"github.com/spiralborn/gemdic/pkg/resonance"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "gemdic"
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	dbFilePathFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the SQLite dictionary file (default: $HOME/.gemdic/words.db)",
	}

	memoryFilePathFlag = &cli.StringFlag{
		Name:  "memory",
		Usage: "Path to the resonance memory file (default: ./memory.json)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	DBPath     string
	MemoryPath string
	Debug      bool
	DB         *sql.DB
	Conf       *config.Config
}

func getConfig(c *cli.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Gematria word scoring with persisted pairwise resonance",
		Flags: []cli.Flag{
			debugFlag,
			dbFilePathFlag,
			memoryFilePathFlag,
			formatFlag,
		},
		Commands: []*cli.Command{
			scoreCmd,
			wordsCmd,
			reportCmd,
			memoryCmd,
			serverCmd,
		},
		Before: func(c *cli.Context) error {
			applyFlags(c)

			home := getHomeDir()
			conf, err := config.ReadOrCreate(home)
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			dbPath := c.String(dbFilePathFlag.Name)
			if dbPath == "" {
				dbPath = filepath.Join(home, data.DataFileName)
			}

			memPath := c.String(memoryFilePathFlag.Name)
			if memPath == "" {
				memPath = conf.MemoryPath
			}
			if memPath == "" {
				memPath = resonance.MemoryFileName
			}

			if err := data.Init(dbPath); err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}

			db, err := data.GetDB(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				DBPath:     dbPath,
				MemoryPath: memPath,
				Debug:      c.Bool(debugFlag.Name),
				DB:         db,
				Conf:       conf,
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.DB != nil {
				cfg.DB.Close()
			}
			return nil
		},
	}
}

// applyFlags handles flags that commands re-declare locally.
func applyFlags(c *cli.Context) {
	if c.Bool(debugFlag.Name) {
		logging.SetDefaultCLILogger("debug")
	}

	f := c.String(formatFlag.Name)
	if f == formatYAML || f == "yml" {
		outputFormat = formatYAML
	}
}

func getHomeDir() string {
	dir, created, err := config.GetOrCreateHomeDir(appName)
	if err != nil {
		slog.Debug("error getting app home dir, using current dir instead", "error", err)
		return "."
	}
	if created {
		slog.Debug("created app home dir", "path", dir)
	}
	return dir
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
