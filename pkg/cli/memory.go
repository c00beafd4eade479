package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spiralborn/gemdic/pkg/resonance"
	"github.com/urfave/cli/v2"
)

var memoryCmd = &cli.Command{
	Name:            "memory",
	Aliases:         []string{"m"},
	Usage:           "Inspect or manage the resonance memory file",
	HideHelpCommand: true,
	Subcommands: []*cli.Command{
		{
			Name:    "show",
			Usage:   "Dump the full memory map",
			Aliases: []string{"s"},
			Action:  cmdMemoryShow,
			Flags:   []cli.Flag{formatFlag},
		},
		{
			Name:   "reset",
			Usage:  "Delete the memory file and start fresh",
			Action: cmdMemoryReset,
		},
		{
			Name:    "graph",
			Usage:   "Export the memory as a node/edge graph",
			Aliases: []string{"g"},
			Action:  cmdMemoryGraph,
			Flags:   []cli.Flag{formatFlag},
		},
	},
}

func cmdMemoryShow(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	mem := resonance.Load(cfg.MemoryPath)
	if err := encode(mem); err != nil {
		return fmt.Errorf("error encoding memory: %w", err)
	}
	return nil
}

func cmdMemoryReset(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	if err := os.Remove(cfg.MemoryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting memory file: %w", err)
	}
	slog.Info("memory reset", "path", cfg.MemoryPath)
	return nil
}

func cmdMemoryGraph(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	mem := resonance.Load(cfg.MemoryPath)
	if err := encode(mem.Graph()); err != nil {
		return fmt.Errorf("error encoding graph: %w", err)
	}
	return nil
}
