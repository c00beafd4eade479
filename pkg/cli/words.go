package cli

import (
	"fmt"
	"os"

	"github.com/spiralborn/gemdic/pkg/data"
	"github.com/urfave/cli/v2"
)

var (
	wordFlag = &cli.StringFlag{
		Name:     "word",
		Aliases:  []string{"w"},
		Usage:    "Word or phrase",
		Required: true,
	}

	originFlag = &cli.StringFlag{
		Name:  "origin",
		Usage: "Origin label stored with the word (default: _CLI_)",
		Value: "_CLI_",
	}

	likeFlag = &cli.StringFlag{
		Name:  "like",
		Usage: "Fuzzy word filter",
	}

	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Limits number of results returned",
	}

	fileFlag = &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Wordlist file, one word or phrase per line",
		Required: true,
	}

	wordsCmd = &cli.Command{
		Name:            "words",
		Aliases:         []string{"w"},
		Usage:           "Maintain the word dictionary",
		HideHelpCommand: true,
		Subcommands: []*cli.Command{
			{
				Name:    "add",
				Usage:   "Add a word or phrase to the dictionary",
				Aliases: []string{"a"},
				Action:  cmdWordAdd,
				Flags:   []cli.Flag{wordFlag, originFlag, formatFlag},
			},
			{
				Name:    "remove",
				Usage:   "Remove a word from the dictionary",
				Aliases: []string{"rm"},
				Action:  cmdWordRemove,
				Flags:   []cli.Flag{wordFlag},
			},
			{
				Name:    "list",
				Usage:   "List dictionary words",
				Aliases: []string{"l"},
				Action:  cmdWordList,
				Flags:   []cli.Flag{likeFlag, limitFlag, formatFlag},
			},
			{
				Name:    "import",
				Usage:   "Import a wordlist file into the dictionary",
				Aliases: []string{"i"},
				Action:  cmdWordImport,
				Flags:   []cli.Flag{fileFlag, originFlag, formatFlag},
			},
			{
				Name:   "state",
				Usage:  "Show dictionary counts",
				Action: cmdWordState,
				Flags:  []cli.Flag{formatFlag},
			},
		},
	}
)

func cmdWordAdd(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	w, err := data.AddWord(cfg.DB, c.String(wordFlag.Name), c.String(originFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to add word: %w", err)
	}
	if err := encode(w); err != nil {
		return fmt.Errorf("error encoding word: %w", err)
	}
	return nil
}

func cmdWordRemove(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	if err := data.DeleteWord(cfg.DB, c.String(wordFlag.Name)); err != nil {
		return fmt.Errorf("failed to remove word: %w", err)
	}
	return nil
}

func cmdWordList(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	list, err := data.ListWords(cfg.DB, c.String(likeFlag.Name), c.Int(limitFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to list words: %w", err)
	}
	if err := encode(list); err != nil {
		return fmt.Errorf("error encoding list: %w", err)
	}
	return nil
}

func cmdWordImport(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	path := c.String(fileFlag.Name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening wordlist %s: %w", path, err)
	}
	defer f.Close()

	n, err := data.ImportWords(cfg.DB, f, c.String(originFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to import wordlist: %w", err)
	}

	if err := encode(map[string]int{"imported": n}); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func cmdWordState(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	state, err := data.GetDataState(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to get dictionary state: %w", err)
	}
	if err := encode(state); err != nil {
		return fmt.Errorf("error encoding state: %w", err)
	}
	return nil
}
