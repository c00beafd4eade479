package cli

import (
	"fmt"
	"log/slog"

	"github.com/spiralborn/gemdic/pkg/gematria"
	"github.com/spiralborn/gemdic/pkg/resonance"
	"github.com/urfave/cli/v2"
)

var scoreCmd = &cli.Command{
	Name:      "score",
	Aliases:   []string{"s"},
	Usage:     "Score words under every cipher and record resonant pairs",
	ArgsUsage: "WORD [WORD...]",
	UsageText: `gemdic score CAT BAT        # score two words, persist resonant pairs
   gemdic score "Forty Two"    # phrases work too
   gemdic --format yaml score Beans Spiral`,
	HideHelpCommand: true,
	Action:          cmdScore,
	Flags: []cli.Flag{
		debugFlag,
		formatFlag,
	},
}

// CipherScore is one word's value under one cipher.
type CipherScore struct {
	Cipher string `json:"cipher" yaml:"cipher"`
	Value  int    `json:"value" yaml:"value"`
	Prime  bool   `json:"prime" yaml:"prime"`
}

// WordScore is the full scoring record for one input word.
type WordScore struct {
	Word   string        `json:"word" yaml:"word"`
	Scores []CipherScore `json:"scores" yaml:"scores"`
	Binary string        `json:"binary" yaml:"binary"`
	Simple int           `json:"simple" yaml:"simple"`
}

// ScoreReport is the encoded result of a score run.
type ScoreReport struct {
	Words  []*WordScore     `json:"words" yaml:"words"`
	Pairs  []resonance.Pair `json:"resonant_pairs,omitempty" yaml:"resonant_pairs,omitempty"`
	Memory resonance.Memory `json:"memory" yaml:"memory"`
}

// buildScoreReport computes scores and resonant pairs for the input words.
// Pure: memory load/update/save wraps around it in the command action.
func buildScoreReport(words []string) *ScoreReport {
	r := &ScoreReport{Words: make([]*WordScore, 0, len(words))}
	scored := make([]resonance.ScoredWord, 0, len(words))

	for _, w := range words {
		ws := &WordScore{
			Word:   w,
			Scores: make([]CipherScore, 0, len(gematria.Ciphers)),
			Binary: gematria.BinaryString(w),
		}
		for _, c := range gematria.Ciphers {
			v := c.Score(w)
			ws.Scores = append(ws.Scores, CipherScore{
				Cipher: c.Name,
				Value:  v,
				Prime:  gematria.IsPrime(v),
			})
		}
		ws.Simple = gematria.Simple.Score(w)
		r.Words = append(r.Words, ws)
		scored = append(scored, resonance.ScoredWord{Word: w, Score: ws.Simple})
	}

	// resonance is judged under the simple cipher only
	r.Pairs = resonance.FindPairs(scored, resonance.Threshold)
	return r
}

func cmdScore(c *cli.Context) error {
	applyFlags(c)

	words := c.Args().Slice()
	if len(words) == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	report := buildScoreReport(words)
	for _, p := range report.Pairs {
		slog.Debug("resonant pair", "pair", p.String())
	}

	mem := resonance.Load(cfg.MemoryPath)
	mem.Record(report.Pairs)
	if err := resonance.Save(cfg.MemoryPath, mem); err != nil {
		return fmt.Errorf("persisting resonance memory: %w", err)
	}
	report.Memory = mem

	if err := encode(report); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	return nil
}
