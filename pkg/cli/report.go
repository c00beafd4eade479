package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spiralborn/gemdic/pkg/data"
	"github.com/spiralborn/gemdic/pkg/gematria"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const layerAll = "all"

var (
	layerFlag = &cli.StringFlag{
		Name:  "layer",
		Usage: "Score layer to report on, or 'all' (default: configured layer)",
	}

	numberFlag = &cli.Float64Flag{
		Name:  "number",
		Usage: "Only show groups resonating at this value",
	}

	reportCmd = &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Shared-resonance report across the dictionary",
		UsageText: `gemdic report                      # configured layer, whole dictionary
   gemdic report --layer all          # every layer
   gemdic report --number 42          # only groups resonating at 42
   gemdic report --like Beans`,
		HideHelpCommand: true,
		Action:          cmdReport,
		Flags: []cli.Flag{
			layerFlag,
			numberFlag,
			likeFlag,
			limitFlag,
			debugFlag,
			formatFlag,
		},
	}
)

// ReportGroup is a set of words sharing one value under a layer.
type ReportGroup struct {
	Value  float64  `json:"value" yaml:"value"`
	Words  []string `json:"words" yaml:"words"`
	Prime  bool     `json:"prime,omitempty" yaml:"prime,omitempty"`
	Golden bool     `json:"golden,omitempty" yaml:"golden,omitempty"`
}

// LayerReport holds every shared-resonance group found under one layer.
type LayerReport struct {
	Layer  string        `json:"layer" yaml:"layer"`
	Groups []ReportGroup `json:"groups" yaml:"groups"`
}

// buildLayerReports groups words by value under each layer, keeping groups
// of two or more. Layers are independent, so they fan out in parallel.
func buildLayerReports(words []string, layers []gematria.Layer) ([]*LayerReport, error) {
	reports := make([]*LayerReport, len(layers))

	var g errgroup.Group
	for i, layer := range layers {
		g.Go(func() error {
			byValue := map[float64][]string{}
			for _, w := range words {
				v := layer.Score(w)
				byValue[v] = append(byValue[v], w)
			}

			lr := &LayerReport{Layer: layer.Name, Groups: []ReportGroup{}}
			for v, group := range byValue {
				if len(group) < 2 {
					continue
				}
				sort.Strings(group)
				lr.Groups = append(lr.Groups, ReportGroup{
					Value:  v,
					Words:  group,
					Prime:  isIntegralPrime(v),
					Golden: gematria.IsGoldenResonance(v),
				})
			}
			sort.Slice(lr.Groups, func(a, b int) bool {
				return lr.Groups[a].Value < lr.Groups[b].Value
			})
			reports[i] = lr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func isIntegralPrime(v float64) bool {
	return v == math.Trunc(v) && gematria.IsPrime(int(v))
}

func selectLayers(name string) ([]gematria.Layer, error) {
	layers := gematria.Layers()
	if strings.EqualFold(name, layerAll) {
		return layers, nil
	}
	for _, l := range layers {
		if strings.EqualFold(l.Name, name) {
			return []gematria.Layer{l}, nil
		}
	}

	names := make([]string, 0, len(layers))
	for _, l := range layers {
		names = append(names, l.Name)
	}
	return nil, fmt.Errorf("unknown layer: %s (available: %s)", name, strings.Join(names, ", "))
}

func cmdReport(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	layerName := c.String(layerFlag.Name)
	if layerName == "" {
		layerName = cfg.Conf.DefaultLayer
	}
	layers, err := selectLayers(layerName)
	if err != nil {
		return err
	}

	list, err := data.ListWords(cfg.DB, c.String(likeFlag.Name), c.Int(limitFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to list words: %w", err)
	}
	words := make([]string, 0, len(list))
	for _, w := range list {
		words = append(words, w.Value)
	}

	reports, err := buildLayerReports(words, layers)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	if c.IsSet(numberFlag.Name) {
		n := c.Float64(numberFlag.Name)
		for _, lr := range reports {
			kept := lr.Groups[:0]
			for _, g := range lr.Groups {
				if g.Value == n {
					kept = append(kept, g)
				}
			}
			lr.Groups = kept
		}
	}

	if err := encode(reports); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	return nil
}
