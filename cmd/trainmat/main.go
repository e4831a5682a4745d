// Command trainmat assembles a labeled feature matrix from a rated media
// dataset and one or more parameter-extraction results, splits it into
// training and verification tables, and optionally writes them out as CSV
// files or an Excel workbook.
//
// Usage:
//
//	trainmat -dataset media.csv -params vqm.csv,niqe.csv -format csv -out features.csv
//
// An empty -request extracts every parameter from every collection, in
// collection order. A YAML config file can stand in for the flags; flags
// given on the command line take precedence over the file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/jnawrocki/trainmat/assemble"
	"github.com/jnawrocki/trainmat/dataset"
	"github.com/jnawrocki/trainmat/export"
	"github.com/jnawrocki/trainmat/params"
)

// config mirrors the CLI flags so a run can be described in a YAML file.
type config struct {
	Dataset string   `yaml:"dataset"`
	Params  []string `yaml:"params"`
	Request []string `yaml:"request"`
	Format  string   `yaml:"format"`
	Out     string   `yaml:"out"`
	Plot    string   `yaml:"plot"`
}

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file; flags override its values")
		datasetPath = flag.String("dataset", "", "dataset CSV (columns: name,file,mos,category)")
		paramsList  = flag.String("params", "", "comma-separated parameter-result CSVs, in resolution order")
		requestList = flag.String("request", "", "comma-separated parameter names to extract (empty = all)")
		format      = flag.String("format", "none", "export format: csv, excel or none")
		out         = flag.String("out", "features.csv", "base output filename for the export")
		plotPath    = flag.String("plot", "", "optional path for a MOS-distribution plot (png)")
		verbose     = flag.Bool("v", false, "enable debug logging (reports shadowed duplicate parameters)")
	)
	flag.Parse()

	log := newLogger(*verbose)

	cfg := config{Format: *format, Out: *out}
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dataset":
			cfg.Dataset = *datasetPath
		case "params":
			cfg.Params = splitList(*paramsList)
		case "request":
			cfg.Request = splitList(*requestList)
		case "format":
			cfg.Format = *format
		case "out":
			cfg.Out = *out
		case "plot":
			cfg.Plot = *plotPath
		}
	})

	if cfg.Dataset == "" {
		log.Fatal().Msg("a dataset CSV is required (-dataset or config)")
	}
	if len(cfg.Params) == 0 {
		log.Fatal().Msg("at least one parameter-result CSV is required (-params or config)")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("assembly failed")
	}
}

func run(cfg config, log zerolog.Logger) error {
	ds, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	idx, err := dataset.BuildIndex(ds)
	if err != nil {
		return err
	}
	log.Info().Int("media", idx.Size()).Int("train", idx.TrainCount()).
		Int("verify", idx.VerifyCount()).Msg("dataset indexed")

	collections := make([]*params.Collection, 0, len(cfg.Params))
	for _, path := range cfg.Params {
		c, err := params.Load(path)
		if err != nil {
			return err
		}
		log.Info().Str("collection", c.Name).Int("parameters", len(c.ParNames)).
			Int("media", len(c.MediaNames)).Msg("parameter result loaded")
		collections = append(collections, c)
	}

	resolver := params.NewResolver(collections).WithLogger(log)
	assembled, err := assemble.Assemble(idx, resolver, cfg.Request)
	if err != nil {
		return err
	}
	split, err := assemble.Partition(assembled, idx)
	if err != nil {
		return err
	}
	log.Info().Int("columns", assembled.X.Cols).
		Int("train_rows", split.XTrain.Rows).Int("verify_rows", split.XVerify.Rows).
		Msg("matrix assembled")

	train, verify := export.BuildTables(split)
	if err := export.Write(train, verify, export.Format(cfg.Format), cfg.Out); err != nil {
		return err
	}
	if cfg.Format != string(export.FormatNone) {
		log.Info().Str("format", cfg.Format).Str("out", cfg.Out).Msg("tables written")
	}

	if cfg.Plot != "" {
		if err := plotMOS(split, cfg.Plot); err != nil {
			return err
		}
		log.Info().Str("plot", cfg.Plot).Msg("MOS distribution plotted")
	}
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = string(export.FormatNone)
	}
	if cfg.Out == "" {
		cfg.Out = "features.csv"
	}
	return cfg, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// plotMOS writes a histogram of the MOS labels of both splits so skew
// between training and verification material is visible at a glance.
func plotMOS(s *assemble.Split, outPath string) error {
	p := plot.New()
	p.Title.Text = "MOS distribution"
	p.X.Label.Text = "MOS"
	p.Y.Label.Text = "count"

	if len(s.YTrain) > 0 {
		h, err := plotter.NewHist(plotter.Values(s.YTrain), 16)
		if err != nil {
			return fmt.Errorf("failed to build training histogram: %w", err)
		}
		p.Add(h)
	}
	if len(s.YVerify) > 0 {
		h, err := plotter.NewHist(plotter.Values(s.YVerify), 16)
		if err != nil {
			return fmt.Errorf("failed to build verification histogram: %w", err)
		}
		// outline only, so the training bars stay visible underneath
		h.FillColor = nil
		p.Add(h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, outPath); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", outPath, err)
	}
	return nil
}
