// Command wfc generates a grid with Wave Function Collapse and prints it as a
// YAML sample document.
//
// Usage:
//
//	wfc -config run.yaml [-seed N] [-width W] [-height H] [-out grid.yaml]
//	wfc -config run.yaml -resume state.wfc
//	wfc -record rules.xml -sample sample.yaml
//
// On contradiction the run is retried with the next seed, up to the configured
// number of retries. With slice_steps set, generation proceeds in slices and a
// snapshot is written after each one when a snapshot path is configured.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/config"
	"github.com/katalvlaran/wfc/ruleset"
	"github.com/katalvlaran/wfc/solver"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to run configuration (yaml)")
		samplePath = flag.String("sample", "", "sample document; overrides the configured sample")
		seed       = flag.Int64("seed", 0, "first seed; overrides the configured seed")
		width      = flag.Int("width", 0, "output width; overrides the configuration")
		height     = flag.Int("height", 0, "output height; overrides the configuration")
		outPath    = flag.String("out", "", "write the result here instead of stdout")
		resumePath = flag.String("resume", "", "continue from a snapshot written by an earlier run")
		recordPath = flag.String("record", "", "derive a rule document from -sample and write it here (.xml, .yaml, .json)")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *recordPath != "" {
		if err := record(*samplePath, *recordPath); err != nil {
			logger.WithError(err).Fatal("record")
		}
		logger.WithField("path", *recordPath).Info("rules written")
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			logger.WithError(err).Fatal("load config")
		}
		cfg = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sample":
			cfg.Sample = *samplePath
		case "seed":
			cfg.Seed = *seed
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("config")
	}

	cat, err := cfg.Catalog()
	if err != nil {
		logger.WithError(err).Fatal("build catalog")
	}
	logger.WithFields(logrus.Fields{
		"model":    cfg.Model,
		"patterns": cat.Len(),
		"n":        cat.PatternSize(),
	}).Info("catalog built")

	m, err := open(cat, cfg, *resumePath, logger)
	if err != nil {
		logger.WithError(err).Fatal("model")
	}

	if err := generate(m, cfg, logger); err != nil {
		logger.WithError(err).Fatal("generate")
	}

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.WithError(err).Fatal("create output")
		}
		defer f.Close()
		out = f
	}
	if err := render(out, m); err != nil {
		logger.WithError(err).Fatal("render")
	}
}

// open builds a fresh model or restores one from a snapshot.
func open(cat *catalog.Catalog, cfg config.Config, resume string, logger logrus.FieldLogger) (*solver.Model, error) {
	if resume == "" {
		return solver.New(cat, cfg.Width, cfg.Height, solver.WithPeriodic(cfg.Periodic), solver.WithLogger(logger))
	}
	f, err := os.Open(resume)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := solver.Restore(cat, f, solver.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"path":  resume,
		"steps": m.Steps(),
		"state": m.State().String(),
	}).Info("resumed from snapshot")
	return m, nil
}

var errExhausted = errors.New("every seed ended in contradiction")

// generate runs the model to success, moving to the next seed after each
// contradiction until the retries are spent.
func generate(m *solver.Model, cfg config.Config, logger logrus.FieldLogger) error {
	seed := cfg.Seed
	if s, ok := m.Seed(); ok {
		seed = s
	}
	for attempt := 0; attempt <= cfg.Retries; attempt++ {
		out := solver.Incomplete
		for out == solver.Incomplete {
			out = m.Run(seed, cfg.Budget())
			if cfg.Snapshot != "" && out != solver.Contradiction {
				if err := snapshot(m, cfg.Snapshot); err != nil {
					return err
				}
			}
		}
		if out == solver.Success {
			logger.WithFields(logrus.Fields{"seed": seed, "steps": m.Steps()}).Info("done")
			return nil
		}
		logger.WithField("seed", seed).Warn("contradiction, trying next seed")
		seed++
	}
	return fmt.Errorf("%w (%d attempts)", errExhausted, cfg.Retries+1)
}

func snapshot(m *solver.Model, path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := m.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func record(samplePath, outPath string) error {
	if samplePath == "" {
		return errors.New("-record needs -sample")
	}
	s, err := ruleset.LoadSample(samplePath)
	if err != nil {
		return err
	}
	return ruleset.Save(outPath, ruleset.Record(s))
}
