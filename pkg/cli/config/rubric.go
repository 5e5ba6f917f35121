package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Rubric holds rubric configuration
type Rubric struct {
	Path string
}

// Flags returns CLI flags for Rubric configuration
func (r *Rubric) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rubric",
			Usage:       "Path to a YAML rubric file (uses the built-in rubric if not set)",
			Category:    "Rubric",
			Sources:     cli.EnvVars("GROOMCTL_RUBRIC"),
			Destination: &r.Path,
		},
	}
}

// Configure loads the rubric from file or falls back to the built-in one.
// An invalid rubric fails here, before any session starts.
func (r *Rubric) Configure() (*model.Rubric, error) {
	if r.Path == "" {
		return model.DefaultRubric(), nil
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rubric file",
			goerr.V("path", r.Path))
	}

	var rubric model.Rubric
	if err := yaml.Unmarshal(data, &rubric); err != nil {
		return nil, goerr.Wrap(err, "failed to parse rubric file",
			goerr.V("path", r.Path))
	}

	if err := rubric.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid rubric file",
			goerr.V("path", r.Path))
	}

	return &rubric, nil
}

// LogValue returns structured log value
func (r Rubric) LogValue() slog.Value {
	path := r.Path
	if path == "" {
		path = "(built-in)"
	}
	return slog.GroupValue(
		slog.String("path", path),
	)
}
