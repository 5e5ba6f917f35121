package config

import (
	"log/slog"

	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/service/source"
	"github.com/urfave/cli/v3"
)

// Source holds backlog item source configuration
type Source struct {
	ItemsFile string
}

// Flags returns CLI flags for Source configuration
func (s *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "items-file",
			Usage:       "Path to a YAML file with backlog items (uses built-in sample items if not set)",
			Category:    "Source",
			Sources:     cli.EnvVars("GROOMCTL_ITEMS_FILE"),
			Destination: &s.ItemsFile,
		},
	}
}

// Configure creates the backlog item source
func (s *Source) Configure(logger *slog.Logger) (interfaces.ItemSource, error) {
	if s.ItemsFile == "" {
		logger.Warn("No items file configured, using built-in sample items")
		return source.NewMock(), nil
	}

	return source.NewFile(s.ItemsFile)
}

// LogValue returns structured log value
func (s Source) LogValue() slog.Value {
	file := s.ItemsFile
	if file == "" {
		file = "(built-in samples)"
	}
	return slog.GroupValue(
		slog.String("items_file", file),
	)
}
