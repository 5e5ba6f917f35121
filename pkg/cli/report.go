package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/cli/config"
	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
	"github.com/refinery-lab/groomctl/pkg/service/report"
	"github.com/refinery-lab/groomctl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var (
		firestoreCfg config.Firestore
		rubricCfg    config.Rubric

		sessionID string
		output    string
		format    string
	)

	flags := joinFlags(
		firestoreCfg.Flags(),
		rubricCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "session",
				Usage:       "ID of the session to report on",
				Required:    true,
				Sources:     cli.EnvVars("GROOMCTL_SESSION"),
				Destination: &sessionID,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Write the report to this file (stdout if not set)",
				Sources:     cli.EnvVars("GROOMCTL_OUTPUT"),
				Destination: &output,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Report format (markdown, json)",
				Value:       "markdown",
				Sources:     cli.EnvVars("GROOMCTL_FORMAT"),
				Destination: &format,
			},
		},
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Render the report of a stored grooming session",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			renderer, err := newRenderer(format)
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			rubric, err := rubricCfg.Configure()
			if err != nil {
				return err
			}

			reviewUC, err := usecase.NewReview(repo, rubric)
			if err != nil {
				return goerr.Wrap(err, "failed to create review use case")
			}

			sessionReport, err := reviewUC.BuildReport(ctx, types.SessionID(sessionID))
			if err != nil {
				return err
			}

			logger.Info("Rendering session report",
				slog.String("sessionID", sessionID),
				slog.String("format", format),
				slog.Int("items", sessionReport.Summary.TotalItems),
			)

			return writeReport(renderer, sessionReport, output)
		},
	}
}

// newRenderer picks a report renderer by format name
func newRenderer(format string) (interfaces.ReportRenderer, error) {
	switch format {
	case "markdown", "":
		return report.NewMarkdown(), nil
	case "json":
		return report.NewJSON(), nil
	default:
		return nil, goerr.New("unsupported report format", goerr.V("format", format))
	}
}

// writeReport renders the report to a file or stdout
func writeReport(renderer interfaces.ReportRenderer, sessionReport *model.SessionReport, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return goerr.Wrap(err, "failed to create report file",
				goerr.V("path", output))
		}
		defer f.Close()
		w = f
	}

	if err := renderer.Render(w, sessionReport); err != nil {
		return goerr.Wrap(err, "failed to render report")
	}

	return nil
}
