package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/cli/config"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
	"github.com/refinery-lab/groomctl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdReview() *cli.Command {
	var (
		firestoreCfg config.Firestore
		rubricCfg    config.Rubric
		sourceCfg    config.Source
		slackCfg     config.Slack

		projectKey string
		maxItems   int
		output     string
		format     string
	)

	flags := joinFlags(
		firestoreCfg.Flags(),
		rubricCfg.Flags(),
		sourceCfg.Flags(),
		slackCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "project",
				Usage:       "Project key of the backlog to groom (e.g. PROJ)",
				Required:    true,
				Sources:     cli.EnvVars("GROOMCTL_PROJECT"),
				Destination: &projectKey,
			},
			&cli.IntFlag{
				Name:        "max-items",
				Usage:       "Maximum number of backlog items to review",
				Value:       10,
				Sources:     cli.EnvVars("GROOMCTL_MAX_ITEMS"),
				Destination: &maxItems,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Write the session report to this file (stdout if not set)",
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
		Name:  "review",
		Usage: "Run an interactive grooming session",
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

			src, err := sourceCfg.Configure(logger)
			if err != nil {
				return err
			}

			reviewUC, err := usecase.NewReview(repo, rubric)
			if err != nil {
				return goerr.Wrap(err, "failed to create review use case")
			}

			items, err := src.FetchItems(ctx, projectKey, maxItems)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch backlog items",
					goerr.V("project", projectKey))
			}
			if len(items) == 0 {
				logger.Info("No backlog items found", slog.String("project", projectKey))
				return nil
			}

			session, err := reviewUC.StartSession(ctx, projectKey)
			if err != nil {
				return err
			}
			logger.Info("Grooming session started",
				slog.String("sessionID", session.ID.String()),
				slog.String("project", projectKey),
				slog.Int("items", len(items)),
			)

			p := newPrompter(os.Stdin, os.Stdout)
			if err := runReviewLoop(ctx, p, reviewUC, session.ID, items); err != nil {
				return err
			}

			report, err := reviewUC.CompleteSession(ctx, session.ID)
			if err != nil {
				return err
			}

			if err := writeReport(renderer, report, output); err != nil {
				return err
			}

			if slackClient := slackCfg.ConfigureOptional(logger); slackClient != nil {
				notifyUC, err := usecase.NewNotify(slackClient, slackCfg.Channel)
				if err != nil {
					return err
				}
				if err := notifyUC.PostSessionSummary(ctx, report); err != nil {
					// The session itself succeeded, so only warn
					logger.Warn("Failed to post session summary to Slack",
						slog.Any("error", err))
				}
			}

			return nil
		},
	}
}

// runReviewLoop walks the operator through each backlog item
func runReviewLoop(ctx context.Context, p *prompter, reviewUC usecase.Review, sessionID types.SessionID, items []*model.BacklogItem) error {
	rubric := reviewUC.Rubric()

	for i, item := range items {
		p.printf("\n%s\n", itemBanner(item, i+1, len(items)))

		answers := make(map[types.CriterionID]bool, len(rubric.Criteria))
		for _, criterion := range rubric.Criteria {
			answer, err := p.AskYesNo(criterion.Question)
			if err != nil {
				return err
			}
			answers[criterion.ID] = answer
		}

		eval, err := model.NewEvaluation(item.Key, item.Title, answers)
		if err != nil {
			return err
		}

		result, err := reviewUC.ScoreItem(ctx, sessionID, eval)
		if err != nil {
			return err
		}

		p.printf("\nScore: %.1f%% - %s\n", result.Percentage, result.Tier)

		if result.EligibleForEstimate() {
			points, err := p.AskStoryPoints()
			if err != nil {
				return err
			}
			if points != nil {
				if _, err := reviewUC.SetStoryPoints(ctx, sessionID, item.Key, *points); err != nil {
					return err
				}
				p.printf("Story points recorded: %d\n", *points)
			}
		}

		if i < len(items)-1 {
			next, err := p.AskYesNo("Continue to next item?")
			if err != nil {
				return err
			}
			if !next {
				break
			}
		}
	}

	return nil
}
