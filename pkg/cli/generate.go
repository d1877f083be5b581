package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/testgenius/testgenius/pkg/cli/config"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra"
	"github.com/testgenius/testgenius/pkg/usecase"
	"github.com/testgenius/testgenius/pkg/utils/logging"
	"github.com/testgenius/testgenius/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type generateOptions struct {
	files        []string
	framework    string
	summaryIndex int64
	output       string

	createPR    bool
	githubToken types.GitHubAccessToken
	owner       string
	repo        string
	prTitle     string
	prBody      string
}

func generateCommand() *cli.Command {
	var (
		opts     generateOptions
		gemini   config.Gemini
		bigQuery config.BigQuery
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen", "g"},
		Usage:   "Generate test scenarios and test code for local files",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringSliceFlag{
				Name:        "file",
				Aliases:     []string{"i"},
				Usage:       "Source file to generate tests for (repeatable)",
				Destination: &opts.files,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "framework",
				Usage:       "Override the test framework suggested by the scenario",
				Destination: &opts.framework,
			},
			&cli.Int64Flag{
				Name:        "summary-index",
				Usage:       "Index of the generated scenario to turn into test code",
				Destination: &opts.summaryIndex,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Write generated test code to the file [-|<file>]",
				Value:       "-",
				Destination: &opts.output,
			},
			&cli.BoolFlag{
				Name:        "create-pr",
				Usage:       "Open a pull request with the generated test code",
				Destination: &opts.createPR,
			},
			&cli.StringFlag{
				Name:        "github-token",
				Usage:       "GitHub access token used to open the pull request",
				Category:    "Pull Request",
				Sources:     cli.EnvVars("TESTGENIUS_GITHUB_TOKEN", "GITHUB_TOKEN"),
				Destination: (*string)(&opts.githubToken),
			},
			&cli.StringFlag{
				Name:        "github-owner",
				Usage:       "GitHub repository owner (auto-detect from git if not specified)",
				Category:    "Pull Request",
				Sources:     cli.EnvVars("TESTGENIUS_GITHUB_OWNER"),
				Destination: &opts.owner,
			},
			&cli.StringFlag{
				Name:        "github-repo",
				Usage:       "GitHub repository name (auto-detect from git if not specified)",
				Category:    "Pull Request",
				Sources:     cli.EnvVars("TESTGENIUS_GITHUB_REPO"),
				Destination: &opts.repo,
			},
			&cli.StringFlag{
				Name:        "pr-title",
				Usage:       "Pull request title",
				Category:    "Pull Request",
				Destination: &opts.prTitle,
			},
			&cli.StringFlag{
				Name:        "pr-body",
				Usage:       "Pull request body",
				Category:    "Pull Request",
				Destination: &opts.prBody,
			},
		}, gemini.Flags(), bigQuery.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Debug("starting generate",
				slog.Any("Files", opts.files),
				slog.Any("Gemini", gemini),
				slog.Any("BigQuery", &bigQuery),
			)

			genAI, err := gemini.NewClient(ctx)
			if err != nil {
				return err
			}
			infraOptions := []infra.Option{infra.WithGenAI(genAI)}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			clients := infra.New(infraOptions...)
			uc := usecase.New(clients, gemini.UseCaseOptions()...)

			out := io.Writer(os.Stdout)
			if opts.output != "-" {
				f, err := os.Create(filepath.Clean(opts.output))
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", opts.output))
				}
				defer safe.Close(f)
				out = f
			}

			return runGenerate(ctx, uc, clients.GitHub(), opts, out)
		},
	}
}

func readSelection(paths []string) (model.FileSelection, error) {
	files := make(model.FileSelection, 0, len(paths))
	for _, p := range paths {
		raw, err := os.ReadFile(filepath.Clean(p))
		if err != nil {
			return nil, goerr.Wrap(types.ErrValidation, "failed to read source file",
				goerr.V("path", p),
				goerr.V("error", err.Error()),
			)
		}
		files = append(files, &model.FileRef{
			Name:    filepath.Base(p),
			Path:    filepath.ToSlash(p),
			Type:    "file",
			Size:    len(raw),
			Content: string(raw),
		})
	}
	return files, nil
}

func runGenerate(ctx context.Context, uc interfaces.UseCase, github interfaces.GitHub, opts generateOptions, out io.Writer) error {
	files, err := readSelection(opts.files)
	if err != nil {
		return err
	}

	var identity *model.Identity
	if opts.createPR {
		if opts.githubToken == "" {
			return goerr.Wrap(types.ErrValidation, "GitHub token is required to create a pull request")
		}
		if opts.owner == "" || opts.repo == "" {
			owner, repo, err := DetectGitHubRepository(".")
			if err != nil {
				return err
			}
			if opts.owner == "" {
				opts.owner = owner
			}
			if opts.repo == "" {
				opts.repo = repo
			}
		}

		profile, err := github.GetAuthenticatedUser(ctx, opts.githubToken)
		if err != nil {
			return goerr.Wrap(err, "failed to resolve GitHub user of the token")
		}
		identity = &model.Identity{Profile: *profile, Token: opts.githubToken}
	}

	summaries, err := uc.GenerateSummaries(ctx, identity, files)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		return goerr.New("no test scenario was identified for the files", goerr.V("files", files.Paths()))
	}
	for i, s := range summaries {
		logging.From(ctx).Info("test scenario",
			slog.Int("index", i),
			slog.String("framework", s.Framework),
			slog.String("summary", s.Summary),
		)
	}

	if opts.summaryIndex < 0 || int(opts.summaryIndex) >= len(summaries) {
		return goerr.Wrap(types.ErrValidation, "summary index is out of range",
			goerr.V("index", opts.summaryIndex),
			goerr.V("summaries", len(summaries)),
		)
	}
	summary := summaries[opts.summaryIndex]

	code, err := uc.GenerateCode(ctx, identity, model.GenerateCodeInput{
		OriginalContent: files.CombinedContent(),
		Summary:         summary,
		Framework:       opts.framework,
	})
	if err != nil {
		return err
	}

	if _, err := io.WriteString(out, strings.TrimRight(code.Code, "\n")+"\n"); err != nil {
		return goerr.Wrap(err, "failed to write generated code")
	}

	if !opts.createPR {
		return nil
	}

	pr, err := uc.CreatePullRequest(ctx, *identity, model.PullRequestInput{
		Owner:        opts.owner,
		Repo:         opts.repo,
		FileName:     model.TestFileName(files[0].Name),
		FileContents: code.Code,
		Title:        opts.prTitle,
		Body:         opts.prBody,
	})
	if err != nil {
		return err
	}

	logging.From(ctx).Info("Pull Request created successfully!",
		slog.String("url", pr.URL),
		slog.Any("branch", pr.Branch),
	)
	return nil
}
