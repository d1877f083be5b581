package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

func (x *UseCase) ListRepositories(ctx context.Context, identity model.Identity) ([]*model.RepositoryRef, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	repos, err := x.clients.GitHub().ListRepositories(ctx, identity.Token, model.RepositoryPageSize)
	if err != nil {
		return nil, goerr.Wrap(types.ErrUpstream, "failed to fetch repositories from GitHub",
			goerr.V("login", identity.Profile.Login),
			goerr.V("error", err.Error()),
		)
	}

	logging.From(ctx).Debug("Listed repositories",
		slog.String("login", identity.Profile.Login),
		slog.Int("count", len(repos)),
	)
	return repos, nil
}

// ListFiles lists one directory level and downloads the content of every file in
// it. A file whose content cannot be downloaded is returned with the fetch error
// encoded in its content instead of failing the whole listing.
func (x *UseCase) ListFiles(ctx context.Context, identity model.Identity, input model.ListFilesInput) ([]*model.FileRef, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := x.clients.GitHub().GetContents(ctx, identity.Token, input.Owner, input.Repo, input.Path)
	if err != nil {
		return nil, goerr.Wrap(types.ErrUpstream, "failed to fetch files from GitHub repository",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
			goerr.V("error", err.Error()),
		)
	}

	var files []*model.FileRef
	for _, e := range entries {
		if e != nil && e.Type == "file" {
			files = append(files, e)
		}
	}

	results := make([]*model.FileRef, len(files))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(x.fetchLimit)

	for i, f := range files {
		eg.Go(func() error {
			content, err := x.clients.GitHub().GetFileContent(egCtx, identity.Token, input.Owner, input.Repo, f.Path)
			if err != nil {
				logging.From(ctx).Warn("Could not fetch file content",
					slog.String("path", f.Path),
					slog.String("error", err.Error()),
				)
				results[i] = model.NewFetchFailedFile(f.Name, f.Path, f.Size, err)
				return nil
			}

			results[i] = &model.FileRef{
				Name:    f.Name,
				Path:    f.Path,
				Type:    f.Type,
				Size:    f.Size,
				Content: content,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch file contents")
	}

	return results, nil
}
