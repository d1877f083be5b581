package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// DetectGitHubRepository reads owner and repository name from the origin remote
// of the git repository at dir.
func DetectGitHubRepository(dir string) (owner, repo string, err error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := r.Remote("origin")
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to get remote origin")
	}
	if len(remote.Config().URLs) == 0 {
		return "", "", goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	owner, repo, ok := ParseGitHubRemoteURL(url)
	if !ok {
		return "", "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}
	return owner, repo, nil
}

// ParseGitHubRemoteURL accepts SSH (git@github.com:owner/repo.git) and HTTPS
// (https://github.com/owner/repo.git) remotes.
func ParseGitHubRemoteURL(url string) (owner, repo string, ok bool) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		parts := strings.SplitN(url, "github.com/", 2)
		path = parts[1]
	default:
		return "", "", false
	}

	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	ownerRepo := strings.Split(path, "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return "", "", false
	}
	return ownerRepo[0], ownerRepo[1], true
}
