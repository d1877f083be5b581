package model

import (
	"fmt"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

type RepositoryRef struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	FullName      string `json:"fullName"`
	Description   string `json:"description,omitempty"`
	Stars         int    `json:"stars"`
	Language      string `json:"language,omitempty"`
	DefaultBranch string `json:"defaultBranch,omitempty"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"htmlUrl,omitempty"`
}

// RepositoryPageSize is the only page requested when listing repositories. Accounts
// with more repositories see the first page only.
const RepositoryPageSize = 100

// RepositoriesTruncated reports whether a listing may have hit the page limit.
func RepositoriesTruncated(repos []*RepositoryRef) bool {
	return len(repos) >= RepositoryPageSize
}

// FetchErrorPrefix marks file content that could not be fetched. Such files stay in
// the listing so the client can see them but never reach generation.
const FetchErrorPrefix = "Error fetching content: "

type FileRef struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Type    string `json:"type"`
	Size    int    `json:"size"`
	Content string `json:"content"`
}

func NewFetchFailedFile(name, path string, size int, cause error) *FileRef {
	return &FileRef{
		Name:    name,
		Path:    path,
		Type:    "file",
		Size:    size,
		Content: FetchErrorPrefix + cause.Error(),
	}
}

func (x *FileRef) FetchFailed() bool {
	return strings.HasPrefix(x.Content, FetchErrorPrefix)
}

// UsableFiles drops entries whose content could not be fetched.
func UsableFiles(files []*FileRef) []*FileRef {
	usable := make([]*FileRef, 0, len(files))
	for _, f := range files {
		if f != nil && !f.FetchFailed() {
			usable = append(usable, f)
		}
	}
	return usable
}

// FileSelection is an ordered set of files taken from one repository listing.
type FileSelection []*FileRef

func (x FileSelection) Validate() error {
	if len(x) == 0 {
		return goerr.Wrap(types.ErrValidation, "no file is selected")
	}
	seen := make(map[string]struct{}, len(x))
	for _, f := range x {
		if f == nil {
			return goerr.Wrap(types.ErrValidation, "nil file in selection")
		}
		if f.FetchFailed() {
			return goerr.Wrap(types.ErrValidation, "file content could not be fetched", goerr.V("path", f.Path))
		}
		if _, ok := seen[f.Path]; ok {
			return goerr.Wrap(types.ErrValidation, "duplicated file in selection", goerr.V("path", f.Path))
		}
		seen[f.Path] = struct{}{}
	}
	return nil
}

// CombinedContent renders all selected files into one prompt section.
func (x FileSelection) CombinedContent() string {
	blocks := make([]string, 0, len(x))
	for _, f := range x {
		blocks = append(blocks, fmt.Sprintf("--- File: %s (%s) ---\n```\n%s\n```\n", f.Name, f.Path, f.Content))
	}
	return strings.Join(blocks, "\n\n")
}

func (x FileSelection) Paths() []string {
	paths := make([]string, len(x))
	for i, f := range x {
		paths[i] = f.Path
	}
	return paths
}

type ListFilesInput struct {
	Owner string
	Repo  string
	Path  string
}

func (x *ListFilesInput) Validate() error {
	if x.Owner == "" || x.Repo == "" {
		return goerr.Wrap(types.ErrValidation, "owner and repo are required",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.Repo),
		)
	}
	return nil
}

const (
	PullRequestBranchPrefix = "ai-generated-tests/"
	PullRequestFileDir      = "generated_tests"
	DefaultPullRequestBody  = "This pull request introduces AI-generated test cases to improve code coverage and reliability."
)

type PullRequestInput struct {
	Owner        string `json:"owner"`
	Repo         string `json:"repo"`
	FileName     string `json:"fileName"`
	FileContents string `json:"fileContents"`
	Title        string `json:"prTitle"`
	Body         string `json:"prBody"`
}

func (x *PullRequestInput) Validate() error {
	if x.Owner == "" || x.Repo == "" {
		return goerr.Wrap(types.ErrValidation, "owner and repo are required")
	}
	if x.FileName == "" {
		return goerr.Wrap(types.ErrValidation, "file name is required")
	}
	if strings.Contains(x.FileName, "..") || strings.HasPrefix(x.FileName, "/") {
		return goerr.Wrap(types.ErrValidation, "file name must stay in the generated tests directory", goerr.V("fileName", x.FileName))
	}
	if x.FileContents == "" {
		return goerr.Wrap(types.ErrValidation, "file contents are required")
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidation, "pull request title is required")
	}
	return nil
}

func (x *PullRequestInput) FilePath() string {
	return PullRequestFileDir + "/" + x.FileName
}

func (x *PullRequestInput) CommitMessage() string {
	return "feat: Add AI-generated tests for " + x.FileName
}

func PullRequestBranch(token int64) types.BranchName {
	return types.BranchName(fmt.Sprintf("%s%d", PullRequestBranchPrefix, token))
}

// TestFileName inserts ".test" before the extension: "app.js" becomes "app.test.js".
func TestFileName(name string) string {
	ext := path.Ext(name)
	if ext == "" || ext == name {
		return name + ".test"
	}
	return strings.TrimSuffix(name, ext) + ".test" + ext
}

func DefaultPullRequestTitle(fileName string) string {
	return "feat: Add AI-generated tests for " + fileName
}

type PullRequestResult struct {
	URL    string           `json:"prUrl"`
	Number int              `json:"number"`
	Branch types.BranchName `json:"branch"`
}
