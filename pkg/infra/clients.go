package infra

import (
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/infra/gh"
	"github.com/testgenius/testgenius/pkg/repository/memory"
)

type Clients struct {
	github            interfaces.GitHub
	genAI             interfaces.GenAI
	oauth             interfaces.OAuth
	bqClient          interfaces.BigQuery
	sessionRepository interfaces.SessionRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		github:            gh.New(),
		sessionRepository: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) GenAI() interfaces.GenAI {
	return x.genAI
}
func (x *Clients) OAuth() interfaces.OAuth {
	return x.oauth
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) SessionRepository() interfaces.SessionRepository {
	return x.sessionRepository
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGenAI(client interfaces.GenAI) Option {
	return func(x *Clients) {
		x.genAI = client
	}
}

func WithOAuth(client interfaces.OAuth) Option {
	return func(x *Clients) {
		x.oauth = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithSessionRepository(repo interfaces.SessionRepository) Option {
	return func(x *Clients) {
		x.sessionRepository = repo
	}
}
