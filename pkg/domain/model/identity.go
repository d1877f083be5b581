package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

// PublicProfile is the part of the GitHub user profile that may be sent to a client.
type PublicProfile struct {
	ID         int64  `json:"id" firestore:"id"`
	Login      string `json:"login" firestore:"login"`
	Name       string `json:"name,omitempty" firestore:"name"`
	AvatarURL  string `json:"avatarUrl,omitempty" firestore:"avatar_url"`
	ProfileURL string `json:"profileUrl,omitempty" firestore:"profile_url"`
}

type Identity struct {
	Profile PublicProfile           `json:"profile" firestore:"profile"`
	Token   types.GitHubAccessToken `json:"-" firestore:"token" masq:"secret"`
}

func (x *Identity) Validate() error {
	if x == nil {
		return goerr.Wrap(types.ErrUnauthenticated, "identity is nil")
	}
	if x.Token == "" {
		return goerr.Wrap(types.ErrUnauthenticated, "access token is empty", goerr.V("login", x.Profile.Login))
	}
	if x.Profile.Login == "" {
		return goerr.Wrap(types.ErrUnauthenticated, "login is empty")
	}
	return nil
}

const DefaultSessionTTL = 24 * time.Hour

type Session struct {
	ID        types.SessionID `json:"id" firestore:"id"`
	Identity  Identity        `json:"identity" firestore:"identity"`
	CreatedAt time.Time       `json:"created_at" firestore:"created_at"`
	ExpiresAt time.Time       `json:"expires_at" firestore:"expires_at"`
}

func NewSession(identity Identity, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        types.NewSessionID(),
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (x *Session) Expired(now time.Time) bool {
	return !now.Before(x.ExpiresAt)
}
