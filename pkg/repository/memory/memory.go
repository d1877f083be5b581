package memory

import (
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/model"
)

// New creates a new in-memory session repository
func New() interfaces.SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*model.Session),
	}
}
