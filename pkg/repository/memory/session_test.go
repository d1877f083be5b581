package memory_test

import (
	"testing"

	"github.com/testgenius/testgenius/pkg/repository/memory"
	"github.com/testgenius/testgenius/pkg/repository/testhelper"
)

func TestMemorySessionRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
