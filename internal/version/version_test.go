package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldCommit, oldBuild := Commit, BuildTime
	t.Cleanup(func() { Commit, BuildTime = oldCommit, oldBuild })

	Commit = "0123456789abcdef"
	BuildTime = "2026-10-01T00:00:00Z"
	assert.Equal(t, "guildmaster dev (commit: 0123456, built: 2026-10-01T00:00:00Z)", String())

	Commit = "abc"
	assert.Equal(t, "guildmaster dev (commit: abc, built: 2026-10-01T00:00:00Z)", String())
}
