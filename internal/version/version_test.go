// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVars(t *testing.T, v, c, d string) {
	t.Helper()
	origV, origC, origD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origV, origC, origD })
	Version, Commit, Date = v, c, d
}

func TestFillFromBuildInfo(t *testing.T) {
	withVars(t, "dev", "none", "unknown")

	fillFromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	assert.Equal(t, "v1.2.3", Version)
	assert.Equal(t, "0123456", Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", Date)
}

func TestFillFromBuildInfo_LdflagsWin(t *testing.T) {
	withVars(t, "0.4.0", "abcdef0", "2025-12-31")

	fillFromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	assert.Equal(t, "0.4.0", Version)
	assert.Equal(t, "abcdef0", Commit)
	assert.Equal(t, "2025-12-31", Date)
}

func TestInfo(t *testing.T) {
	withVars(t, "0.4.0", "abcdef0", "2025-12-31")

	assert.Equal(t, "defaultgen version 0.4.0 (commit: abcdef0, built: 2025-12-31, go: "+runtime.Version()+")", Info())
	assert.Equal(t, "0.4.0", Short())
	assert.Equal(t, BuildInfo{Version: "0.4.0", Commit: "abcdef0", Date: "2025-12-31", GoVersion: runtime.Version()}, Get())
}
