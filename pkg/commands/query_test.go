package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/payload/pkg/errors"
)

func TestDeps(t *testing.T) {
	mgr, _ := runtimeFixture(t)

	t.Run("direct", func(t *testing.T) {
		deps, err := Deps(DepsOptions{Package: "app-runtime", Direct: true, Manager: mgr})
		require.NoError(t, err)
		assert.Equal(t, []string{"gtk3"}, deps)
	})

	t.Run("transitive", func(t *testing.T) {
		deps, err := Deps(DepsOptions{Package: "app-runtime", Manager: mgr})
		require.NoError(t, err)
		assert.Equal(t, []string{"gtk3", "glib2"}, deps)
	})

	t.Run("no package", func(t *testing.T) {
		_, err := Deps(DepsOptions{Manager: mgr})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestFiles(t *testing.T) {
	mgr, cfg := runtimeFixture(t)

	t.Run("filtered", func(t *testing.T) {
		files, err := Files(FilesOptions{Package: "gtk3", Config: cfg, Resolv: mgr})
		require.NoError(t, err)
		assert.Equal(t, []string{"/mingw64/bin/libgtk-3-0.dll"}, files)
	})

	t.Run("raw", func(t *testing.T) {
		files, err := Files(FilesOptions{Package: "gtk3", Raw: true, Config: cfg, Resolv: mgr})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/mingw64/bin/libgtk-3-0.dll",
			"/mingw64/lib/libgtk-3.dll.a",
		}, files)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, err := Files(FilesOptions{Package: "nope", Config: cfg, Resolv: mgr})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPackageQuery))
	})
}

func TestPlan(t *testing.T) {
	mgr, cfg := runtimeFixture(t)

	result, err := Plan(PlanOptions{
		Seeds:   []string{"app-runtime"},
		Config:  cfg,
		Manager: mgr,
		Resolv:  mgr,
	})
	require.NoError(t, err)
	assert.Len(t, result.Processed, 3)
	assert.Len(t, result.Plan, 3)
}

func TestInstall(t *testing.T) {
	mgr, _ := runtimeFixture(t)

	require.NoError(t, Install(InstallOptions{Packages: []string{"gtk3", "glib2"}, Manager: mgr}))
	assert.Equal(t, [][]string{{"gtk3", "glib2"}}, mgr.Installed)

	err := Install(InstallOptions{Manager: mgr})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	mgr.FailInstall = true
	err = Install(InstallOptions{Packages: []string{"gtk3"}, Manager: mgr})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSubprocess))
}
