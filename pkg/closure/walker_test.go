package closure

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/filter"
)

// fakeGraph serves both dependency and manifest queries from maps.
type fakeGraph struct {
	deps      map[string][]string
	manifests map[string][]string
	depCalls  map[string]int
	fileCalls map[string]int
}

func newFakeGraph(deps map[string][]string, manifests map[string][]string) *fakeGraph {
	return &fakeGraph{
		deps:      deps,
		manifests: manifests,
		depCalls:  make(map[string]int),
		fileCalls: make(map[string]int),
	}
}

func (g *fakeGraph) DirectDeps(pkg string) ([]string, error) {
	g.depCalls[pkg]++
	return g.deps[pkg], nil
}

func (g *fakeGraph) Files(pkg string) ([]string, error) {
	g.fileCalls[pkg]++
	m, ok := g.manifests[pkg]
	if !ok {
		return nil, errors.Newf(errors.ErrPackageQuery, "unknown package %q", pkg)
	}
	return m, nil
}

func compileRules(t *testing.T, rules []filter.Rule) []filter.CompiledRule {
	t.Helper()
	compiled, err := filter.Compile(rules)
	require.NoError(t, err)
	return compiled
}

// The scenario from the assembler's contract: A→{B,C}, B→{C}, C owns no
// files, and a filter removes b2 from B.
func TestWalkScenario(t *testing.T) {
	g := newFakeGraph(
		map[string][]string{
			"A": {"B", "C"},
			"B": {"C"},
		},
		map[string][]string{
			"A": {"/x/a1"},
			"B": {"/x/b1", "/x/b2"},
			"C": {},
		},
	)
	rules := compileRules(t, []filter.Rule{{Package: "B", Files: []string{"b2"}}})

	w := New(Options{Deps: g, Resolver: g, Rules: rules})
	result, err := w.Walk([]string{"A"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/x/a1", "/x/b1"}, result.Plan.Dests())
	// C is enqueued by both A and B but visited exactly once
	assert.Equal(t, []string{"A", "B", "C"}, result.Processed)
	assert.Equal(t, 1, g.fileCalls["C"])
	assert.Equal(t, []string{"C"}, result.Pruned)
	// the empty manifest short-circuits the dependency query entirely
	assert.Zero(t, g.depCalls["C"])
}

func TestWalkVisitsEachReachablePackageOnce(t *testing.T) {
	// diamond: A→{B,C}, B→{D}, C→{D}
	g := newFakeGraph(
		map[string][]string{
			"A": {"B", "C"},
			"B": {"D"},
			"C": {"D"},
		},
		map[string][]string{
			"A": {"/a"},
			"B": {"/b"},
			"C": {"/c"},
			"D": {"/d"},
		},
	)

	w := New(Options{Deps: g, Resolver: g})
	result, err := w.Walk([]string{"A"})
	require.NoError(t, err)

	assert.Len(t, result.Processed, 4)
	for _, pkg := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, 1, g.fileCalls[pkg], "package %s", pkg)
		assert.Equal(t, 1, g.depCalls[pkg], "package %s", pkg)
	}
}

func TestWalkTerminatesOnCycles(t *testing.T) {
	// A→B→C→A plus self-loop on B
	cyclic := newFakeGraph(
		map[string][]string{
			"A": {"B"},
			"B": {"C", "B"},
			"C": {"A"},
		},
		map[string][]string{
			"A": {"/a"},
			"B": {"/b"},
			"C": {"/c"},
		},
	)
	acyclic := newFakeGraph(
		map[string][]string{
			"A": {"B"},
			"B": {"C"},
		},
		map[string][]string{
			"A": {"/a"},
			"B": {"/b"},
			"C": {"/c"},
		},
	)

	w := New(Options{Deps: cyclic, Resolver: cyclic})
	gotCyclic, err := w.Walk([]string{"A"})
	require.NoError(t, err)

	w = New(Options{Deps: acyclic, Resolver: acyclic})
	gotAcyclic, err := w.Walk([]string{"A"})
	require.NoError(t, err)

	assert.Equal(t, gotAcyclic.Plan, gotCyclic.Plan,
		"cycle edges must not change the plan")
	assert.Equal(t, gotAcyclic.Processed, gotCyclic.Processed)
}

// A package pruned for an empty manifest does not enqueue its children, but
// children reachable through another package are still visited. Seed order
// must not change the outcome.
func TestWalkEmptyManifestPruning(t *testing.T) {
	deps := map[string][]string{
		"empty": {"orphan", "shared"},
		"full":  {"shared"},
	}
	manifests := map[string][]string{
		"empty":  {},
		"full":   {"/f"},
		"orphan": {"/o"},
		"shared": {"/s"},
	}

	for _, seeds := range [][]string{{"empty", "full"}, {"full", "empty"}} {
		g := newFakeGraph(deps, manifests)
		w := New(Options{Deps: g, Resolver: g})
		result, err := w.Walk(seeds)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"/f", "/s"}, result.Plan.Dests(),
			"seeds %v", seeds)
		assert.NotContains(t, result.Processed, "orphan",
			"orphan is only reachable through the pruned package")
		assert.Contains(t, result.Processed, "shared")
	}
}

func TestWalkPruneDiagnosticReachesGlobalLog(t *testing.T) {
	var buf bytes.Buffer
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})

	g := newFakeGraph(
		map[string][]string{"empty": {"child"}},
		map[string][]string{"empty": {}, "child": {"/c"}},
	)

	// No Logger in Options: the prune diagnostic must still be emitted.
	w := New(Options{Deps: g, Resolver: g})
	_, err := w.Walk([]string{"empty"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "installs no files")
	assert.Contains(t, buf.String(), "empty")
}

func TestWalkIncludeEmptyDescends(t *testing.T) {
	g := newFakeGraph(
		map[string][]string{
			"empty": {"child"},
		},
		map[string][]string{
			"empty": {},
			"child": {"/c"},
		},
	)

	w := New(Options{Deps: g, Resolver: g, IncludeEmpty: true})
	result, err := w.Walk([]string{"empty"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/c"}, result.Plan.Dests())
	assert.Empty(t, result.Pruned)
}

func TestWalkDeduplicatesDestinations(t *testing.T) {
	// the same file owned by two packages enters the plan once
	g := newFakeGraph(
		map[string][]string{
			"A": {"B"},
		},
		map[string][]string{
			"A": {"/shared/licenses/COPYING", "/a"},
			"B": {"/shared/licenses/COPYING", "/b"},
		},
	)

	w := New(Options{Deps: g, Resolver: g})
	result, err := w.Walk([]string{"A"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/shared/licenses/COPYING", "/a", "/b"}, result.Plan.Dests())
}

func TestWalkFailuresAbort(t *testing.T) {
	t.Run("manifest failure", func(t *testing.T) {
		g := newFakeGraph(map[string][]string{}, map[string][]string{})

		w := New(Options{Deps: g, Resolver: g})
		_, err := w.Walk([]string{"ghost"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPackageQuery))
	})

	t.Run("dependency failure", func(t *testing.T) {
		g := newFakeGraph(
			map[string][]string{"A": {"ghost"}},
			map[string][]string{"A": {"/a"}},
		)

		w := New(Options{Deps: g, Resolver: g})
		_, err := w.Walk([]string{"A"})
		require.Error(t, err)
	})
}

func TestWalkFiltersFeedThePlan(t *testing.T) {
	g := newFakeGraph(
		map[string][]string{"gtk3": {"glib2"}},
		map[string][]string{
			"gtk3":  {"/bin/libgtk.dll", "/lib/libgtk.a", "/include/gtk.h"},
			"glib2": {"/bin/libglib.dll", "/lib/libglib.a"},
		},
	)
	rules := compileRules(t, []filter.Rule{
		{Package: ".*", Files: []string{`\.a$`, "^/include/"}},
	})

	w := New(Options{Deps: g, Resolver: g, Rules: rules})
	result, err := w.Walk([]string{"gtk3"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/bin/libgtk.dll", "/bin/libglib.dll"}, result.Plan.Dests())
}
