package defense

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameofgraphs/internal/graph"
)

const cersei = "Cersei Lannister"

type fixture struct {
	b *graph.Builder
}

func newFixture() *fixture {
	return &fixture{b: graph.NewBuilder()}
}

func (f *fixture) friends(a, b string) *fixture {
	f.b.AddFriendship(a, b)
	return f
}

func (f *fixture) plot(plotter, target string) *fixture {
	f.b.AddPlot(plotter, target)
	return f
}

func resolve(t *testing.T, g *graph.Graph, radius int) *Report {
	t.Helper()
	r, err := NewResolver(cersei, radius)
	require.NoError(t, err)
	return r.Resolve(g)
}

func TestResolve_NoThreatsIsSafe(t *testing.T) {
	g := newFixture().friends("Jaime", cersei).b.Build()

	report := resolve(t, g, 2)

	assert.True(t, report.Safe())
	assert.Empty(t, report.Threats)
	_, exposed := report.Exposed()
	assert.False(t, exposed)
}

func TestResolve_UnneutralizedThreat(t *testing.T) {
	g := newFixture().
		friends("Jaime", "Tyrion").
		friends("Tyrion", cersei).
		plot("Jaime", cersei).
		b.Build()

	report := resolve(t, g, 2)

	assert.False(t, report.Safe())
	assert.Equal(t, []string{"Jaime"}, report.Threats)
	exposed, ok := report.Exposed()
	require.True(t, ok)
	assert.Equal(t, "Jaime", exposed)
}

func TestResolve_SingleRelay(t *testing.T) {
	g := newFixture().
		friends("Jaime", "Tyrion").
		friends("Tyrion", cersei).
		plot("Jaime", cersei).
		plot("Tyrion", "Jaime").
		b.Build()

	report := resolve(t, g, 2)

	require.Len(t, report.Relays, 1)
	assert.Equal(t, "Tyrion -> Jaime", report.Relays[0].String())
	assert.True(t, report.Safe())
}

func TestResolve_RelayRequiresCloseFriend(t *testing.T) {
	// Varys is three hops away with a radius of two.
	g := newFixture().
		friends(cersei, "Tyrion").
		friends("Tyrion", "Bronn").
		friends("Bronn", "Varys").
		plot("Jaime", cersei).
		plot("Varys", "Jaime").
		b.Build()

	report := resolve(t, g, 2)

	assert.Empty(t, report.Relays)
	assert.Equal(t, []string{"Jaime"}, report.Unresolved)
}

func TestResolve_ProtectedIsNotACloseFriend(t *testing.T) {
	g := newFixture().
		friends(cersei, "Tyrion").
		plot("Jaime", cersei).
		plot(cersei, "Jaime").
		b.Build()

	report := resolve(t, g, 2)

	assert.Empty(t, report.Relays)
	assert.Equal(t, []string{"Jaime"}, report.Unresolved)
}

func TestResolve_RelayPrefersClosestFriend(t *testing.T) {
	g := newFixture().
		friends(cersei, "Zed").
		friends(cersei, "Tyrion").
		friends("Tyrion", "Aaron").
		plot("Jaime", cersei).
		plot("Aaron", "Jaime").
		plot("Zed", "Jaime").
		plot("Tyrion", "Jaime").
		b.Build()

	report := resolve(t, g, 2)

	require.Len(t, report.Relays, 1)
	// Tyrion and Zed are both one hop away; Tyrion sorts first.
	assert.Equal(t, Relay{Friend: "Tyrion", Threat: "Jaime"}, report.Relays[0])
}

func TestResolve_CloseAllyIsARelay(t *testing.T) {
	g := newFixture().
		friends(cersei, "Tyrion").
		friends(cersei, "Jaime").
		plot("Euron", cersei).
		plot("Jaime", "Euron").
		plot("Bronn", "Jaime").
		plot("Tyrion", "Bronn").
		b.Build()

	report := resolve(t, g, 1)

	// Jaime plots against Euron but Jaime is close: that is a relay, not a chain.
	require.Len(t, report.Relays, 1)
	assert.Equal(t, "Jaime -> Euron", report.Relays[0].String())
	assert.Empty(t, report.Chains)
	assert.True(t, report.Safe())
}

func TestResolve_ChainThroughDistantAlly(t *testing.T) {
	// Tyrion (close friend) -> Bronn (counter-plotter) -> Jaime (ally, two
	// hops from Cersei) -> Euron (threat).
	g := newFixture().
		friends(cersei, "Tyrion").
		friends("Tyrion", "Jaime").
		plot("Euron", cersei).
		plot("Jaime", "Euron").
		plot("Bronn", "Jaime").
		plot("Tyrion", "Bronn").
		b.Build()

	report := resolve(t, g, 1)

	assert.Empty(t, report.Relays)
	require.Len(t, report.Chains, 1)
	assert.Equal(t, "Tyrion -> Bronn -> Jaime -> Euron", report.Chains[0].String())
	assert.True(t, report.Safe())

	report = resolve(t, g, 2)
	// With radius 2 Jaime becomes a close friend and resolves Euron directly.
	require.Len(t, report.Relays, 1)
	assert.Equal(t, "Jaime -> Euron", report.Relays[0].String())
}

func TestResolve_ChainThroughProtectedAlly(t *testing.T) {
	// The protected person is an ally of herself: she plots against the
	// threat, which does not count as a relay, but can anchor a chain.
	g := newFixture().
		friends(cersei, "Tyrion").
		plot("Euron", cersei).
		plot(cersei, "Euron").
		plot("Bronn", cersei).
		plot("Tyrion", "Bronn").
		b.Build()

	report := resolve(t, g, 1)

	// Bronn is a direct threat resolved by relay; Euron needs the chain.
	require.Len(t, report.Relays, 1)
	assert.Equal(t, "Tyrion -> Bronn", report.Relays[0].String())
	require.Len(t, report.Chains, 1)
	assert.Equal(t, Chain{Friend: "Tyrion", CounterPlotter: "Bronn", Ally: cersei, Threat: "Euron"}, report.Chains[0])
	assert.Equal(t, "Tyrion -> Bronn -> Cersei Lannister -> Euron", report.Chains[0].String())
	assert.True(t, report.Safe())
}

func TestResolve_ChainIgnoresAllyMissingFromFriendships(t *testing.T) {
	g := newFixture().
		friends(cersei, "Tyrion").
		plot("Euron", cersei).
		plot("Stranger", "Euron").
		plot("Bronn", "Stranger").
		plot("Tyrion", "Bronn").
		b.Build()

	report := resolve(t, g, 3)

	assert.Empty(t, report.Chains)
	assert.Equal(t, []string{"Euron"}, report.Unresolved)
}

func TestResolve_ChainIsDeterministic(t *testing.T) {
	build := func() *graph.Graph {
		return newFixture().
			friends(cersei, "Tyrion").
			friends(cersei, "Arya").
			friends("Tyrion", "Sansa").
			friends("Sansa", "Jaime").
			plot("Euron", cersei).
			plot("Jaime", "Euron").
			plot(cersei, "Euron").
			plot("Bronn", "Jaime").
			plot("Varys", "Jaime").
			plot("Sansa", "Bronn").
			plot("Tyrion", "Varys").
			plot("Arya", "Varys").
			b.Build()
	}

	first := resolve(t, build(), 2)
	for i := 0; i < 20; i++ {
		again := resolve(t, build(), 2)
		assert.Equal(t, first.Chains, again.Chains)
	}
	require.Len(t, first.Chains, 1)
	// Ally Jaime is examined first (he plotted first); Bronn is his first
	// counter-plotter and Sansa the only close friend plotting against him.
	assert.Equal(t, Chain{Friend: "Sansa", CounterPlotter: "Bronn", Ally: "Jaime", Threat: "Euron"}, first.Chains[0])
}

func TestResolve_ReportsFirstUnresolvedThreat(t *testing.T) {
	g := newFixture().
		friends(cersei, "Tyrion").
		plot("Euron", cersei).
		plot("Jaime", cersei).
		plot("Tyrion", "Jaime").
		plot("Littlefinger", cersei).
		b.Build()

	report := resolve(t, g, 2)

	assert.Equal(t, []string{"Euron", "Jaime", "Littlefinger"}, report.Threats)
	assert.Equal(t, []string{"Euron", "Littlefinger"}, report.Unresolved)
	exposed, _ := report.Exposed()
	assert.Equal(t, "Euron", exposed)
}

func TestResolve_DuplicatePlotsCountOnce(t *testing.T) {
	g := newFixture().
		friends(cersei, "Tyrion").
		plot("Jaime", cersei).
		plot("Jaime", cersei).
		b.Build()

	report := resolve(t, g, 2)

	assert.Equal(t, []string{"Jaime"}, report.Threats)
	assert.Equal(t, []string{"Jaime"}, report.Unresolved)
}

func TestResolve_ProtectedAbsentFromFriendships(t *testing.T) {
	g := newFixture().
		friends("Tyrion", "Bronn").
		plot("Jaime", cersei).
		plot("Tyrion", "Jaime").
		b.Build()

	report := resolve(t, g, 2)

	assert.Empty(t, report.Relays)
	assert.Equal(t, []string{"Jaime"}, report.Unresolved)
}

func TestResolve_ConfigurableProtected(t *testing.T) {
	g := newFixture().
		friends("Daenerys", "Jorah").
		plot("Varys", "Daenerys").
		plot("Jorah", "Varys").
		b.Build()

	r, err := NewResolver("Daenerys", 1)
	require.NoError(t, err)
	report := r.Resolve(g)

	assert.Equal(t, "Daenerys", report.Protected)
	require.Len(t, report.Relays, 1)
	assert.Equal(t, "Jorah -> Varys", report.Relays[0].String())
}

func TestNewResolver_Validation(t *testing.T) {
	_, err := NewResolver("  ", 2)
	assert.ErrorIs(t, err, ErrNoProtected)

	_, err = NewResolver(cersei, -1)
	assert.ErrorIs(t, err, ErrNegativeRadius)
}

func TestResolve_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := newFixture().friends(cersei, "Tyrion").plot("Jaime", cersei).b.Build()

	r, err := NewResolver(cersei, 1, WithLogger(logger))
	require.NoError(t, err)
	r.Resolve(g)

	assert.Contains(t, buf.String(), "threat unresolved")
	assert.Contains(t, buf.String(), "threat=Jaime")
}
