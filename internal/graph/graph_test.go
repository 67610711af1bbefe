package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameofgraphs/internal/parser"
)

func TestBuilder_FriendshipIsSymmetric(t *testing.T) {
	b := NewBuilder()
	b.AddFriendship("Alice", "Bob")
	b.AddFriendship("Bob", "Cersei Lannister")
	g := b.Build()

	assert.Equal(t, []string{"Alice", "Bob", "Cersei Lannister"}, g.People())
	assert.Equal(t, []string{"Bob"}, g.Friends("Alice"))
	assert.Equal(t, []string{"Alice", "Cersei Lannister"}, g.Friends("Bob"))
	assert.Equal(t, []string{"Bob"}, g.Friends("Cersei Lannister"))
	assert.True(t, g.HasPerson("Cersei Lannister"))
	assert.False(t, g.HasPerson("Jaime"))
	assert.Equal(t, 2, g.FriendshipCount())
}

func TestBuilder_RepeatedFriendshipIsASet(t *testing.T) {
	b := NewBuilder()
	b.AddFriendship("Alice", "Bob")
	b.AddFriendship("Bob", "Alice")
	g := b.Build()

	assert.Equal(t, []string{"Bob"}, g.Friends("Alice"))
	assert.Equal(t, []string{"Alice"}, g.Friends("Bob"))
}

func TestBuilder_FriendshipOrderIndependent(t *testing.T) {
	records := []parser.Relation{
		{From: "Alice", To: "Bob"},
		{From: "Bob", To: "Cersei"},
		{From: "Dany", To: "Alice"},
	}
	reversed := []parser.Relation{records[2], records[1], records[0]}

	first := FromRelations(records, nil)
	second := FromRelations(reversed, nil)

	require.Equal(t, first.People(), second.People())
	for _, name := range first.People() {
		assert.ElementsMatch(t, first.Friends(name), second.Friends(name), name)
	}
}

func TestBuilder_PlotsKeepOrderAndMultiplicity(t *testing.T) {
	b := NewBuilder()
	b.AddPlot("Jaime", "Cersei")
	b.AddPlot("Arya", "Jaime")
	b.AddPlot("Jaime", "Tyrion")
	b.AddPlot("Jaime", "Cersei")
	g := b.Build()

	assert.Equal(t, []string{"Cersei", "Tyrion", "Cersei"}, g.Targets("Jaime"))
	assert.Equal(t, []string{"Jaime", "Arya"}, g.Plotters())
	assert.Equal(t, 2, g.PlotCount("Jaime", "Cersei"))
	assert.Equal(t, 4, g.PlotRecordCount())
	assert.True(t, g.IsPlotting("Arya", "Jaime"))
	assert.False(t, g.IsPlotting("Jaime", "Arya"))
}

func TestBuilder_PlotDoesNotCreateTargetEntry(t *testing.T) {
	b := NewBuilder()
	b.AddPlot("Jaime", "Cersei")
	g := b.Build()

	assert.True(t, g.HasPlotter("Jaime"))
	assert.False(t, g.HasPlotter("Cersei"))
	assert.Empty(t, g.Targets("Cersei"))
	assert.False(t, g.HasPerson("Jaime"), "plots never touch the friendship side")
}

func TestGraph_PlottersAgainst(t *testing.T) {
	g := FromRelations(nil, []parser.Relation{
		{From: "Jaime", To: "Cersei"},
		{From: "Arya", To: "Cersei"},
		{From: "Jaime", To: "Cersei"},
		{From: "Tyrion", To: "Jaime"},
	})

	assert.Equal(t, []string{"Jaime", "Arya"}, g.PlottersAgainst("Cersei"))
	assert.Equal(t, []string{"Tyrion"}, g.PlottersAgainst("Jaime"))
	assert.Empty(t, g.PlottersAgainst("Tyrion"))
}

func TestGraph_IsImmutableAfterBuild(t *testing.T) {
	b := NewBuilder()
	b.AddFriendship("Alice", "Bob")
	b.AddPlot("Alice", "Bob")
	g := b.Build()

	b.AddFriendship("Alice", "Cersei")
	b.AddPlot("Alice", "Cersei")

	assert.Equal(t, []string{"Bob"}, g.Friends("Alice"))
	assert.Equal(t, []string{"Bob"}, g.Targets("Alice"))

	friends := g.Friends("Alice")
	friends[0] = "Mallory"
	assert.Equal(t, []string{"Bob"}, g.Friends("Alice"))
}

func TestGraph_NilIsEmpty(t *testing.T) {
	var g *Graph
	assert.Empty(t, g.People())
	assert.False(t, g.HasPerson("Alice"))
	assert.Zero(t, g.PlotCount("Alice", "Bob"))
}
