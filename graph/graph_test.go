package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testRule is a minimal Rule implementation for tests.
type testRule struct {
	id      string
	typ     string
	inputs  []string
	outputs []string
	tags    []string
	expr    string
}

func (r testRule) ID() string         { return r.id }
func (r testRule) Type() string       { return r.typ }
func (r testRule) Inputs() []string   { return r.inputs }
func (r testRule) Outputs() []string  { return r.outputs }
func (r testRule) Tags() []string     { return r.tags }
func (r testRule) Expression() string { return r.expr }

func ruleIDs(rules []Rule) []string {
	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = r.ID()
	}
	return ids
}

func TestBuildRejectsSameOutputAsInput(t *testing.T) {
	_, err := Build([]Rule{
		testRule{id: "r1", inputs: []string{"a"}, outputs: []string{"a"}},
	})
	require.Error(t, err)
	require.True(t, ErrSameOutputAsInput.Is(err))
}

func TestBuildRejectsMultipleProducers(t *testing.T) {
	_, err := Build([]Rule{
		testRule{id: "r1", inputs: []string{}, outputs: []string{"x"}},
		testRule{id: "r2", inputs: []string{}, outputs: []string{"x"}},
	})
	require.Error(t, err)
	require.True(t, ErrMultipleProducers.Is(err))
}

func TestBuildDetectsCycle(t *testing.T) {
	_, err := Build([]Rule{
		testRule{id: "r1", inputs: []string{"x"}, outputs: []string{"y"}},
		testRule{id: "r2", inputs: []string{"y"}, outputs: []string{"x"}},
	})
	require.Error(t, err)
	require.True(t, ErrGraphContainsCycle.Is(err))
}

func TestSelectProducerBeforeConsumer(t *testing.T) {
	r1 := testRule{id: "R1", inputs: []string{"a"}, outputs: []string{"b"}, expr: `{"*":[{"var":"a"},2]}`}
	r2 := testRule{id: "R2", inputs: []string{"b"}, outputs: []string{"c"}, expr: `{"+":[{"var":"b"},1]}`}
	g, err := Build([]Rule{r1, r2})
	require.NoError(t, err)

	selected := g.Select([]Query{{Key: "c", Kind: AttributePath}})
	require.Equal(t, []string{"R1", "R2"}, ruleIDs(selected))
}

func TestSelectDeduplicatesAcrossQueries(t *testing.T) {
	r1 := testRule{id: "R1", inputs: []string{"a"}, outputs: []string{"b"}}
	r2 := testRule{id: "R2", inputs: []string{"b"}, outputs: []string{"c"}}
	g, err := Build([]Rule{r1, r2})
	require.NoError(t, err)

	selected := g.Select([]Query{
		{Key: "c", Kind: AttributePath},
		{Key: "b", Kind: AttributePath},
	})
	require.Equal(t, []string{"R1", "R2"}, ruleIDs(selected))
}

func TestSelectByRuleTypeAndTag(t *testing.T) {
	r1 := testRule{id: "R1", typ: "pricing", tags: []string{"core"}, outputs: []string{"a"}}
	r2 := testRule{id: "R2", typ: "shipping", tags: []string{"aux"}, outputs: []string{"b"}}
	g, err := Build([]Rule{r1, r2})
	require.NoError(t, err)

	require.Equal(t, []string{"R1"}, ruleIDs(g.Select([]Query{{Key: "pricing", Kind: RuleType}})))
	require.Equal(t, []string{"R2"}, ruleIDs(g.Select([]Query{{Key: "aux", Kind: AttributeTag}})))
}

func TestSelectWithNoDependenciesReturnsJustTheMatch(t *testing.T) {
	r1 := testRule{id: "R1", outputs: []string{"a"}}
	g, err := Build([]Rule{r1})
	require.NoError(t, err)

	selected := g.Select([]Query{{Key: "a", Kind: AttributePath}})
	require.Equal(t, []string{"R1"}, ruleIDs(selected))
}

func TestRuleByID(t *testing.T) {
	r1 := testRule{id: "R1", outputs: []string{"a"}}
	g, err := Build([]Rule{r1})
	require.NoError(t, err)

	r, ok := g.RuleByID("R1")
	require.True(t, ok)
	require.Equal(t, "R1", r.ID())

	_, ok = g.RuleByID("missing")
	require.False(t, ok)
}
