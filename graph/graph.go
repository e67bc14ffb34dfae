package graph

// node is one rule's position in the arena: its edges, keyed by
// integer index rather than pointer, per spec.md §9's design note.
type node struct {
	rule     Rule
	outEdges []int // indices of rules that consume one of this rule's outputs
	inEdges  []int // indices of rules that produce one of this rule's inputs
}

// Graph is the built, validated dependency DAG over a rule set plus
// its query indices. Construct with Build; the zero value is not
// usable.
type Graph struct {
	nodes   []*node
	byID    map[string]int
	byQuery map[queryKey][]int
}

// Build validates a rule set against spec.md §4.5's invariants and
// constructs the adjacency + query indices. Rule order in rules is
// preserved as each rule's arena index, which is what "insertion
// order" / stable tie-breaking refers to throughout this package.
func Build(rules []Rule) (*Graph, error) {
	g := &Graph{
		byID:    make(map[string]int, len(rules)),
		byQuery: make(map[queryKey][]int),
	}

	for i, r := range rules {
		g.nodes = append(g.nodes, &node{rule: r})
		g.byID[r.ID()] = i
	}

	// Step 1: reject any rule whose inputs and outputs overlap.
	for _, r := range rules {
		outSet := make(map[string]bool, len(r.Outputs()))
		for _, p := range r.Outputs() {
			outSet[p] = true
		}
		for _, p := range r.Inputs() {
			if outSet[p] {
				return nil, ErrSameOutputAsInput.New(r.ID(), p)
			}
		}
	}

	// Step 2: assign a unique producer to every output path.
	producerOf := make(map[string]int, len(rules))
	for i, r := range rules {
		for _, p := range r.Outputs() {
			if existing, ok := producerOf[p]; ok {
				return nil, ErrMultipleProducers.New(p, rules[existing].ID(), r.ID())
			}
			producerOf[p] = i
		}
	}

	// Step 3/4: directed producer -> consumer edges, insertion-ordered,
	// deduplicated (multiple shared inputs must not produce parallel
	// edges that would inflate in-degree).
	seenEdge := make(map[[2]int]bool)
	for i, r := range rules {
		for _, p := range r.Inputs() {
			producer, ok := producerOf[p]
			if !ok || producer == i {
				continue
			}
			edge := [2]int{producer, i}
			if seenEdge[edge] {
				continue
			}
			seenEdge[edge] = true
			g.nodes[producer].outEdges = append(g.nodes[producer].outEdges, i)
			g.nodes[i].inEdges = append(g.nodes[i].inEdges, producer)
		}
	}

	// Step 5: the rule set must be fully sortable; any residual implies
	// a cycle.
	if full := g.fullTopoSort(); len(full) < len(g.nodes) {
		return nil, ErrGraphContainsCycle.New()
	}

	// Step 6: query indices, one entry per (rule_type, RULE_TYPE), one
	// per (output path, ATTRIBUTE_PATH), one per (tag, ATTRIBUTE_TAG).
	for i, r := range rules {
		g.index(queryKey{RuleType, r.Type()}, i)
		for _, p := range r.Outputs() {
			g.index(queryKey{AttributePath, p}, i)
		}
		for _, tag := range r.Tags() {
			g.index(queryKey{AttributeTag, tag}, i)
		}
	}

	return g, nil
}

func (g *Graph) index(key queryKey, idx int) {
	g.byQuery[key] = append(g.byQuery[key], idx)
}

// fullTopoSort runs Kahn's algorithm over every node (used only to
// detect cycles at build time; the result order itself is discarded).
func (g *Graph) fullTopoSort() []int {
	all := make([]int, len(g.nodes))
	for i := range g.nodes {
		all[i] = i
	}
	return g.kahn(all, Ascending)
}

// Direction controls where each processed node lands in a TopoSort
// result: Ascending appends to the tail (yielding standard
// producer-before-consumer topological order), Descending appends to
// the head (the reverse).
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// transitiveAncestors returns, in node-index order, the union of
// startIdx with every node reachable by walking inEdges (producers)
// transitively — the sub-DAG that must be considered when selecting
// an executable order for those start nodes (spec.md §4.5).
func (g *Graph) transitiveAncestors(startIdx []int) []int {
	seen := make(map[int]bool, len(startIdx))
	var stack []int
	for _, idx := range startIdx {
		if !seen[idx] {
			seen[idx] = true
			stack = append(stack, idx)
		}
	}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range g.nodes[idx].inEdges {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}
	ordered := make([]int, 0, len(seen))
	for i := range g.nodes {
		if seen[i] {
			ordered = append(ordered, i)
		}
	}
	return ordered
}

// kahn runs Kahn's algorithm restricted to the given node set (in-degree
// is only counted from edges within that set), with ties among
// simultaneously-ready nodes broken by node-index (insertion) order.
func (g *Graph) kahn(nodeSet []int, dir Direction) []int {
	inSet := make(map[int]bool, len(nodeSet))
	indegree := make(map[int]int, len(nodeSet))
	for _, idx := range nodeSet {
		inSet[idx] = true
		indegree[idx] = 0
	}
	for _, idx := range nodeSet {
		for _, out := range g.nodes[idx].outEdges {
			if inSet[out] {
				indegree[out]++
			}
		}
	}

	queue := make([]int, 0, len(nodeSet))
	for _, idx := range nodeSet {
		if indegree[idx] == 0 {
			queue = append(queue, idx)
		}
	}

	result := make([]int, 0, len(nodeSet))
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if dir == Ascending {
			result = append(result, idx)
		} else {
			result = append([]int{idx}, result...)
		}
		for _, out := range g.nodes[idx].outEdges {
			if !inSet[out] {
				continue
			}
			indegree[out]--
			if indegree[out] == 0 {
				queue = append(queue, out)
			}
		}
	}
	return result
}

// TopoSort sorts the sub-DAG induced by startIdx and its transitive
// ancestors. Exported for direct use by tests and callers that already
// hold node indices; Select is the usual entry point from a Query list.
func (g *Graph) TopoSort(startIdx []int, dir Direction) []Rule {
	ancestors := g.transitiveAncestors(startIdx)
	order := g.kahn(ancestors, dir)
	rules := make([]Rule, len(order))
	for i, idx := range order {
		rules[i] = g.nodes[idx].rule
	}
	return rules
}

// Select resolves queries to their directly-matched rules, then
// returns the full executable list: those rules plus every transitive
// producer they depend on, in producer-before-consumer order.
// Duplicate matches across queries are emitted once; order is stable.
func (g *Graph) Select(queries []Query) []Rule {
	seen := make(map[int]bool)
	var start []int
	for _, q := range queries {
		for _, idx := range g.byQuery[queryKey{q.Kind, q.Key}] {
			if !seen[idx] {
				seen[idx] = true
				start = append(start, idx)
			}
		}
	}
	return g.TopoSort(start, Ascending)
}

// RuleByID returns the rule registered under id, if any.
func (g *Graph) RuleByID(id string) (Rule, bool) {
	idx, ok := g.byID[id]
	if !ok {
		return nil, false
	}
	return g.nodes[idx].rule, true
}

// Len reports the number of rules in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}
