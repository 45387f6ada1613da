// Package convtable implements ConversionTable: a graph of TypeDescriptor
// vertices connected by registered conversion edges,
// answering "cheapest route from type A to type B" one argument position at
// a time. Routes are ranked by edge weights evaluated at insight.None.
//
// The graph substrate is github.com/katalvlaran/lvlath's weighted directed
// core.Graph, traversed with its dijkstra.Dijkstra — the same
// weighted-shortest-path shape hashicorp/go-argmapper uses per-target inside
// its own call-graph resolution (see DESIGN.md).
package convtable

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"

	"overcall/internal/convert"
	"overcall/internal/descriptor"
	"overcall/internal/insight"
	"overcall/internal/value"
)

// NoApplicableConversion signals that bestSequenceRoute could not find any
// route from a given actual's type to a candidate's formal type at some
// argument position. Recoverable locally by the caller (the OverloadedSet
// tournament), never surfaced past it.
type NoApplicableConversion struct {
	Position int
	From, To *descriptor.TypeDescriptor
}

func (e *NoApplicableConversion) Error() string {
	return fmt.Sprintf("no applicable conversion at position %d: %s -> %s", e.Position, e.From, e.To)
}

// ReturnConversion is an edge conversion applied to a value leaving the
// native world, after a successful call.
type ReturnConversion func(v value.Value) (value.Value, error)

type edgeKey struct{ from, to string }

// ConversionTable is the registry of convertibility between native types.
type ConversionTable struct {
	mu sync.RWMutex

	graph *core.Graph
	ids   map[*descriptor.TypeDescriptor]string
	byID  map[string]*descriptor.TypeDescriptor

	edges        map[edgeKey]convert.Edge
	returnEdges  map[*descriptor.TypeDescriptor]ReturnConversion
	nextVertexID int
}

// New creates an empty conversion table.
func New() *ConversionTable {
	return &ConversionTable{
		graph:       core.NewGraph(core.WithDirected(true), core.WithWeighted()),
		ids:         make(map[*descriptor.TypeDescriptor]string),
		byID:        make(map[string]*descriptor.TypeDescriptor),
		edges:       make(map[edgeKey]convert.Edge),
		returnEdges: make(map[*descriptor.TypeDescriptor]ReturnConversion),
	}
}

// vertexID returns the stable graph-vertex id for d, interning it on first
// use. Identifiers are assigned by the table, not derived from Name, so two
// descriptors that happen to share a Name never collide as graph vertices.
func (t *ConversionTable) vertexID(d *descriptor.TypeDescriptor) string {
	if id, ok := t.ids[d]; ok {
		return id
	}
	id := fmt.Sprintf("t%d", t.nextVertexID)
	t.nextVertexID++
	t.ids[d] = id
	t.byID[id] = d
	_ = t.graph.AddVertex(id)
	return id
}

// RegisterType ensures d participates in the table even before any edge
// touches it, so a table can report "no route" rather than "unknown type"
// for a registered-but-unreachable type.
func (t *ConversionTable) RegisterType(d *descriptor.TypeDescriptor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vertexID(d)
}

// RegisterEdge adds one directed conversion edge from -> to. weightFn is
// evaluated at insight.None to rank the edge for shortest-path search (the
// route's *shape* does not depend on insight — only its scored weight does);
// the full weightFn is kept on the resulting route so
// TotalWeight can be re-evaluated per call against the actual insight.
func (t *ConversionTable) RegisterEdge(from, to *descriptor.TypeDescriptor, weightFn convert.WeightFunc, apply convert.ApplyFunc) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fromID := t.vertexID(from)
	toID := t.vertexID(to)

	rank := weightFn(insight.None).Rank()
	if _, err := t.graph.AddEdge(fromID, toID, rank); err != nil {
		return fmt.Errorf("convtable: register edge %s -> %s: %w", from, to, err)
	}

	t.edges[edgeKey{fromID, toID}] = convert.Edge{From: from, To: to, Weight: weightFn, Apply: apply}
	return nil
}

// RegisterReturnConversion installs the edge conversion applied to values
// of type typ leaving the native world.
func (t *ConversionTable) RegisterReturnConversion(typ *descriptor.TypeDescriptor, conv ReturnConversion) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.returnEdges[typ] = conv
}

// GetEdgeConversion returns the registered return-path conversion for typ,
// if any.
func (t *ConversionTable) GetEdgeConversion(typ *descriptor.TypeDescriptor) (ReturnConversion, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.returnEdges[typ]
	return c, ok
}

// BestSequenceRoute computes, independently for each position i, the
// cheapest route from actualTypes[i] to formalTypes[i]. The route is the
// shortest path by the sum of each edge's Rank at insight.None; insights[i]
// does not influence which route is chosen, so a route that would be
// cheaper under a non-None insight is not found. The insight only affects
// the weight a caller later reads with TotalWeight.
// All three slices must have equal length. A position with no route fails
// with *NoApplicableConversion identifying that position; the table does
// not attempt joint optimisation across positions.
func (t *ConversionTable) BestSequenceRoute(actualTypes []*descriptor.TypeDescriptor, insights []insight.Insight, formalTypes []*descriptor.TypeDescriptor) ([]convert.ConversionRoute, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	routes := make([]convert.ConversionRoute, len(actualTypes))
	for i := range actualTypes {
		route, err := t.bestRouteLocked(actualTypes[i], formalTypes[i])
		if err != nil {
			return nil, &NoApplicableConversion{Position: i, From: actualTypes[i], To: formalTypes[i]}
		}
		routes[i] = route
	}
	return routes, nil
}

func (t *ConversionTable) bestRouteLocked(from, to *descriptor.TypeDescriptor) (convert.ConversionRoute, error) {
	if descriptor.Same(from, to) {
		return convert.Identity(from), nil
	}

	fromID, ok := t.ids[from]
	if !ok {
		return convert.ConversionRoute{}, fmt.Errorf("convtable: unknown source type %s", from)
	}
	toID, ok := t.ids[to]
	if !ok {
		return convert.ConversionRoute{}, fmt.Errorf("convtable: unknown destination type %s", to)
	}

	_, prev, err := dijkstra.Dijkstra(t.graph, dijkstra.Source(fromID), dijkstra.WithReturnPath())
	if err != nil {
		return convert.ConversionRoute{}, fmt.Errorf("convtable: shortest path search: %w", err)
	}

	path := reconstructPath(prev, fromID, toID)
	if path == nil {
		return convert.ConversionRoute{}, fmt.Errorf("convtable: no route from %s to %s", from, to)
	}

	edges := make([]convert.Edge, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		e, ok := t.edges[edgeKey{path[i], path[i+1]}]
		if !ok {
			return convert.ConversionRoute{}, fmt.Errorf("convtable: missing registered edge for %s -> %s", path[i], path[i+1])
		}
		edges = append(edges, e)
	}

	return convert.NewRoute(from, to, edges...), nil
}

// reconstructPath walks a dijkstra predecessor map from target back to
// source and returns the vertex-id path from source to target, or nil if
// target is unreachable from source.
func reconstructPath(prev map[string]string, source, target string) []string {
	if source == target {
		return []string{source}
	}
	var reversed []string
	cur := target
	seen := map[string]bool{}
	for {
		reversed = append(reversed, cur)
		if cur == source {
			break
		}
		p, ok := prev[cur]
		if !ok || p == "" || seen[cur] {
			return nil
		}
		seen[cur] = true
		cur = p
	}
	path := make([]string, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}
	return path
}
