// This file contains thin wrappers around the graph module
// for managing the state graphs of a game.
package internal

import (
	"errors"
	"iter"
	"maps"
	"slices"

	"github.com/dominikbraun/graph"
)

type GraphNode interface {
	// A unique ID that is used as the node hash
	Id() int
}

func getNodeId[T GraphNode](node T) int {
	return node.Id()
}

// A DependencyGraph is a directed graph whose nodes are
// hashed by their Id. It may contain cycles.
type DependencyGraph[T GraphNode] struct {
	graph.Graph[int, T]
	adjacencyMap map[int]map[int]graph.Edge[int]
}

func NewDependencyGraph[T GraphNode]() *DependencyGraph[T] {
	return &DependencyGraph[T]{
		Graph: graph.New(getNodeId[T], graph.Directed()),
	}
}

// Adds the node unless a node with the same Id exists.
// Returns true when the node is new.
func (g *DependencyGraph[T]) AddNode(node T) (bool, error) {
	err := g.Graph.AddVertex(node)
	if errors.Is(err, graph.ErrVertexAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	g.adjacencyMap = nil
	return true, nil
}

// Adds a directed edge. Adding an existing edge again is a no-op.
func (g *DependencyGraph[T]) AddEdge(source, target T) error {
	err := g.Graph.AddEdge(source.Id(), target.Id())
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return nil
	}
	g.adjacencyMap = nil
	return err
}

// Iterates the nodes reachable from start level by level
// together with their edge distance from start. Nodes of
// the same level come in ascending Id order.
func (g *DependencyGraph[T]) BreadthSearchIter(start T) iter.Seq2[T, int] {
	iterator := func(yield func(v T, depth int) bool) {
		adjacency := g.adjacency()
		if _, ok := adjacency[start.Id()]; !ok {
			return
		}

		visited := map[int]bool{start.Id(): true}
		level := []int{start.Id()}
		for depth := 0; len(level) > 0; depth++ {
			next := make([]int, 0, len(level))
			for _, key := range level {
				v, _ := g.Vertex(key)
				if !yield(v, depth) {
					return
				}
				for _, k := range slices.Sorted(maps.Keys(adjacency[key])) {
					if !visited[k] {
						visited[k] = true
						next = append(next, k)
					}
				}
			}
			slices.Sort(next)
			level = next
		}
	}
	return iterator
}

// Returns the nodes that are on the outgoing edges of the given
// source node (the dependants).
func (g *DependencyGraph[T]) GetDependants(source T) []T {
	outEdges := g.adjacency()[source.Id()]
	dependants := make([]T, 0, len(outEdges))
	for k := range outEdges {
		dependant, _ := g.Vertex(k)
		dependants = append(dependants, dependant)
	}

	return dependants
}

// Number of nodes
func (g *DependencyGraph[T]) NumNodes() int {
	return len(g.adjacency())
}

// Number of directed edges
func (g *DependencyGraph[T]) NumEdges() int {
	edges := 0
	for _, out := range g.adjacency() {
		edges += len(out)
	}
	return edges
}

func (g *DependencyGraph[T]) adjacency() map[int]map[int]graph.Edge[int] {
	if g.adjacencyMap == nil {
		// Cached until the next mutation
		g.adjacencyMap, _ = g.Graph.AdjacencyMap()
	}
	return g.adjacencyMap
}
