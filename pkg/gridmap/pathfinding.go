// pkg/gridmap/pathfinding.go
package gridmap

import (
	"container/heap"
	"math"
)

// AStar finds the shortest route from start to goal. The result excludes start
// and includes goal; it is empty when start == goal and nil when there is no
// route. Orthogonal steps cost 1, diagonal steps √2, the heuristic is the
// straight-line distance. The start cell itself is never checked for
// walkability, so a unit standing on a freshly blocked cell can still leave it.
func AStar(start, goal Cell, g *Grid) []Cell {
	if !g.InBounds(start) || !g.IsWalkable(goal) {
		return nil
	}
	if start == goal {
		return []Cell{}
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Cell: start, Priority: start.Distance(goal), Seq: seq})
	cameFrom := make(map[Cell]Cell)
	costSoFar := map[Cell]float64{start: 0}
	closed := make(map[Cell]bool)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Cell == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		if closed[current.Cell] {
			continue
		}
		closed[current.Cell] = true

		for _, neighbor := range g.Neighbors(current.Cell) {
			if closed[neighbor] {
				continue
			}
			step := 1.0
			if current.Cell.IsDiagonal(neighbor) {
				step = math.Sqrt2
			}
			newCost := costSoFar[current.Cell] + step
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				cameFrom[neighbor] = current.Cell
				seq++
				heap.Push(pq, &Node{Cell: neighbor, Priority: newCost + neighbor.Distance(goal), Seq: seq})
			}
		}
	}
	return nil
}

// PriorityQueue is the open list for AStar.
type PriorityQueue []*Node

type Node struct {
	Cell     Cell
	Priority float64
	Seq      int // insertion order, breaks priority ties
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) []Cell {
	var path []Cell
	for c := goal; c != start; c = cameFrom[c] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
