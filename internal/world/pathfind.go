package world

import (
	"container/heap"

	"rogue-engine/internal/geom"
)

// Occupied reports whether pos currently holds a living creature, for the
// "occupied tiles cost infinity except the goal" pathfinding rule. Supplied
// by the caller since world has no notion of creatures.
type Occupied func(pos geom.Vec2) bool

type pathNode struct {
	pos      geom.Vec2
	priority int
	index    int
}

type pathQueue []*pathNode

func (q pathQueue) Len() int            { return len(q) }
func (q pathQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q pathQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index, q[j].index = i, j }
func (q *pathQueue) Push(x interface{}) {
	n := x.(*pathNode)
	n.index = len(*q)
	*q = append(*q, n)
}
func (q *pathQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// AStar finds a path from start to goal using 8-directional uniform cost
// movement weighted by tile cost, Chebyshev heuristic, and tie-breaking via
// reversed neighbor order on tiles where (y+x) is even. A tile occupied by a
// living creature costs infinity to enter, except the goal tile itself,
// allowing AI to path toward (and then attack) an occupant.
//
// Returns the path including both start and goal, or nil if unreachable.
func (m *Map) AStar(start, goal geom.Vec2, canSwim bool, occupied Occupied) []geom.Vec2 {
	if occupied == nil {
		occupied = func(geom.Vec2) bool { return false }
	}

	type key = geom.Vec2
	const inf = 1 << 30

	gScore := map[key]int{start: 0}
	cameFrom := map[key]geom.Vec2{}
	open := &pathQueue{}
	heap.Init(open)
	heap.Push(open, &pathNode{pos: start, priority: start.Chebyshev(goal)})
	visited := map[key]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode).pos
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur.Equal(goal) {
			return reconstruct(cameFrom, start, goal)
		}

		neighbors := neighborOrder(cur)
		for _, d := range neighbors {
			next := cur.Add(d)
			if !m.InBounds(next) {
				continue
			}
			tile := m.At(next)
			if tile.Kind == Wall || tile.Kind == ClosedDoor {
				continue
			}
			if canSwim {
				if !tile.WalkableBySwimmer() {
					continue
				}
			} else if !tile.Walkable() {
				continue
			}

			stepCost := tile.Cost()
			if stepCost < 0 {
				continue
			}
			if occupied(next) && !next.Equal(goal) {
				stepCost = inf
			}

			ng := gScore[cur] + stepCost
			if old, ok := gScore[next]; !ok || ng < old {
				gScore[next] = ng
				cameFrom[next] = cur
				heap.Push(open, &pathNode{pos: next, priority: ng + next.Chebyshev(goal)})
			}
		}
	}
	return nil
}

// neighborOrder returns the 8 neighbor offsets, reversed on tiles where
// (y+x) is even — a standard A* "ugly paths" tie-break fix.
func neighborOrder(pos geom.Vec2) [8]geom.Vec2 {
	dirs := geom.Dirs8
	if (pos.Y+pos.X)%2 == 0 {
		var rev [8]geom.Vec2
		for i, d := range dirs {
			rev[len(dirs)-1-i] = d
		}
		return rev
	}
	return dirs
}

func reconstruct(cameFrom map[geom.Vec2]geom.Vec2, start, goal geom.Vec2) []geom.Vec2 {
	path := []geom.Vec2{goal}
	cur := goal
	for !cur.Equal(start) {
		prev, ok := cameFrom[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse into start->goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
