package basecell

import "github.com/gravitas-games/icogrid/coord"

// GridDistance returns the minimum number of neighbor steps between two
// base cells over the resolution-0 adjacency graph. The graph is connected,
// so a result always exists; distance ignores rotation bookkeeping.
func GridDistance(from, to Cell) int {
	if from == to {
		return 0
	}
	dist, _ := bfs(from, to)
	return dist
}

// GridPath returns one shortest path from one base cell to another,
// including both endpoints. Ties between equally short paths are broken by
// direction order.
func GridPath(from, to Cell) []Cell {
	if from == to {
		return []Cell{from}
	}
	dist, came := bfs(from, to)

	path := make([]Cell, dist+1)
	cur := to
	for i := dist; i >= 0; i-- {
		path[i] = cur
		cur = Cell(came[cur])
	}
	return path
}

// bfs runs a breadth-first search from one cell to another and returns the
// hop count plus the predecessor of every visited cell. The graph has 122
// nodes with degree at most 6, so a fixed-size frontier suffices.
func bfs(from, to Cell) (int, [Count]uint8) {
	var came [Count]uint8
	var seen [Count]bool
	var depth [Count]int

	var queue [Count]Cell
	head, tail := 0, 0

	seen[from] = true
	queue[tail] = from
	tail++

	for head < tail {
		cur := queue[head]
		head++
		for d := coord.K; d < coord.NumDirections; d++ {
			next, ok := cur.Neighbor(d)
			if !ok || seen[next] {
				continue
			}
			seen[next] = true
			came[next] = uint8(cur)
			depth[next] = depth[cur] + 1
			if next == to {
				return depth[next], came
			}
			queue[tail] = next
			tail++
		}
	}
	// Unreachable: the base cell graph is connected.
	return -1, came
}
