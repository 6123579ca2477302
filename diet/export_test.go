package diet

import "github.com/NguyenLe1605/gdiet"

// Intervals exposes the stored intervals, in ascending order, to tests.
func Intervals[T gdiet.Integer](d *Diet[T]) [][2]T {
	var result [][2]T
	walk(d.root, func(lower, upper T) bool {
		result = append(result, [2]T{lower, upper})
		return true
	})
	return result
}

// Depth returns the height of the tree.
func Depth[T gdiet.Integer](d *Diet[T]) int {
	var deepest int
	nodes, depths := []*node[T]{d.root}, []int{1}
	for len(nodes) > 0 {
		n, depth := nodes[len(nodes)-1], depths[len(depths)-1]
		nodes, depths = nodes[:len(nodes)-1], depths[:len(depths)-1]
		if n == nil {
			continue
		}
		if depth > deepest {
			deepest = depth
		}
		nodes = append(nodes, n.left, n.right)
		depths = append(depths, depth+1, depth+1)
	}
	return deepest
}
