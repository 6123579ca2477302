package diet

import "github.com/NguyenLe1605/gdiet"

// node holds one maximal interval [lower, upper]. Every interval in left ends at least two below lower, and every
// interval in right starts at least two above upper.
type node[T gdiet.Integer] struct {
	lower, upper T
	left, right  *node[T]
}

// maxNode returns the rightmost node of the subtree rooted at n.
func maxNode[T gdiet.Integer](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// minNode returns the leftmost node of the subtree rooted at n.
func minNode[T gdiet.Integer](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// splitMax detaches the rightmost node of the subtree rooted at n. It returns the detached node and the root of what
// remains; the detached node's left child takes its place. n must not be nil.
func splitMax[T gdiet.Integer](n *node[T]) (last, rest *node[T]) {
	slot := &n
	for (*slot).right != nil {
		slot = &(*slot).right
	}
	last = *slot
	*slot = last.left
	last.left = nil
	return last, n
}

// splitMin is the mirror of splitMax. n must not be nil.
func splitMin[T gdiet.Integer](n *node[T]) (first, rest *node[T]) {
	slot := &n
	for (*slot).left != nil {
		slot = &(*slot).left
	}
	first = *slot
	*slot = first.right
	first.right = nil
	return first, n
}

// joinLeft folds the greatest interval of n.left into n when it ends right below n.lower.
func joinLeft[T gdiet.Integer](n *node[T]) {
	if n.left == nil || maxNode(n.left).upper+1 != n.lower {
		return
	}
	last, rest := splitMax(n.left)
	n.lower, n.left = last.lower, rest
}

// joinRight folds the smallest interval of n.right into n when it starts right above n.upper.
func joinRight[T gdiet.Integer](n *node[T]) {
	if n.right == nil || minNode(n.right).lower-1 != n.upper {
		return
	}
	first, rest := splitMin(n.right)
	n.upper, n.right = first.upper, rest
}

// merge joins two subtrees whose parent interval was removed. The greatest interval of left becomes the new root.
func merge[T gdiet.Integer](left, right *node[T]) *node[T] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	}
	root, rest := splitMax(left)
	root.left, root.right = rest, right
	return root
}

// walk calls f on every interval in ascending order, stopping early if f returns false.
func walk[T gdiet.Integer](n *node[T], f func(lower, upper T) bool) {
	var stack []*node[T]
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(n.lower, n.upper) {
			return
		}
		n = n.right
	}
}
