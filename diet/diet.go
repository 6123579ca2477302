// Package diet provides a Discrete Interval Encoding Tree: a set of integers which stores every maximal run of
// consecutive members as a single interval. Memory use and the cost of each operation grow with the number of
// intervals rather than the number of elements, which makes a Diet a good fit for highly contiguous sets such as
// allocated IDs, covered byte offsets or visited line numbers.
//
// The tree is an unbalanced binary search tree ordered by interval bounds. No rebalancing is performed, so adversarial
// insertion orders (e.g. strictly increasing values with gaps) degrade it to a linked list. All operations walk the
// tree iteratively and do not grow the goroutine stack with tree depth.
//
// A Diet is not safe for concurrent use.
package diet

import (
	"fmt"
	"strings"

	"github.com/NguyenLe1605/gdiet"
)

// Diet is a set of integers encoded as disjoint, non-adjacent closed intervals. The zero value is an empty set ready to
// use.
type Diet[T gdiet.Integer] struct {
	root *node[T]
	len  int
}

// New constructs a new Diet containing the provided elements. Duplicate elements are collapsed.
func New[T gdiet.Integer](elems ...T) *Diet[T] {
	result := &Diet[T]{}
	for _, elem := range elems {
		result.Insert(elem)
	}
	return result
}

// Contains returns true if and only if v is a member of this set.
func (d *Diet[T]) Contains(v T) bool {
	n := d.root
	for n != nil {
		switch {
		case v < n.lower:
			n = n.left
		case v > n.upper:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert adds v to this set. It returns false if v was already a member, in which case the set is left unchanged.
//
// When v sits right next to an existing interval, that interval is widened instead of creating a new one, and it is
// then fused with its neighbouring interval if v closed the gap between them.
func (d *Diet[T]) Insert(v T) bool {
	slot := &d.root
	for *slot != nil {
		n := *slot
		switch {
		case v < n.lower:
			if v+1 == n.lower {
				n.lower = v
				joinLeft(n)
				d.len++
				return true
			}
			slot = &n.left
		case v > n.upper:
			if v-1 == n.upper {
				n.upper = v
				joinRight(n)
				d.len++
				return true
			}
			slot = &n.right
		default:
			return false
		}
	}
	*slot = &node[T]{lower: v, upper: v}
	d.len++
	return true
}

// Remove deletes v from this set. It returns false if v was not a member, in which case the set is left unchanged.
//
// Removing an endpoint shrinks its interval, removing the only element of an interval deletes its node, and removing
// an interior element splits its interval in two.
func (d *Diet[T]) Remove(v T) bool {
	slot := &d.root
	for *slot != nil {
		n := *slot
		switch {
		case v < n.lower:
			slot = &n.left
		case v > n.upper:
			slot = &n.right
		default:
			switch {
			case n.lower == n.upper:
				*slot = merge(n.left, n.right)
			case v == n.lower:
				n.lower++
			case v == n.upper:
				n.upper--
			default:
				// [lower, v-1] keeps the left subtree, [v+1, upper] adopts the right one.
				n.right = &node[T]{lower: v + 1, upper: n.upper, right: n.right}
				n.upper = v - 1
			}
			d.len--
			return true
		}
	}
	return false
}

// Len returns the number of elements in this set. It runs in constant time.
func (d *Diet[T]) Len() int {
	return d.len
}

// String renders the intervals of this set in ascending order, e.g. "{[1 3] [7 7]}".
func (d *Diet[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	walk(d.root, func(lower, upper T) bool {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "[%d %d]", lower, upper)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
