package core

import (
	"sort"
)

// Bounded is anything with a world-space bounding box
type Bounded interface {
	BoundingBox() AABB
}

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode[T Bounded] struct {
	BoundingBox AABB
	Left        *BVHNode[T]
	Right       *BVHNode[T]
	Items       []T // leaf payload, nil for internal nodes
}

// BVH is a median-split bounding volume hierarchy
type BVH[T Bounded] struct {
	Root *BVHNode[T]
}

// leafThreshold: groups this small are stored in a leaf and scanned linearly
const leafThreshold = 8

// NewBVH constructs a BVH from a slice of items. The slice is copied.
func NewBVH[T Bounded](items []T) *BVH[T] {
	if len(items) == 0 {
		return &BVH[T]{}
	}
	itemsCopy := make([]T, len(items))
	copy(itemsCopy, items)
	return &BVH[T]{Root: buildBVH(itemsCopy)}
}

func buildBVH[T Bounded](items []T) *BVHNode[T] {
	box := items[0].BoundingBox()
	for _, item := range items[1:] {
		box = box.Union(item.BoundingBox())
	}

	if len(items) <= leafThreshold {
		return &BVHNode[T]{BoundingBox: box, Items: items}
	}

	axis := box.LongestAxis()
	sort.Slice(items, func(i, j int) bool {
		return items[i].BoundingBox().Center().Component(axis) < items[j].BoundingBox().Center().Component(axis)
	})

	mid := len(items) / 2
	return &BVHNode[T]{
		BoundingBox: box,
		Left:        buildBVH(items[:mid]),
		Right:       buildBVH(items[mid:]),
	}
}

// Traverse visits every item whose enclosing boxes overlap the ray inside
// (tMin, tMax). visit returns the (possibly tightened) tMax used for the rest
// of the traversal, which gives nearest-hit searches the same shrinking
// interval as a linear scan.
func (bvh *BVH[T]) Traverse(ray Ray, tMin, tMax float64, visit func(item T, tMax float64) float64) {
	if bvh.Root == nil {
		return
	}
	bvh.traverseNode(bvh.Root, ray, tMin, tMax, visit)
}

func (bvh *BVH[T]) traverseNode(node *BVHNode[T], ray Ray, tMin, tMax float64, visit func(T, float64) float64) float64 {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return tMax
	}

	if node.Items != nil {
		for _, item := range node.Items {
			tMax = visit(item, tMax)
		}
		return tMax
	}

	if node.Left != nil {
		tMax = bvh.traverseNode(node.Left, ray, tMin, tMax, visit)
	}
	if node.Right != nil {
		tMax = bvh.traverseNode(node.Right, ray, tMin, tMax, visit)
	}
	return tMax
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes int
	leafNodes  int
	maxDepth   int
	totalItems int
}

func (bvh *BVH[T]) getStats() bvhStats {
	stats := bvhStats{}
	if bvh.Root != nil {
		bvh.collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

func (bvh *BVH[T]) collectStats(node *BVHNode[T], depth int, stats *bvhStats) {
	stats.totalNodes++
	stats.maxDepth = max(stats.maxDepth, depth)

	if node.Items != nil {
		stats.leafNodes++
		stats.totalItems += len(node.Items)
		return
	}
	if node.Left != nil {
		bvh.collectStats(node.Left, depth+1, stats)
	}
	if node.Right != nil {
		bvh.collectStats(node.Right, depth+1, stats)
	}
}
