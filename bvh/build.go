package bvh

import (
	"sort"

	"github.com/duskray/raycore/math"
)

const maxLeafItems = 4

// Build constructs a Tree from a list of per-item bounding boxes, splitting
// recursively along the longest centroid axis with a binned surface-area
// heuristic Leaves are capped at maxLeafItems
// items; a single item always produces a leaf regardless of the cap.
func Build(boxes []math.AABB) *Tree {
	t := &Tree{Items: make([]int, len(boxes))}
	for i := range t.Items {
		t.Items[i] = i
	}
	if len(boxes) == 0 {
		return t
	}

	centroidBounds := math.EmptyAABB()
	for _, b := range boxes {
		centroidBounds = centroidBounds.Grow(b.Centroid())
	}

	b := &builder{boxes: boxes, items: t.Items}
	b.build(0, len(t.Items), centroidBounds)
	t.Nodes = b.nodes
	t.Items = b.items
	return t
}

type builder struct {
	boxes []math.AABB
	items []int
	nodes []Node
}

// build recursively splits items[start:end], appends nodes, and returns the
// index of the node it created.
func (b *builder) build(start, end int, centroidBounds math.AABB) int {
	bounds := math.EmptyAABB()
	for _, idx := range b.items[start:end] {
		bounds = bounds.Union(b.boxes[idx])
	}

	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, Node{Bounds: bounds})

	count := end - start
	if count <= maxLeafItems || centroidBounds.Extent() == (math.Vec3{}) {
		b.nodes[nodeIndex].ItemStart = int32(start)
		b.nodes[nodeIndex].ItemCount = int32(count)
		return nodeIndex
	}

	axis := centroidBounds.LongestAxis()
	mid := b.partitionSAH(start, end, axis, bounds)
	if mid <= start || mid >= end {
		mid = (start + end) / 2
	}

	leftCentroid := math.EmptyAABB()
	for _, idx := range b.items[start:mid] {
		leftCentroid = leftCentroid.Grow(b.boxes[idx].Centroid())
	}
	rightCentroid := math.EmptyAABB()
	for _, idx := range b.items[mid:end] {
		rightCentroid = rightCentroid.Grow(b.boxes[idx].Centroid())
	}

	b.build(start, mid, leftCentroid) // near child: always nodeIndex+1
	secondChild := b.build(mid, end, rightCentroid)

	b.nodes[nodeIndex].ItemCount = 0
	b.nodes[nodeIndex].SecondChild = int32(secondChild)
	b.nodes[nodeIndex].SplitAxis = uint8(axis)
	return nodeIndex
}

const sahBuckets = 12

// partitionSAH buckets items[start:end] by centroid position along axis and
// picks the bucket boundary minimizing the surface-area-heuristic cost,
// then partitions items[start:end] in place around that boundary.
func (b *builder) partitionSAH(start, end, axis int, bounds math.AABB) int {
	cmin := bounds.Component(axis, bounds.Min)
	cmax := bounds.Component(axis, bounds.Max)
	extent := cmax - cmin
	if extent <= 0 {
		return (start + end) / 2
	}

	type bucket struct {
		count int
		box   math.AABB
	}
	buckets := make([]bucket, sahBuckets)
	for i := range buckets {
		buckets[i].box = math.EmptyAABB()
	}

	bucketOf := func(idx int) int {
		c := bounds.Component(axis, b.boxes[idx].Centroid())
		bi := int(float32(sahBuckets) * (c - cmin) / extent)
		if bi < 0 {
			bi = 0
		}
		if bi >= sahBuckets {
			bi = sahBuckets - 1
		}
		return bi
	}

	for _, idx := range b.items[start:end] {
		bi := bucketOf(idx)
		buckets[bi].count++
		buckets[bi].box = buckets[bi].box.Union(b.boxes[idx])
	}

	bestCost := float32(-1)
	bestSplit := 0
	for split := 1; split < sahBuckets; split++ {
		leftBox, rightBox := math.EmptyAABB(), math.EmptyAABB()
		leftCount, rightCount := 0, 0
		for i := 0; i < split; i++ {
			leftBox = leftBox.Union(buckets[i].box)
			leftCount += buckets[i].count
		}
		for i := split; i < sahBuckets; i++ {
			rightBox = rightBox.Union(buckets[i].box)
			rightCount += buckets[i].count
		}
		if leftCount == 0 || rightCount == 0 {
			continue
		}
		cost := float32(leftCount)*leftBox.SurfaceArea() + float32(rightCount)*rightBox.SurfaceArea()
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			bestSplit = split
		}
	}
	if bestCost < 0 {
		bestSplit = sahBuckets / 2
	}

	items := b.items[start:end]
	sort.Slice(items, func(i, j int) bool {
		return bucketOf(items[i]) < bucketOf(items[j])
	})
	// Find the first index whose bucket is >= bestSplit.
	mid := end
	for i, idx := range items {
		if bucketOf(idx) >= bestSplit {
			mid = start + i
			break
		}
	}
	return mid
}
