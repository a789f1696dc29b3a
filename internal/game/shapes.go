package game

import "math/rand"

// ShapeSource yields the next shape to spawn. Live play uses a seeded bag;
// replay substitutes a source that feeds back recorded draws, which is what
// makes playback deterministic despite the RNG in normal play.
type ShapeSource interface {
	Next() Shape
}

// BagSource deals shapes with the 7-bag system: each bag holds one of every
// shape in a shuffled order, so no shape drought exceeds twelve draws.
type BagSource struct {
	rng *rand.Rand
	bag []Shape
}

// NewBagSource creates a bag source seeded for deterministic shuffles.
func NewBagSource(seed int64) *BagSource {
	return &BagSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next shape, refilling and reshuffling when the bag empties.
func (b *BagSource) Next() Shape {
	if len(b.bag) == 0 {
		b.refill()
	}
	s := b.bag[0]
	b.bag = b.bag[1:]
	return s
}

func (b *BagSource) refill() {
	bag := make([]Shape, ShapeCount)
	for i := range bag {
		bag[i] = Shape(i)
	}
	b.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	b.bag = bag
}
