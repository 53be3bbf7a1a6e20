package tetris

import "math/rand/v2"

// Selector picks the ID of the next block given the ID of the previous one.
// prev is 0 when there's no previous block.
type Selector interface {
	Select(prev int) int
}

// RandomSelector draws uniformly among the block IDs that differ from prev.
type RandomSelector struct {
	rand Rand
}

func NewRandomSelector(r Rand) *RandomSelector { return &RandomSelector{rand: r} }

func (s *RandomSelector) Select(prev int) int {
	for {
		id := s.rand.IntN(blockTypes) + 1
		if id != prev {
			return id
		}
	}
}

// FixedSelector always returns the same ID. It's meant for reproducible tests
// and, unlike RandomSelector, it repeats the previous block.
type FixedSelector int

func (s FixedSelector) Select(int) int { return int(s) }

// Queue supplies the blocks that spawn, one at a time, with a one block
// lookahead and a single hold slot.
type Queue struct {
	next *Block
	held *Block

	selector          Selector
	rand              Rand
	sizeX, sizeZ      int
	randomOrientation bool
}

type QueueOptions struct {
	Selector Selector
	// Rand places the blocks on Reset. Defaults to an unseeded generator.
	Rand Rand
	// SizeX and SizeZ bound the spawn position of the blocks.
	SizeX, SizeZ      int
	RandomOrientation bool
}

func NewQueue(o QueueOptions) *Queue {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Selector == nil {
		o.Selector = NewRandomSelector(o.Rand)
	}
	return &Queue{
		next:              NewBlock(o.Selector.Select(0)),
		selector:          o.Selector,
		rand:              o.Rand,
		sizeX:             o.SizeX,
		sizeZ:             o.SizeZ,
		randomOrientation: o.RandomOrientation,
	}
}

// Next returns a copy of the block that will spawn next.
func (q *Queue) Next() *Block { return q.next.CopyBlock() }

// Held returns a copy of the block in the hold slot, nil if it's empty.
func (q *Queue) Held() *Block { return q.held.CopyBlock() }

// GetAndUpdateBlock pops the next block, draws its replacement and places
// the popped block on the spawn layer.
func (q *Queue) GetAndUpdateBlock() *Block {
	b := q.next
	q.next = NewBlock(q.selector.Select(b.ID))
	q.reset(b)
	return b
}

// SaveAndUpdateBlock puts current in the hold slot. The first time the slot is
// empty so a fresh block is drawn, afterwards the held block is swapped back.
func (q *Queue) SaveAndUpdateBlock(current *Block) *Block {
	if q.held == nil {
		q.held = current
		return q.GetAndUpdateBlock()
	}
	b := q.held
	q.reset(b)
	q.held = current
	return b
}

func (q *Queue) reset(b *Block) {
	b.Reset(q.sizeX, q.sizeZ, q.rand, q.randomOrientation)
}
