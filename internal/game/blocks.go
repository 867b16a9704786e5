package game

import (
	"math/rand"
)

// Block is a single falling hazard cell on the playfield.
type Block struct {
	X int // Column, 0..width-1
	Y int // Row, 0 at the top, grows downward
}

// blockField owns the set of live blocks and the RNG that spawns them.
// All mutation happens inside step(); nothing outside the game package
// touches the slice.
type blockField struct {
	blocks []Block
	rng    *rand.Rand
	width  int
	height int
	prob   float64
}

// newBlockField creates a field for the given playfield dimensions.
func newBlockField(seed int64, width, height int, prob float64) *blockField {
	f := &blockField{
		blocks: make([]Block, 0, 32),
		width:  width,
		height: height,
		prob:   prob,
	}
	f.reset(seed)
	return f
}

// reset clears all blocks and reseeds the RNG.
func (f *blockField) reset(seed int64) {
	f.blocks = f.blocks[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// step runs one tick of the field: spawn, advance, cull, in that order.
// Spawning happens before the advance, so a block spawned this tick sits at
// y=1 once the tick completes.
func (f *blockField) step() {
	// Spawn: one independent trial per column. Several columns can spawn in
	// the same tick, and repeated ticks can stack blocks in the same cell;
	// duplicates are harmless to collision checks and are kept as-is.
	for x := 0; x < f.width; x++ {
		if f.rng.Float64() < f.prob {
			f.blocks = append(f.blocks, Block{X: x, Y: 0})
		}
	}

	// Advance: every block falls one row.
	for i := range f.blocks {
		f.blocks[i].Y++
	}

	// Cull: drop blocks that left the playfield.
	live := f.blocks[:0]
	for _, b := range f.blocks {
		if b.Y < f.height {
			live = append(live, b)
		}
	}
	f.blocks = live
}

// collides reports whether any live block occupies (x, y).
func (f *blockField) collides(x, y int) bool {
	for _, b := range f.blocks {
		if b.X == x && b.Y == y {
			return true
		}
	}
	return false
}

// Blocks returns the current list of live blocks.
func (f *blockField) Blocks() []Block {
	return f.blocks
}
