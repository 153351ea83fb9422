// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

var (
	// zobristKeys[colour][kind][square]
	zobristKeys [2][chess.NumKinds][numSquares]uint64
	whiteToMove uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	r := rand.New(rand.NewSource(0x5eed_c4e55)) //nolint:gosec // not used for security
	for c := range zobristKeys {
		for k := range zobristKeys[c] {
			for sq := range zobristKeys[c][k] {
				zobristKeys[c][k][sq] = r.Uint64()
			}
		}
	}
	whiteToMove = r.Uint64()
}

func squareIndex(p chess.Position) int {
	return p.Row()*chess.BoardSize + p.Col()
}

// GenerateZobristHash hashes the active pieces and the side to move.
// Captured pieces do not contribute.
func GenerateZobristHash(b *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, p := range b.Pieces() {
		if p.Captured() {
			continue
		}
		hash ^= zobristKeys[p.Colour()][p.Kind()][squareIndex(p.Position())]
	}
	if toMove == chess.White {
		hash ^= whiteToMove
	}
	return hash
}

// WeakHash is a cheap additive hash of the active pieces, used as a second
// check when two Zobrist hashes collide.
func WeakHash(b *chess.Board) uint64 {
	var hash uint64
	for _, p := range b.Pieces() {
		if p.Captured() {
			continue
		}
		piece := uint64(p.Kind()) + 1
		if p.Colour() == chess.Black {
			piece += uint64(chess.NumKinds)
		}
		hash += piece * uint64(squareIndex(p.Position())+1)
	}
	return hash
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
	// Index is the batch index of the first occurrence
	Index int
}

// DuplicateDetector tracks seen positions for duplicate detection.
// It is not safe for concurrent use.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64][]PositionSignature),
	}
}

// CheckAndAdd checks whether the position has been seen before and records
// it if not. For a duplicate it returns the index of the first occurrence.
func (d *DuplicateDetector) CheckAndAdd(b *chess.Board, toMove chess.Colour, index int) (firstIndex int, duplicate bool) {
	if b == nil {
		return 0, false
	}

	sig := PositionSignature{
		Hash:     GenerateZobristHash(b, toMove),
		WeakHash: WeakHash(b),
		Index:    index,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if existing.WeakHash == sig.WeakHash {
			d.duplicateCount++
			return existing.Index, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return 0, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
}
