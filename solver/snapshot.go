package solver

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/catalog"
)

const snapshotVersion = 1

// snapshotV1 is the gob payload inside the zstd stream.
type snapshotV1 struct {
	Version  int
	Digest   string
	Width    int
	Height   int
	Periodic bool

	Seed   int64
	Seeded bool
	Draws  uint64
	Steps  int
	State  State

	// Masks holds one bit set of possible patterns per cell, in one arena.
	Masks []uint64
}

// Snapshot writes the Model's generation state to w as a zstd-compressed gob
// stream. The catalog itself is not included; Restore needs the same catalog.
func (m *Model) Snapshot(w io.Writer) error {
	p := m.cat.Len()
	s := snapshotV1{
		Version:  snapshotVersion,
		Digest:   m.cat.Digest(),
		Width:    m.g.Width,
		Height:   m.g.Height,
		Periodic: m.g.Periodic,
		Seed:     m.seed,
		Seeded:   m.seeded,
		Draws:    m.draws,
		Steps:    m.steps,
		State:    m.state,
		Masks:    bitset.Arena(m.g.Len(), p),
	}
	for i := 0; i < m.g.Len(); i++ {
		mask := bitset.At(s.Masks, i, p)
		m.wave.EachPattern(i, mask.Add)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(enc).Encode(&s); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	return enc.Close()
}

// Restore rebuilds a Model over cat from a stream written by Snapshot. The random
// source is replayed to the same position, so a restored Model continues exactly as
// the original would have. opts may set a logger; periodicity comes from the
// snapshot. Returns ErrSnapshotMismatch if cat is not the catalog the snapshot was
// taken over.
func Restore(cat *catalog.Catalog, r io.Reader, opts ...Option) (*Model, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var s snapshotV1
	if err := gob.NewDecoder(dec).Decode(&s); err != nil {
		return nil, fmt.Errorf("gob decode: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrSnapshotMismatch, s.Version)
	}
	if s.Digest != cat.Digest() {
		return nil, fmt.Errorf("%w: catalog digest %s, want %s", ErrSnapshotMismatch, cat.Digest(), s.Digest)
	}

	m, err := New(cat, s.Width, s.Height, append(opts, WithPeriodic(s.Periodic))...)
	if err != nil {
		return nil, err
	}
	p := cat.Len()
	if len(s.Masks) != m.g.Len()*bitset.Words(p) {
		return nil, fmt.Errorf("%w: %d mask words for %d cells", ErrSnapshotMismatch, len(s.Masks), m.g.Len())
	}
	for i := 0; i < m.g.Len(); i++ {
		mask := bitset.At(s.Masks, i, p)
		for t := 0; t < p; t++ {
			if !mask.Has(t) {
				m.wave.Ban(i, t)
			}
		}
	}
	m.wave.PropagateAll()

	m.seed, m.seeded, m.draws, m.steps, m.state = s.Seed, s.Seeded, s.Draws, s.Steps, s.State
	if s.Seeded {
		m.rng = replay(s.Seed, s.Draws)
	}
	return m, nil
}
