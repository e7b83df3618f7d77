package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/supervillain/ensemble"
	"github.com/katalvlaran/supervillain/generator"
)

// IndexFile is the name of the run index inside a store directory.
const IndexFile = "runs.db"

// Store keeps the snapshots and manifests of many runs in one directory,
// with a run index beside them.
type Store struct {
	dir   string
	index *Index
	now   func() time.Time
}

// Meta carries run parameters that are not part of the chain itself.
// Stride is the thinning the generator was assembled with, so a later
// process can rebuild it before restoring its state.
type Meta struct {
	Seed        uint64
	Parallelism int
	Stride      int
}

// Open opens or creates a store in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	index, err := OpenIndex(filepath.Join(dir, IndexFile))
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir, index: index, now: time.Now}, nil
}

// Close closes the index.
func (s *Store) Close() error { return s.index.Close() }

// Index exposes the run index.
func (s *Store) Index() *Index { return s.index }

// SnapshotPath is where the snapshot of run id lives.
func (s *Store) SnapshotPath(id string) string {
	return filepath.Join(s.dir, id+".chain.zst")
}

// ManifestPath is where the manifest of run id lives.
func (s *Store) ManifestPath(id string) string {
	return filepath.Join(s.dir, id+".yaml")
}

// Save writes the snapshot and manifest of run id and records it in the
// index. Saving an existing id overwrites its snapshot and keeps its
// creation time.
func (s *Store) Save(ctx context.Context, id string, e *ensemble.Ensemble, gen generator.Generator, meta Meta) (Run, error) {
	snap, err := Capture(id, e, gen)
	if err != nil {
		return Run{}, err
	}
	path := s.SnapshotPath(id)
	if err := Write(path, snap); err != nil {
		return Run{}, fmt.Errorf("checkpoint: write %s: %w", id, err)
	}

	now := s.now().UTC()
	m := Manifest{
		RunID:          id,
		Created:        now,
		Updated:        now,
		Action:         snap.Header.Action,
		Generator:      snap.Header.Generator,
		Seed:           meta.Seed,
		Parallelism:    meta.Parallelism,
		Stride:         meta.Stride,
		Configurations: snap.Header.Configurations,
		Snapshot:       filepath.Base(path),
		Report:         gen.Report(),
	}
	previous, err := ReadManifest(s.ManifestPath(id))
	switch {
	case err == nil:
		m.Created = previous.Created
	case !errors.Is(err, fs.ErrNotExist):
		return Run{}, err
	}
	if err := WriteManifest(s.ManifestPath(id), m); err != nil {
		return Run{}, err
	}

	run := Run{
		ID:             id,
		Created:        m.Created,
		Updated:        m.Updated,
		Action:         m.Action,
		Generator:      m.Generator,
		Seed:           m.Seed,
		Configurations: m.Configurations,
		Snapshot:       path,
	}
	if err := s.index.Record(ctx, run); err != nil {
		return Run{}, err
	}
	return run, nil
}

// Load reads the snapshot and manifest of run id.
func (s *Store) Load(ctx context.Context, id string) (Snapshot, Manifest, error) {
	run, err := s.index.Get(ctx, id)
	if err != nil {
		return Snapshot{}, Manifest{}, err
	}
	snap, err := Read(run.Snapshot)
	if err != nil {
		return Snapshot{}, Manifest{}, fmt.Errorf("checkpoint: read %s: %w", id, err)
	}
	m, err := ReadManifest(s.ManifestPath(id))
	if err != nil {
		return Snapshot{}, Manifest{}, err
	}
	return snap, m, nil
}
