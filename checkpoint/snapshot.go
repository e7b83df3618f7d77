package checkpoint

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/supervillain/ensemble"
	"github.com/katalvlaran/supervillain/generator"
)

// Capture snapshots a chain and the generator that produced it.
func Capture(runID string, e *ensemble.Ensemble, gen generator.Generator) (Snapshot, error) {
	state, err := generator.MarshalState(gen)
	if err != nil {
		return Snapshot{}, fmt.Errorf("checkpoint: %w", err)
	}
	last := -1
	if e.Len() > 0 {
		last = e.Index[e.Len()-1]
	}
	return Snapshot{
		Header: Header{
			Version:        Version,
			RunID:          runID,
			Action:         Describe(e.Action),
			Generator:      gen.String(),
			Configurations: e.Len(),
			LastIndex:      last,
		},
		Configurations: e.Configurations,
		Index:          e.Index,
		Inline:         e.Inline,
		Generator:      state,
	}, nil
}

// Ensemble rebuilds the chain.
func (s Snapshot) Ensemble() (*ensemble.Ensemble, error) {
	a, err := s.Header.Action.Build()
	if err != nil {
		return nil, err
	}
	if len(s.Configurations) != s.Header.Configurations || len(s.Index) != len(s.Configurations) {
		return nil, fmt.Errorf("%w: %d configurations, %d labels, header says %d",
			ErrMismatch, len(s.Configurations), len(s.Index), s.Header.Configurations)
	}
	e := ensemble.New(a, s.Configurations)
	copy(e.Index, s.Index)
	if s.Inline != nil {
		e.Inline = s.Inline
	}
	return e, nil
}

// Restore loads the persisted state into gen, which must have the same
// structure as the generator that was captured.
func (s Snapshot) Restore(gen generator.Generator) error {
	if gen.String() != s.Header.Generator {
		return fmt.Errorf("%w: generator %s, snapshot has %s", ErrMismatch, gen, s.Header.Generator)
	}
	if err := generator.UnmarshalState(gen, s.Generator); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}

// Write stores s at path, creating parent directories.
func Write(path string, s Snapshot) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(enc, 256*1024)

	hb, err := json.Marshal(s.Header)
	if err != nil {
		return fmt.Errorf("checkpoint: header: %w", err)
	}
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&s); err != nil {
		return fmt.Errorf("checkpoint: gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return enc.Close()
}

// Read loads a snapshot written by Write.
func Read(path string) (Snapshot, error) {
	var s Snapshot
	br, closer, err := open(path)
	if err != nil {
		return s, err
	}
	defer closer()

	header, err := readHeader(br)
	if err != nil {
		return s, err
	}
	if err := gob.NewDecoder(br).Decode(&s); err != nil {
		return s, fmt.Errorf("checkpoint: gob decode: %w", err)
	}
	if s.Header != header {
		return s, fmt.Errorf("%w: header line differs from body", ErrMismatch)
	}
	return s, nil
}

// ReadHeader decodes only the header line.
func ReadHeader(path string) (Header, error) {
	br, closer, err := open(path)
	if err != nil {
		return Header{}, err
	}
	defer closer()
	return readHeader(br)
}

func open(path string) (*bufio.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	closer := func() {
		dec.Close()
		_ = f.Close()
	}
	return bufio.NewReaderSize(dec, 256*1024), closer, nil
}

func readHeader(br *bufio.Reader) (Header, error) {
	var h Header
	line, err := br.ReadBytes('\n')
	if err != nil {
		return h, fmt.Errorf("checkpoint: header: %w", err)
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, fmt.Errorf("checkpoint: header: %w", err)
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	return h, nil
}
