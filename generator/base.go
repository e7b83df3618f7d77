package generator

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Base is embedded by leaf updaters: counters, a private stream and the
// sweeper for colour-class kernels. It implements Stateful.
type Base struct {
	Stats
	RNG     *Stream
	Sweeper Sweeper
}

// NewBase builds the shared part of an updater from opts.
func NewBase(opts ...Option) Base {
	o := Apply(opts...)
	return Base{
		RNG:     NewStream(o.Seed),
		Sweeper: NewSweeper(o.Parallelism),
	}
}

// baseState is the persisted form of Base. Extra carries updater-specific
// counters, e.g. worm length statistics.
type baseState struct {
	Stats  Stats
	Stream []byte
	Extra  []byte
}

// MarshalState encodes the counters and stream position.
func (b *Base) MarshalState() ([]byte, error) {
	return b.MarshalStateWith(nil)
}

// UnmarshalState restores what MarshalState wrote.
func (b *Base) UnmarshalState(data []byte) error {
	_, err := b.UnmarshalStateWith(data)
	return err
}

// MarshalStateWith encodes the counters, the stream and an extra payload.
func (b *Base) MarshalStateWith(extra []byte) ([]byte, error) {
	stream, err := b.RNG.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("generator: stream: %w", err)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(baseState{Stats: b.Stats, Stream: stream, Extra: extra}); err != nil {
		return nil, fmt.Errorf("generator: encode state: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalStateWith restores the counters and stream, returning the extra payload.
func (b *Base) UnmarshalStateWith(data []byte) ([]byte, error) {
	var st baseState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrState, err)
	}
	if err := b.RNG.UnmarshalBinary(st.Stream); err != nil {
		return nil, fmt.Errorf("%w: stream: %v", ErrState, err)
	}
	b.Stats = st.Stats
	return st.Extra, nil
}

// marshalChildren persists the state of every Stateful member of a composite.
func marshalChildren(gens []Generator) ([]byte, error) {
	states := make([][]byte, len(gens))
	for i, g := range gens {
		s, ok := g.(Stateful)
		if !ok {
			continue
		}
		data, err := s.MarshalState()
		if err != nil {
			return nil, fmt.Errorf("%v: %w", g, err)
		}
		states[i] = data
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(states); err != nil {
		return nil, fmt.Errorf("generator: encode state: %w", err)
	}
	return buf.Bytes(), nil
}

func unmarshalChildren(gens []Generator, data []byte) error {
	var states [][]byte
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&states); err != nil {
		return fmt.Errorf("%w: %v", ErrState, err)
	}
	if len(states) != len(gens) {
		return fmt.Errorf("%w: %d states for %d generators", ErrState, len(states), len(gens))
	}
	for i, g := range gens {
		s, ok := g.(Stateful)
		if !ok || states[i] == nil {
			continue
		}
		if err := s.UnmarshalState(states[i]); err != nil {
			return fmt.Errorf("%v: %w", g, err)
		}
	}
	return nil
}

// MarshalState persists the state of g, or nil if g is not Stateful.
func MarshalState(g Generator) ([]byte, error) {
	s, ok := g.(Stateful)
	if !ok {
		return nil, nil
	}
	return s.MarshalState()
}

// UnmarshalState restores state written by MarshalState; nil data is a no-op.
func UnmarshalState(g Generator, data []byte) error {
	if data == nil {
		return nil
	}
	s, ok := g.(Stateful)
	if !ok {
		return fmt.Errorf("%w: %v keeps no state", ErrState, g)
	}
	return s.UnmarshalState(data)
}
