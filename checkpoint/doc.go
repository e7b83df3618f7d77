// Package checkpoint persists chains so they can be inspected and extended.
//
// A run is stored as three artifacts:
//
//   - a snapshot: one JSON header line followed by a gob body, inside a
//     zstd stream. It holds the action parameters, every configuration with
//     its index, the inline observables and the generator state, including
//     the position of every random stream;
//   - a YAML manifest next to it, for humans;
//   - a row in a sqlite index of runs, keyed by a UUIDv7 run id.
//
// Restoring the generator state resumes the random streams exactly, so k
// steps, a save and a restore, and k more steps reproduce 2k uninterrupted
// steps.
package checkpoint
