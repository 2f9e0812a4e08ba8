// Package candidates implements C8, the candidate provider: a
// feasibility-checked, deterministically-ordered pool of questions for
// the planner to select from.
package candidates

import (
	"hash/fnv"
	"strconv"
)

// Seed returns the deterministic seed string for (studentID, sessSeq),
// per spec.md §4.8.
func Seed(studentID string, sessSeq int) string {
	return studentID + ":" + strconv.Itoa(sessSeq)
}

func fnvHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// rankKey returns the deterministic ordering key for questionID under
// seed: abs(hash(question_id) XOR hash(seed)), per spec.md §4.8. XOR of
// two uint64 hashes is itself a uint64 (no sign to take the absolute
// value of), which is the natural Go reading of the spec's "abs" — it
// guards against a signed-integer hash implementation, not against
// Go's unsigned FNV output.
func rankKey(questionID, seed string) uint64 {
	return fnvHash(questionID) ^ fnvHash(seed)
}
