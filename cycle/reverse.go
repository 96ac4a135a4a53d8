package cycle

// ReversePrefix reverses seq[0..at-1] in place.
//
// Caller contract: seq[0]+seq[at] is a perfect square. After the move the old
// first vertex sits at at-1, next to seq[at], so the path property holds; the
// new first vertex (old seq[at-1]) becomes the closure candidate. The
// contract is not re-verified here.
//
// Only the moved positions are re-indexed.
//
// Complexity: O(at).
func (s *State) ReversePrefix(at int) error {
	if at < 0 || at >= len(s.seq) {
		return ErrIndexOutOfRange
	}
	s.reverseRange(0, at-1)

	return nil
}

// ReverseSuffix reverses seq[at+1..n-1] in place.
//
// Caller contract: seq[at]+seq[n-1] is a perfect square. After the move the
// old last vertex sits at at+1, next to seq[at]; the new last vertex (old
// seq[at+1]) becomes the closure candidate. The contract is not re-verified here.
//
// Complexity: O(n-1-at).
func (s *State) ReverseSuffix(at int) error {
	if at < 0 || at >= len(s.seq) {
		return ErrIndexOutOfRange
	}
	s.reverseRange(at+1, len(s.seq)-1)

	return nil
}

// reverseRange reverses seq[i..j] inclusive and repairs index for every
// element it moves. Empty or single-element ranges are no-ops.
func (s *State) reverseRange(i, j int) {
	for i < j {
		s.seq[i], s.seq[j] = s.seq[j], s.seq[i]
		s.index[s.seq[i]] = i
		s.index[s.seq[j]] = j
		i++
		j--
	}
}
