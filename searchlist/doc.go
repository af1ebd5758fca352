// Package searchlist provides a sorted, hash-indexed doubly linked list used
// as the frontier of a shortest-path search.
//
// Overview:
//
//   - Elements are kept in ascending order of a caller-supplied key
//     (func(T) float64), typically a search record's tentative distance.
//   - Equal keys keep FIFO order: a newly added element goes after every
//     element already holding the same key.
//   - Each element is indexed by identity, so Contains/Remove/Reposition find
//     it in O(1) instead of scanning.
//
// Decrease-key:
//
// The key of an element may change while it is in the list. After the change
// the caller invokes Reposition(v), which walks from the element's current
// position toward the new one and relinks it there. The resulting position is
// exactly where Add would place the element, so ties still resolve FIFO. The
// walk is O(k) in the distance moved; for the decreasing keys of Dijkstra's
// relaxation it never visits elements after the old position.
//
// Operations:
//
//	New(key)          O(1)
//	Add(v)            O(n)   sorted insert, FIFO among equals
//	RemoveFirst()     O(1)   extract-min
//	Reposition(v)     O(k)   k = positions moved
//	Remove(v)         O(1)
//	Contains(v)       O(1)
//	First(), Len()    O(1)
//	Values()          O(n)   snapshot in order
//
// The list is not safe for concurrent use; each search owns its own list.
package searchlist
