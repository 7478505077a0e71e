// Package frontier implements a minimum-priority container with a true
// decrease-key operation, used to drive best-first search.
//
// The container is a binary heap (container/heap) whose items remember their
// index, plus a map from item to heap slot. This gives:
//
//   - Insert:      O(log n)
//   - DecreaseKey: O(log n) via heap.Fix
//   - PopMin:      O(log n)
//   - IsEmpty/Len/Contains/Key: O(1)
//
// Equal keys pop in insertion order, so a search driven by a Frontier is
// reproducible run to run.
//
// Errors:
//
//   - ErrDuplicate:       Insert of an item already present.
//   - ErrAbsent:          DecreaseKey of an item not present.
//   - ErrKeyNotDecreased: DecreaseKey with a key that is not strictly smaller.
//   - ErrEmpty:           PopMin on an empty frontier.
package frontier
