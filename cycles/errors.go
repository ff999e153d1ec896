package cycles

import "errors"

// ErrInvalidCycleRecord indicates a cycle record violating its constraints:
// non-positive length, negative period length, or period length exceeding
// cycle length. Always wrapped with the owning user and cycle id.
// Usage: if errors.Is(err, cycles.ErrInvalidCycleRecord) { ... }.
var ErrInvalidCycleRecord = errors.New("cycles: invalid cycle record")
