// Package split partitions users into train and test sets for the model
// that consumes the feature table.
//
// Sampling is deterministic by construction: the seed is a mandatory
// parameter, never an implicit clock or global source. The same (users,
// frac, seed) triple always yields the same partition.
package split

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/cyclefeat/features"
)

// ErrBadFraction indicates a train fraction outside the open interval (0, 1).
var ErrBadFraction = errors.New("split: fraction out of range")

// ErrTooFewUsers indicates a roster with fewer than two distinct users,
// which cannot populate both sides of a partition.
var ErrTooFewUsers = errors.New("split: too few users")

// Users partitions the roster into train and test sets, assigning
// round(frac·N) deduplicated users to train, clamped so both sets stay
// non-empty. Both outputs are sorted ascending; together they cover the
// roster exactly once.
func Users(users []string, frac float64, seed int64) (train, test []string, err error) {
	if frac <= 0 || frac >= 1 {
		return nil, nil, fmt.Errorf("%w: %v must be in (0, 1)", ErrBadFraction, frac)
	}

	// Dedup and sort so the shuffle below starts from a canonical order —
	// input order must not leak into the partition.
	seen := make(map[string]struct{}, len(users))
	roster := make([]string, 0, len(users))
	for _, u := range users {
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		roster = append(roster, u)
	}
	sort.Strings(roster)
	if len(roster) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 distinct users, got %d", ErrTooFewUsers, len(roster))
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(roster), func(i, j int) { roster[i], roster[j] = roster[j], roster[i] })

	// Rounding can empty one side on tiny rosters (2 users at frac 0.8
	// rounds to cut 2); clamp so both sets keep at least one user.
	cut := int(math.Round(frac * float64(len(roster))))
	if cut < 1 {
		cut = 1
	}
	if cut > len(roster)-1 {
		cut = len(roster) - 1
	}
	train = append([]string{}, roster[:cut]...)
	test = append([]string{}, roster[cut:]...)
	sort.Strings(train)
	sort.Strings(test)

	return train, test, nil
}

// Tables splits a feature table by train-set membership. Rows of users in
// train go to the first table, everyone else's to the second; rows are
// shared, not copied, since both views stay read-only snapshots.
func Tables(f features.Table, train []string) (trainT, testT features.Table) {
	members := make(map[string]struct{}, len(train))
	for _, u := range train {
		members[u] = struct{}{}
	}

	trainT = make(features.Table)
	testT = make(features.Table)
	for k, row := range f {
		if _, ok := members[k.User]; ok {
			trainT[k] = row
		} else {
			testT[k] = row
		}
	}

	return trainT, testT
}
