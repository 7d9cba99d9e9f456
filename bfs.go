package dpll

import (
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type frontierStatus uint8

const (
	statusTBD frontierStatus = iota
	statusFail
)

// frontier is the breadth-first driver's explicit dense array of live
// configurations with a parallel status array. Capacity is tracked
// explicitly and grown by doubling, rather than left to the language's
// slice growth, since the doubling and compaction points are load-bearing
// for the round-based algorithm below, not an incidental detail.
type frontier struct {
	configs  []*Configuration
	status   []frontierStatus
	occupied int
	capacity int
}

func newFrontier(initial *Configuration) *frontier {
	fr := &frontier{
		configs:  make([]*Configuration, 1),
		status:   make([]frontierStatus, 1),
		capacity: 1,
	}
	fr.configs[0] = initial
	fr.status[0] = statusTBD
	fr.occupied = 1
	return fr
}

// grow doubles the frontier's capacity. Allocation failure surfaces as an
// error rather than a propagated panic, so the caller can abort the
// search instead of crashing the process.
func (fr *frontier) grow() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("dpll: frontier allocator failure growing past capacity %d: %v", fr.capacity, r)
		}
	}()
	newCap := fr.capacity * 2
	if newCap == 0 {
		newCap = 1
	}
	nc := make([]*Configuration, newCap)
	ns := make([]frontierStatus, newCap)
	copy(nc, fr.configs[:fr.occupied])
	copy(ns, fr.status[:fr.occupied])
	fr.configs, fr.status, fr.capacity = nc, ns, newCap
	return nil
}

// append adds cfg as a new TBD slot, growing capacity first if full.
func (fr *frontier) append(cfg *Configuration) error {
	if fr.occupied == fr.capacity {
		if err := fr.grow(); err != nil {
			return err
		}
	}
	fr.configs[fr.occupied] = cfg
	fr.status[fr.occupied] = statusTBD
	fr.occupied++
	return nil
}

// compact walks from the tail backward, moving live slots over FAILs from
// the head, and shrinks occupied to the resulting live count. It preserves
// the multiset of non-FAIL slots.
func (fr *frontier) compact() {
	left, right := 0, fr.occupied-1
	for left <= right {
		for left <= right && fr.status[left] != statusFail {
			left++
		}
		for left <= right && fr.status[right] == statusFail {
			right--
		}
		if left < right {
			fr.configs[left], fr.configs[right] = fr.configs[right], fr.configs[left]
			fr.status[left], fr.status[right] = fr.status[right], fr.status[left]
			left++
			right--
		}
	}
	fr.occupied = left
}

func (fr *frontier) countTBD() int {
	n := 0
	for _, s := range fr.status[:fr.occupied] {
		if s == statusTBD {
			n++
		}
	}
	return n
}

// BFS runs the explicit breadth-first frontier driver against f, using
// choose to pick the branching literal at each live node. Every live node
// advances one step per round (one clauseLengthReduce + pureReduce pass),
// and the frontier is compacted and grown as occupancy demands.
func BFS(f *Formula, choose Chooser) (*Configuration, bool, Stats, error) {
	stats := Stats{}
	fr := newFrontier(newConfiguration(f))

	for {
		n := fr.occupied
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.WithFields(logrus.Fields{
				"occupied": fr.occupied,
				"capacity": fr.capacity,
				"tbd":      fr.countTBD(),
			}).Debugf("dpll: bfs round start, slot statuses: %# v", pretty.Formatter(fr.status[:n]))
		}
		// Iterate from the back so newly appended children (always placed
		// at index >= n) are never visited within this round.
		for i := n - 1; i >= 0; i-- {
			if fr.status[i] != statusTBD {
				continue
			}
			cfg := fr.configs[i]

			if !clauseLengthReduce(cfg, f) {
				fr.status[i] = statusFail
				continue
			}
			pureReduce(cfg, f)
			if cfg.allSatisfied(f) {
				winner := cfg.clone()
				return winner, true, stats, nil
			}

			lit := choose(cfg, f)
			if lit == 0 {
				logrus.WithField("clauses", f.C).Warn("dpll: chooser returned 0 with unsatisfied clauses present")
				fr.status[i] = statusFail
				continue
			}

			stats.Decisions++
			// Clone the pre-assignment state before mutating cfg in place.
			child := cfg.clone()
			cfg.assignLit(f, lit)
			child.assignLit(f, -lit)
			if err := fr.append(child); err != nil {
				return nil, false, stats, err
			}
		}

		tbd := fr.countTBD()
		if tbd == 0 {
			return nil, false, stats, nil
		}
		if tbd < fr.occupied/2 || fr.occupied > fr.capacity/2 {
			fr.compact()
			stats.FrontierCompactions++
		}
		if fr.occupied > fr.capacity/2 {
			if err := fr.grow(); err != nil {
				return nil, false, stats, err
			}
			stats.FrontierGrowths++
		}
	}
}
