package dpll

// Stats carries informational counters about a search run. The set of
// fields may grow over time; callers should not assume it is exhaustive.
type Stats struct {
	// Decisions is the number of branching decisions taken (DFS: recursive
	// calls that picked a literal; BFS: frontier slots split in two).
	Decisions int64
	// FrontierGrowths is the number of times the BFS frontier doubled its
	// capacity. Always 0 for DFS.
	FrontierGrowths int64
	// FrontierCompactions is the number of times the BFS frontier was
	// compacted to evict FAIL slots. Always 0 for DFS.
	FrontierCompactions int64
}
