package naming

import "sync"

// ClaimTracker records which input file owns each resolved output path
// within a single batch run. A second input resolving to an already-claimed
// path is a conflict: renaming it silently would bypass the overwrite check,
// so the caller fails that job instead. All methods are goroutine-safe.
type ClaimTracker struct {
	mu     sync.Mutex
	owners map[string]string // output path → input path that owns it
}

// NewClaimTracker creates a ready-to-use tracker.
func NewClaimTracker() *ClaimTracker {
	return &ClaimTracker{owners: make(map[string]string)}
}

// Claim registers output as owned by input. It returns ok=true when the
// path was unclaimed or already owned by the same input. On a conflict it
// returns the owning input path and ok=false, leaving ownership unchanged.
func (t *ClaimTracker) Claim(input, output string) (owner string, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	owner, exists := t.owners[output]
	if exists && owner != input {
		return owner, false
	}
	t.owners[output] = input
	return input, true
}
