package sharelock

import (
	"path"
	"strings"
	"sync"
)

// Mode is a set of the operations a handle performs on its
// path, or lets other handles perform.
type Mode uint8

const (
	Read Mode = 1 << iota
	Write
	Delete

	None Mode = 0
	All       = Read | Write | Delete
)

// Key normalizes a path into the form used by the table.
func Key(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.ToLower(path.Clean("/" + p))
}

// ancestors lists the parent directories of the key, the
// nearest one first and the root excluded.
func ancestors(key string) []string {
	var result []string
	for dir := path.Dir(key); dir != "/"; dir = path.Dir(dir) {
		result = append(result, dir)
	}
	return result
}

// Handle is what a successful acquisition returns, it must
// be released once the caller is done with the path.
type Handle struct {
	table  *Table
	key    string
	access Mode
	share  Mode

	// tree handles stand for the removal or the renaming of
	// the path, which conflicts with handles below it too.
	tree     bool
	released bool
}

// compatible tells whether two handles may be open on the
// same path at once, each one sharing what the other does.
func compatible(a, b *Handle) bool {
	return a.access&^b.share == 0 && b.access&^a.share == 0
}

// Key returns the normalized path held by the handle.
func (h *Handle) Key() string {
	return h.key
}

// IsExclusive tells whether the handle holds the path for
// deletion or renaming.
func (h *Handle) IsExclusive() bool {
	return h.tree
}

// Release gives the path back, it is safe to call it more
// than once.
func (h *Handle) Release() {
	h.table.release(h)
}

// Table records the handles open on every path, with the
// access they were opened for and what they share.
//
// Acquisitions never block, they fail immediately. The zero
// value is an empty table ready for use.
type Table struct {
	mtx     sync.Mutex
	handles map[string][]*Handle

	// below counts the handles open under each directory.
	below map[string]int
}

func (t *Table) conflicts(h *Handle) bool {
	for _, other := range t.handles[h.key] {
		if other.tree || !compatible(h, other) {
			return true
		}
	}
	for _, dir := range ancestors(h.key) {
		for _, other := range t.handles[dir] {
			if other.tree {
				return true
			}
		}
	}
	return h.tree && t.below[h.key] > 0
}

func (t *Table) acquire(h *Handle) *Handle {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.conflicts(h) {
		return nil
	}
	if t.handles == nil {
		t.handles = make(map[string][]*Handle)
		t.below = make(map[string]int)
	}
	t.handles[h.key] = append(t.handles[h.key], h)
	for _, dir := range ancestors(h.key) {
		t.below[dir]++
	}
	return h
}

func (t *Table) release(h *Handle) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if h.released {
		return
	}
	h.released = true
	open := t.handles[h.key]
	for i, other := range open {
		if other == h {
			open = append(open[:i], open[i+1:]...)
			break
		}
	}
	if len(open) == 0 {
		delete(t.handles, h.key)
	} else {
		t.handles[h.key] = open
	}
	for _, dir := range ancestors(h.key) {
		if t.below[dir]--; t.below[dir] == 0 {
			delete(t.below, dir)
		}
	}
}

// Open records a handle accessing the path and sharing it
// with others as told by share. It returns nil when an open
// handle does not share what access asks for or wants what
// share does not grant, or when the path is being removed.
func (t *Table) Open(p string, access, share Mode) *Handle {
	return t.acquire(&Handle{
		table: t, key: Key(p), access: access, share: share,
	})
}

// Exclusive holds the path for deleting or renaming it. It
// returns nil when a handle on the path does not share
// deletion, anything below it is open or an ancestor is being
// removed. The root is never available.
func (t *Table) Exclusive(p string) *Handle {
	key := Key(p)
	if key == "/" {
		return nil
	}
	return t.acquire(&Handle{
		table: t, key: key, access: Delete, share: Read | Write, tree: true,
	})
}
