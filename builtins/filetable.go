package builtins

import (
	"os"
	"sort"
	"sync"
)

// openFile is one table entry; the table exclusively owns the *os.File
type openFile struct {
	handle uint64
	file   *os.File
	path   string
}

// FileTable maps small integer handles to open files. Handles are
// allocated from a monotonically increasing counter and never reused
// for the table's lifetime; an entry exists exactly while the file is
// open. The host injects a table into the file builtins, one per
// session or one shared, so concurrent evaluations stay safe: the
// lock serializes the counter and the map.
//
// Handles a script never closes persist until the table itself is
// torn down; the table does not reclaim them on its own.
type FileTable struct {
	mu         sync.Mutex
	nextHandle uint64
	open       map[uint64]*openFile
}

// NewFileTable creates an empty table; the first handle issued is 1
func NewFileTable() *FileTable {
	return &FileTable{
		nextHandle: 1,
		open:       make(map[uint64]*openFile),
	}
}

// Insert stores an open file and returns its newly allocated handle,
// strictly larger than every handle issued before it
func (t *FileTable) Insert(file *os.File, path string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	handle := t.nextHandle
	t.nextHandle++
	t.open[handle] = &openFile{handle: handle, file: file, path: path}
	return handle
}

// Get looks up a handle; ok is false for handles that were never
// issued or have been closed
func (t *FileTable) Get(handle uint64) (*openFile, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f, ok := t.open[handle]
	return f, ok
}

// Drop removes a handle and closes the underlying file, releasing the
// resource. Reports whether the handle existed.
func (t *FileTable) Drop(handle uint64) bool {
	t.mu.Lock()
	f, ok := t.open[handle]
	delete(t.open, handle)
	t.mu.Unlock()
	if ok {
		_ = f.file.Close()
	}
	return ok
}

// Handles returns all live handles in ascending order
func (t *FileTable) Handles() []uint64 {
	t.mu.Lock()
	handles := make([]uint64, 0, len(t.open))
	for h := range t.open {
		handles = append(handles, h)
	}
	t.mu.Unlock()
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}

// CloseAll releases every open file; used at session teardown
func (t *FileTable) CloseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for h, f := range t.open {
		_ = f.file.Close()
		delete(t.open, h)
	}
}
