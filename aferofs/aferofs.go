package aferofs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/lpath"
	"github.com/aegistudio/go-longpath/sharelock"
)

var (
	errDirectoryNotEmpty = errors.New("the directory is not empty")
	errInvalidDirectory  = errors.New("the directory name is invalid")
)

type option struct {
	owner string
}

func newOption() *option {
	return &option{}
}

// Option is the options that could be passed to New.
type Option func(*option)

// Owner sets the account name reported as the owner of
// every entry. Without it owners are not supported.
func Owner(value string) Option {
	return func(o *option) {
		o.owner = value
	}
}

// Options is used to aggregate a bundle of options.
func Options(opts ...Option) Option {
	return func(o *option) {
		for _, opt := range opts {
			opt(o)
		}
	}
}

// metadata is what afero cannot record about an entry.
type metadata struct {
	attributes ioapi.FileAttributes
	creation   time.Time
	lastAccess time.Time
}

// extraAttributes are the attributes kept in metadata,
// the others are derived from the file mode.
const extraAttributes = ioapi.AttributeHidden |
	ioapi.AttributeSystem |
	ioapi.AttributeArchive |
	ioapi.AttributeTemporary |
	ioapi.AttributeNotContentIndexed |
	ioapi.AttributeOffline

type fileSystem struct {
	inner afero.Fs
	owner string
	locks sharelock.Table

	mtx  sync.Mutex
	meta map[string]*metadata
}

// New creates the OS access layer over the afero file
// system.
func New(fs afero.Fs, opts ...Option) ioapi.FS {
	option := newOption()
	Options(opts...)(option)
	return &fileSystem{
		inner: fs,
		owner: option.owner,
		meta:  make(map[string]*metadata),
	}
}

var _ ioapi.FS = (*fileSystem)(nil)

func clean(p string) string {
	return filepath.Clean(p)
}

// childPath appends name to dir. A dir without any separator,
// such as "cache" or ".", is extended with the separator of
// the host, which is what the inner file system understands.
func childPath(dir, name string) string {
	if dir != "" && !strings.ContainsAny(dir, `\/`) {
		return dir + string(filepath.Separator) + name
	}
	return lpath.Combine(dir, name)
}

func isReadOnly(mode os.FileMode) bool {
	return mode.Perm()&0200 == 0
}

func sharingViolation(op, p string) error {
	return ioapi.NewError(op, p, ioapi.ErrSharingViolation)
}

func (fs *fileSystem) stat(op, p string) (os.FileInfo, error) {
	info, err := fs.inner.Stat(clean(p))
	if err != nil {
		return nil, ioapi.NewError(op, p, err)
	}
	return info, nil
}

func (fs *fileSystem) lookupMeta(p string) *metadata {
	fs.mtx.Lock()
	defer fs.mtx.Unlock()
	return fs.meta[sharelock.Key(p)]
}

func (fs *fileSystem) updateMeta(p string, update func(*metadata)) {
	fs.mtx.Lock()
	defer fs.mtx.Unlock()
	key := sharelock.Key(p)
	m, ok := fs.meta[key]
	if !ok {
		m = &metadata{}
		fs.meta[key] = m
	}
	update(m)
}

// isBelow tells whether key is root or one of its
// descendants.
func isBelow(key, root string) bool {
	return key == root || strings.HasPrefix(key, root+"/")
}

func (fs *fileSystem) forgetMeta(p string) {
	fs.mtx.Lock()
	defer fs.mtx.Unlock()
	root := sharelock.Key(p)
	for key := range fs.meta {
		if isBelow(key, root) {
			delete(fs.meta, key)
		}
	}
}

func (fs *fileSystem) renameMeta(source, target string) {
	fs.mtx.Lock()
	defer fs.mtx.Unlock()
	from, to := sharelock.Key(source), sharelock.Key(target)
	moved := make(map[string]*metadata)
	for key, m := range fs.meta {
		if isBelow(key, from) {
			delete(fs.meta, key)
			moved[to+key[len(from):]] = m
		}
	}
	for key, m := range moved {
		fs.meta[key] = m
	}
}

func (fs *fileSystem) copyMeta(source, target string) {
	fs.mtx.Lock()
	defer fs.mtx.Unlock()
	delete(fs.meta, sharelock.Key(target))
	if m, ok := fs.meta[sharelock.Key(source)]; ok {
		copied := *m
		fs.meta[sharelock.Key(target)] = &copied
	}
}

func (fs *fileSystem) FileExists(p string) bool {
	info, err := fs.inner.Stat(clean(p))
	return err == nil && !info.IsDir()
}

func (fs *fileSystem) DirectoryExists(p string) bool {
	info, err := fs.inner.Stat(clean(p))
	return err == nil && info.IsDir()
}

// parentExists tells whether the directory that would hold
// p exists, since afero creates missing parents silently.
func (fs *fileSystem) parentExists(p string) bool {
	parent := lpath.DirectoryPath(p)
	return parent == "" || fs.DirectoryExists(parent)
}

func (fs *fileSystem) GetFileAttributes(p string) (ioapi.FileAttributes, error) {
	info, err := fs.stat("getattributes", p)
	if err != nil {
		return 0, err
	}
	var attributes ioapi.FileAttributes
	if info.IsDir() {
		attributes |= ioapi.AttributeDirectory
	}
	if isReadOnly(info.Mode()) {
		attributes |= ioapi.AttributeReadOnly
	}
	if m := fs.lookupMeta(p); m != nil {
		attributes |= m.attributes
	}
	if attributes == 0 {
		attributes = ioapi.AttributeNormal
	}
	return attributes, nil
}

func (fs *fileSystem) SetFileAttributes(
	p string, attributes ioapi.FileAttributes,
) error {
	info, err := fs.stat("setattributes", p)
	if err != nil {
		return err
	}
	perm := info.Mode().Perm() | 0200
	if attributes.Has(ioapi.AttributeReadOnly) {
		perm &^= 0222
	}
	if err := fs.inner.Chmod(clean(p), perm); err != nil {
		return ioapi.NewError("setattributes", p, err)
	}
	fs.updateMeta(p, func(m *metadata) {
		m.attributes = attributes & extraAttributes
	})
	return nil
}

func (fs *fileSystem) GetFileTimes(p string) (ioapi.FileTimes, error) {
	info, err := fs.stat("stat", p)
	if err != nil {
		return ioapi.FileTimes{}, err
	}
	result := ioapi.FileTimes{
		Creation:   info.ModTime(),
		LastAccess: info.ModTime(),
		LastWrite:  info.ModTime(),
	}
	if m := fs.lookupMeta(p); m != nil {
		if !m.creation.IsZero() {
			result.Creation = m.creation
		}
		if !m.lastAccess.IsZero() {
			result.LastAccess = m.lastAccess
		}
	}
	return result, nil
}

func (fs *fileSystem) SetFileTimes(p string, times ioapi.FileTimes) error {
	info, err := fs.stat("settimes", p)
	if err != nil {
		return err
	}
	if !times.LastWrite.IsZero() {
		access := times.LastAccess
		if access.IsZero() {
			access = info.ModTime()
		}
		if err := fs.inner.Chtimes(
			clean(p), access, times.LastWrite); err != nil {
			return ioapi.NewError("settimes", p, err)
		}
	}
	fs.updateMeta(p, func(m *metadata) {
		if !times.Creation.IsZero() {
			m.creation = times.Creation
		}
		if !times.LastAccess.IsZero() {
			m.lastAccess = times.LastAccess
		}
	})
	return nil
}

func (fs *fileSystem) GetFileLength(p string) (uint64, error) {
	info, err := fs.stat("stat", p)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, ioapi.NewError("stat", p, os.ErrPermission)
	}
	return uint64(info.Size()), nil
}

func (fs *fileSystem) GetFileOwner(p string) (string, error) {
	if _, err := fs.stat("owner", p); err != nil {
		return "", err
	}
	if fs.owner == "" {
		return "", ioapi.NewError("owner", p, ioapi.ErrNotSupported)
	}
	return fs.owner, nil
}
