package safeops

import (
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/logger"
)

// DefaultOverwrite is the overwrite mode of CopyFileDefault.
const DefaultOverwrite = true

// deletedSuffix ends the names of entries renamed aside.
const deletedSuffix = ".deleted"

type option struct {
	logger logger.Logger
	token  func() uuid.UUID
}

func newOption() *option {
	return &option{
		logger: logger.NewNopLogger(),
		token:  uuid.New,
	}
}

// Option is the options that could be passed to New.
type Option func(*option)

// Logger sets where the operations trace their steps, which
// is discarded by default.
func Logger(value logger.Logger) Option {
	return func(o *option) {
		o.logger = value
	}
}

// TokenSource sets the generator of the unique tokens used
// for renaming entries aside, which is uuid.New by default.
func TokenSource(value func() uuid.UUID) Option {
	return func(o *option) {
		o.token = value
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

// Operations carries out the safe operations on an access
// layer. It holds no state of its own besides its options.
type Operations struct {
	fs    ioapi.FS
	log   logger.Logger
	token func() uuid.UUID
}

func New(fs ioapi.FS, opts ...Option) *Operations {
	option := newOption()
	Options(opts...)(option)
	return &Operations{
		fs:    fs,
		log:   option.logger,
		token: option.token,
	}
}

// DeletedFileName is the name a file is renamed to when it
// cannot be deleted, with the token as 32 hex digits.
func DeletedFileName(path string, token uuid.UUID) string {
	return path + "." + hex.EncodeToString(token[:]) + deletedSuffix
}

// DeletedDirectoryName is the name a directory is renamed to
// when it cannot be deleted, with the token as braced GUID.
func DeletedDirectoryName(path string, token uuid.UUID) string {
	return path + ".{" + token.String() + "}" + deletedSuffix
}

// tolerable tells whether the failure is one that the safe
// operations swallow after renaming.
func tolerable(err error) bool {
	return ioapi.IsAccessDenied(err) || ioapi.IsSystemError(err)
}

// FileExists never fails, an empty path does not exist.
func (o *Operations) FileExists(path string) bool {
	return path != "" && o.fs.FileExists(path)
}

// DirectoryExists never fails, an empty path does not exist.
func (o *Operations) DirectoryExists(path string) bool {
	return path != "" && o.fs.DirectoryExists(path)
}
