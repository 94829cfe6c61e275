package ioapi

import (
	"io"
	"os"
	"time"
)

// FileAttributes mirrors the FILE_ATTRIBUTE_* bit set.
type FileAttributes uint32

const (
	AttributeReadOnly          FileAttributes = 0x00000001
	AttributeHidden            FileAttributes = 0x00000002
	AttributeSystem            FileAttributes = 0x00000004
	AttributeDirectory         FileAttributes = 0x00000010
	AttributeArchive           FileAttributes = 0x00000020
	AttributeDevice            FileAttributes = 0x00000040
	AttributeNormal            FileAttributes = 0x00000080
	AttributeTemporary         FileAttributes = 0x00000100
	AttributeSparseFile        FileAttributes = 0x00000200
	AttributeReparsePoint      FileAttributes = 0x00000400
	AttributeCompressed        FileAttributes = 0x00000800
	AttributeOffline           FileAttributes = 0x00001000
	AttributeNotContentIndexed FileAttributes = 0x00002000
	AttributeEncrypted         FileAttributes = 0x00004000
)

// Has tells whether all bits of flag are set.
func (a FileAttributes) Has(flag FileAttributes) bool {
	return a&flag == flag
}

// CreationDisposition mirrors the dwCreationDisposition of
// CreateFile.
type CreationDisposition uint32

const (
	CreateNew        CreationDisposition = 1
	CreateAlways     CreationDisposition = 2
	OpenExisting     CreationDisposition = 3
	OpenAlways       CreationDisposition = 4
	TruncateExisting CreationDisposition = 5
)

// FileAccess mirrors the generic access rights of CreateFile.
type FileAccess uint32

const (
	GenericRead    FileAccess = 0x80000000
	GenericWrite   FileAccess = 0x40000000
	GenericExecute FileAccess = 0x20000000
	GenericAll     FileAccess = 0x10000000
)

// FileShare mirrors the dwShareMode of CreateFile.
type FileShare uint32

const (
	ShareNone   FileShare = 0
	ShareRead   FileShare = 0x00000001
	ShareWrite  FileShare = 0x00000002
	ShareDelete FileShare = 0x00000004
)

// SearchOption tells whether the enumeration descends into
// subdirectories.
type SearchOption int

const (
	TopDirectoryOnly SearchOption = iota
	AllDirectories
)

// AllPattern matches every entry of a directory.
const AllPattern = "*"

// FileTimes carries the three timestamps of a file. When
// setting them, zero values are left unchanged.
type FileTimes struct {
	Creation   time.Time
	LastAccess time.Time
	LastWrite  time.Time
}

// File is the open handle returned by CreateFile. Closing it
// releases the underlying handle.
type File interface {
	io.ReadWriteCloser
	io.Seeker
	Name() string
	Stat() (os.FileInfo, error)
	Sync() error
}

// FS is the OS access layer.
type FS interface {
	FileExists(path string) bool
	DirectoryExists(path string) bool

	DeleteFile(path string) error
	MoveFile(source, target string) error
	CopyFile(source, target string, overwrite bool) error

	// DeleteDirectory removes the directory, which must be
	// empty unless recursive is set.
	DeleteDirectory(path string, recursive bool) error
	MoveDirectory(source, target string) error

	// CreateDirectory creates the directory together with
	// any missing parent, it succeeds if it exists already.
	CreateDirectory(path string) error

	GetFileAttributes(path string) (FileAttributes, error)
	SetFileAttributes(path string, attributes FileAttributes) error
	GetFileTimes(path string) (FileTimes, error)
	SetFileTimes(path string, times FileTimes) error
	GetFileLength(path string) (uint64, error)
	GetFileOwner(path string) (string, error)

	// GetFiles and GetDirectories return the full paths of
	// the entries matching the wildcard pattern, sorted by
	// name within each directory.
	GetFiles(path, pattern string, option SearchOption) ([]string, error)
	GetDirectories(path, pattern string, option SearchOption) ([]string, error)

	CreateFile(
		path string, disposition CreationDisposition,
		access FileAccess, share FileShare,
	) (File, error)
	ReadAllBytes(path string) ([]byte, error)
}
