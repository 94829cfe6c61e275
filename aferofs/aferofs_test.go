package aferofs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aegistudio/go-longpath/ioapi"
)

func newFS(t *testing.T) (afero.Fs, ioapi.FS) {
	inner := afero.NewMemMapFs()
	require.NoError(t, inner.MkdirAll("/root/dir/sub", 0777))
	require.NoError(t, afero.WriteFile(inner, "/root/dir/a.txt", []byte("alpha"), 0666))
	require.NoError(t, afero.WriteFile(inner, "/root/dir/b.log", []byte("beta"), 0666))
	require.NoError(t, afero.WriteFile(inner, "/root/dir/sub/c.txt", []byte("gamma"), 0666))
	return inner, New(inner, Owner(`BUILTIN\Administrators`))
}

func TestExists(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	assert.True(fs.FileExists("/root/dir/a.txt"))
	assert.False(fs.DirectoryExists("/root/dir/a.txt"))
	assert.True(fs.DirectoryExists("/root/dir/sub"))
	assert.True(fs.DirectoryExists("/root/dir/sub/"))
	assert.False(fs.FileExists("/root/dir/sub"))
	assert.False(fs.FileExists("/root/dir/missing"))
}

func TestDeleteFile(t *testing.T) {
	assert := assert.New(t)
	inner, fs := newFS(t)
	assert.NoError(fs.DeleteFile("/root/dir/a.txt"))
	exists, _ := afero.Exists(inner, "/root/dir/a.txt")
	assert.False(exists)

	err := fs.DeleteFile("/root/dir/a.txt")
	assert.True(ioapi.IsNotExist(err))
	assert.True(ioapi.IsSystemError(err))

	err = fs.DeleteFile("/root/dir/sub")
	assert.True(ioapi.IsAccessDenied(err))
}

func TestReadOnly(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	p := "/root/dir/a.txt"
	require.NoError(t, fs.SetFileAttributes(p,
		ioapi.AttributeReadOnly|ioapi.AttributeHidden))
	attributes, err := fs.GetFileAttributes(p)
	assert.NoError(err)
	assert.True(attributes.Has(ioapi.AttributeReadOnly | ioapi.AttributeHidden))

	err = fs.DeleteFile(p)
	assert.True(ioapi.IsAccessDenied(err))
	_, err = fs.CreateFile(p, ioapi.OpenExisting, ioapi.GenericWrite, ioapi.ShareNone)
	assert.True(ioapi.IsAccessDenied(err))

	require.NoError(t, fs.SetFileAttributes(p, attributes&^ioapi.AttributeReadOnly))
	attributes, err = fs.GetFileAttributes(p)
	assert.NoError(err)
	assert.Equal(ioapi.AttributeHidden, attributes)
	assert.NoError(fs.DeleteFile(p))
}

func TestNormalAttributes(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	attributes, err := fs.GetFileAttributes("/root/dir/b.log")
	assert.NoError(err)
	assert.Equal(ioapi.AttributeNormal, attributes)
	attributes, err = fs.GetFileAttributes("/root/dir/sub")
	assert.NoError(err)
	assert.Equal(ioapi.AttributeDirectory, attributes)
}

func TestSharingViolation(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	p := "/root/dir/sub/c.txt"
	f, err := fs.CreateFile(p, ioapi.OpenExisting, ioapi.GenericRead, ioapi.ShareRead)
	require.NoError(t, err)

	err = fs.DeleteFile(p)
	assert.ErrorIs(err, ioapi.ErrSharingViolation)
	assert.True(ioapi.IsSystemError(err))
	assert.False(ioapi.IsAccessDenied(err))
	err = fs.MoveFile(p, "/root/dir/sub/d.txt")
	assert.ErrorIs(err, ioapi.ErrSharingViolation)
	err = fs.DeleteDirectory("/root/dir", true)
	assert.ErrorIs(err, ioapi.ErrSharingViolation)
	err = fs.MoveDirectory("/root/dir/sub", "/root/dir/moved")
	assert.ErrorIs(err, ioapi.ErrSharingViolation)

	require.NoError(t, f.Close())
	assert.NoError(fs.DeleteFile(p))
}

func TestShareDelete(t *testing.T) {
	_, fs := newFS(t)
	p := "/root/dir/a.txt"
	f, err := fs.CreateFile(p, ioapi.OpenExisting,
		ioapi.GenericRead, ioapi.ShareRead|ioapi.ShareDelete)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.NoError(t, fs.DeleteFile(p))
}

func TestShareNone(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	p := "/root/dir/a.txt"
	f, err := fs.CreateFile(p, ioapi.OpenExisting, ioapi.GenericWrite, ioapi.ShareNone)
	require.NoError(t, err)

	_, err = fs.ReadAllBytes(p)
	assert.ErrorIs(err, ioapi.ErrSharingViolation)
	_, err = fs.CreateFile(p, ioapi.OpenExisting, ioapi.GenericWrite, ioapi.ShareWrite)
	assert.ErrorIs(err, ioapi.ErrSharingViolation)
	err = fs.CopyFile(p, "/root/dir/copy.txt", true)
	assert.ErrorIs(err, ioapi.ErrSharingViolation)
	err = fs.CopyFile("/root/dir/b.log", p, true)
	assert.ErrorIs(err, ioapi.ErrSharingViolation)
	assert.False(fs.FileExists("/root/dir/copy.txt"))

	require.NoError(t, f.Close())
	data, err := fs.ReadAllBytes(p)
	assert.NoError(err)
	assert.Equal("alpha", string(data))
	assert.NoError(fs.CopyFile(p, "/root/dir/copy.txt", true))
}

func TestShareReadWrite(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	p := "/root/dir/a.txt"
	reader, err := fs.CreateFile(p, ioapi.OpenExisting,
		ioapi.GenericRead, ioapi.ShareRead|ioapi.ShareWrite)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	// Readers sharing reads only may come along.
	data, err := fs.ReadAllBytes(p)
	assert.NoError(err)
	assert.Equal("alpha", string(data))

	writer, err := fs.CreateFile(p, ioapi.OpenExisting,
		ioapi.GenericWrite, ioapi.ShareRead|ioapi.ShareWrite)
	require.NoError(t, err)

	// But not while a writer is open.
	_, err = fs.ReadAllBytes(p)
	assert.ErrorIs(err, ioapi.ErrSharingViolation)
	require.NoError(t, writer.Close())
	_, err = fs.ReadAllBytes(p)
	assert.NoError(err)
}

func TestRelativeRoot(t *testing.T) {
	assert := assert.New(t)
	inner := afero.NewMemMapFs()
	require.NoError(t, inner.MkdirAll(filepath.Join("cache", "sub"), 0777))
	require.NoError(t, afero.WriteFile(inner,
		filepath.Join("cache", "top.bin"), []byte("top"), 0666))
	require.NoError(t, afero.WriteFile(inner,
		filepath.Join("cache", "sub", "deep.bin"), []byte("deep"), 0666))
	fs := New(inner)

	files, err := fs.GetFiles("cache", "*", ioapi.AllDirectories)
	assert.NoError(err)
	assert.Equal([]string{
		filepath.Join("cache", "top.bin"),
		filepath.Join("cache", "sub", "deep.bin"),
	}, files)
	dirs, err := fs.GetDirectories("cache", "*", ioapi.TopDirectoryOnly)
	assert.NoError(err)
	assert.Equal([]string{filepath.Join("cache", "sub")}, dirs)

	assert.NoError(fs.DeleteDirectory("cache", true))
	assert.False(fs.DirectoryExists("cache"))
}

func TestMoveFile(t *testing.T) {
	assert := assert.New(t)
	inner, fs := newFS(t)
	err := fs.MoveFile("/root/dir/a.txt", "/root/dir/b.log")
	assert.ErrorIs(err, os.ErrExist)
	assert.True(ioapi.IsSystemError(err))

	err = fs.MoveFile("/root/dir/a.txt", "/root/missing/a.txt")
	assert.True(ioapi.IsNotExist(err))

	assert.NoError(fs.MoveFile("/root/dir/a.txt", "/root/dir/sub/a.txt"))
	data, err := afero.ReadFile(inner, "/root/dir/sub/a.txt")
	assert.NoError(err)
	assert.Equal("alpha", string(data))
	assert.False(fs.FileExists("/root/dir/a.txt"))
}

func TestCopyFile(t *testing.T) {
	assert := assert.New(t)
	inner, fs := newFS(t)
	assert.NoError(fs.CopyFile("/root/dir/a.txt", "/root/dir/copy.txt", false))
	data, err := afero.ReadFile(inner, "/root/dir/copy.txt")
	assert.NoError(err)
	assert.Equal("alpha", string(data))

	err = fs.CopyFile("/root/dir/b.log", "/root/dir/copy.txt", false)
	assert.True(ioapi.IsSystemError(err))
	assert.False(ioapi.IsAccessDenied(err))

	assert.NoError(fs.CopyFile("/root/dir/b.log", "/root/dir/copy.txt", true))
	data, err = afero.ReadFile(inner, "/root/dir/copy.txt")
	assert.NoError(err)
	assert.Equal("beta", string(data))

	err = fs.CopyFile("/root/dir/missing", "/root/dir/copy.txt", true)
	assert.True(ioapi.IsNotExist(err))
	err = fs.CopyFile("/root/dir/a.txt", "/root/nowhere/copy.txt", true)
	assert.True(ioapi.IsNotExist(err))
}

func TestCopyFileLockedTarget(t *testing.T) {
	_, fs := newFS(t)
	f, err := fs.CreateFile("/root/dir/b.log",
		ioapi.OpenExisting, ioapi.GenericRead, ioapi.ShareRead)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	err = fs.CopyFile("/root/dir/a.txt", "/root/dir/b.log", true)
	assert.ErrorIs(t, err, ioapi.ErrSharingViolation)
}

func TestDeleteDirectory(t *testing.T) {
	assert := assert.New(t)
	inner, fs := newFS(t)
	err := fs.DeleteDirectory("/root/dir", false)
	assert.ErrorIs(err, errDirectoryNotEmpty)
	assert.True(ioapi.IsSystemError(err))

	err = fs.DeleteDirectory("/root/dir/a.txt", true)
	assert.ErrorIs(err, errInvalidDirectory)

	assert.NoError(fs.DeleteDirectory("/root/dir", true))
	exists, _ := afero.DirExists(inner, "/root/dir")
	assert.False(exists)
	assert.True(fs.DirectoryExists("/root"))
}

func TestDeleteDirectoryReadOnlyChild(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	require.NoError(t, fs.SetFileAttributes(
		"/root/dir/sub/c.txt", ioapi.AttributeReadOnly))
	err := fs.DeleteDirectory("/root/dir", true)
	assert.True(ioapi.IsAccessDenied(err))
	assert.True(fs.FileExists("/root/dir/sub/c.txt"))
	assert.True(fs.DirectoryExists("/root/dir/sub"))
}

func TestMoveDirectory(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	stamp := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, fs.SetFileTimes(
		"/root/dir/sub/c.txt", ioapi.FileTimes{Creation: stamp}))
	assert.NoError(fs.MoveDirectory("/root/dir", "/root/renamed"))
	assert.False(fs.DirectoryExists("/root/dir"))
	assert.True(fs.FileExists("/root/renamed/sub/c.txt"))
	times, err := fs.GetFileTimes("/root/renamed/sub/c.txt")
	assert.NoError(err)
	assert.True(stamp.Equal(times.Creation))
}

func TestCreateDirectory(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	assert.NoError(fs.CreateDirectory("/root/x/y/z"))
	assert.True(fs.DirectoryExists("/root/x/y"))
	assert.NoError(fs.CreateDirectory("/root/x/y/z"))
	err := fs.CreateDirectory("/root/dir/a.txt")
	assert.True(ioapi.IsSystemError(err))
}

func TestFileTimes(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	p := "/root/dir/a.txt"
	write := time.Date(2021, 5, 6, 7, 8, 9, 0, time.UTC)
	access := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(fs.SetFileTimes(p, ioapi.FileTimes{
		LastWrite:  write,
		LastAccess: access,
	}))
	times, err := fs.GetFileTimes(p)
	assert.NoError(err)
	assert.True(write.Equal(times.LastWrite))
	assert.True(access.Equal(times.LastAccess))
	assert.True(write.Equal(times.Creation))
}

func TestLengthAndOwner(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	length, err := fs.GetFileLength("/root/dir/a.txt")
	assert.NoError(err)
	assert.Equal(uint64(5), length)
	owner, err := fs.GetFileOwner("/root/dir/a.txt")
	assert.NoError(err)
	assert.Equal(`BUILTIN\Administrators`, owner)
	_, err = fs.GetFileOwner("/root/dir/missing")
	assert.True(ioapi.IsNotExist(err))

	_, err = New(afero.NewMemMapFs()).GetFileOwner("/")
	assert.ErrorIs(err, ioapi.ErrNotSupported)
}

func TestCreateFile(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	_, err := fs.CreateFile("/root/dir/a.txt",
		ioapi.CreateNew, ioapi.GenericWrite, ioapi.ShareNone)
	assert.True(ioapi.IsSystemError(err))
	_, err = fs.CreateFile("/root/nowhere/new.txt",
		ioapi.CreateNew, ioapi.GenericWrite, ioapi.ShareNone)
	assert.True(ioapi.IsNotExist(err))

	f, err := fs.CreateFile("/root/dir/new.txt",
		ioapi.CreateNew, ioapi.GenericWrite, ioapi.ShareNone)
	require.NoError(t, err)
	_, err = f.Write([]byte("delta"))
	assert.NoError(err)
	assert.NoError(f.Close())
	data, err := fs.ReadAllBytes("/root/dir/new.txt")
	assert.NoError(err)
	assert.Equal("delta", string(data))
}

func TestEnumerate(t *testing.T) {
	assert := assert.New(t)
	_, fs := newFS(t)
	files, err := fs.GetFiles("/root/dir", "*", ioapi.TopDirectoryOnly)
	assert.NoError(err)
	assert.Equal([]string{"/root/dir/a.txt", "/root/dir/b.log"}, files)

	files, err = fs.GetFiles("/root/dir", "*.TXT", ioapi.AllDirectories)
	assert.NoError(err)
	assert.Equal([]string{"/root/dir/a.txt", "/root/dir/sub/c.txt"}, files)

	dirs, err := fs.GetDirectories("/root", "", ioapi.AllDirectories)
	assert.NoError(err)
	assert.Equal([]string{"/root/dir", "/root/dir/sub"}, dirs)

	_, err = fs.GetFiles("/root/missing", "*", ioapi.TopDirectoryOnly)
	assert.True(ioapi.IsNotExist(err))
}
