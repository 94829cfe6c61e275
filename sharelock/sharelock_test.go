package sharelock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertEmpty(assert *assert.Assertions, table *Table) {
	table.mtx.Lock()
	defer table.mtx.Unlock()
	assert.Empty(table.handles)
	assert.Empty(table.below)
}

func TestKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("/c:/dir/file.txt", Key(`C:\Dir\File.txt`))
	assert.Equal("/c:/dir", Key(`c:/dir/`))
	assert.Equal("/tmp/a", Key("/tmp/./b/../a"))
	assert.Equal("/", Key(""))
}

func TestRoot(t *testing.T) {
	assert := assert.New(t)
	table := &Table{}
	defer assertEmpty(assert, table)
	h := table.Open("/", Read, All)
	assert.NotNil(h)
	h.Release()
	assert.Nil(table.Exclusive("/"))
	assert.Nil(table.Exclusive(""))
}

func TestShareModes(t *testing.T) {
	tests := []struct {
		name          string
		access, share Mode
		access2       Mode
		share2        Mode
		compatible    bool
	}{
		{"readers sharing reads", Read, Read, Read, Read, true},
		{"reader sharing nothing", Read, None, Read, All, false},
		{"writer after reader", Read, Read, Write, All, false},
		{"writer shared", Read, Read | Write, Write, Read, true},
		{"writer not sharing reads", Read, All, Write, Write, false},
		{"no access", None, None, None, None, true},
		{"exclusive writers", Write, Read, Write, Read, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			table := &Table{}
			defer assertEmpty(assert, table)
			first := table.Open(`C:\data\file.txt`, tt.access, tt.share)
			assert.NotNil(first)
			defer first.Release()
			second := table.Open(`c:/DATA/File.txt`, tt.access2, tt.share2)
			assert.Equal(tt.compatible, second != nil)
			if second != nil {
				second.Release()
			}
		})
	}
}

func TestExclusive(t *testing.T) {
	assert := assert.New(t)
	table := &Table{}
	defer assertEmpty(assert, table)

	file := table.Open(`C:\data\logs\app.log`, Read, Read)
	assert.NotNil(file)

	// Neither the file nor its directories can go away.
	assert.Nil(table.Exclusive(`C:\data\logs\app.log`))
	assert.Nil(table.Exclusive(`C:\data\logs`))
	assert.Nil(table.Exclusive(`C:\data`))

	// Siblings are not affected.
	sibling := table.Exclusive(`C:\data\logs\other.log`)
	assert.NotNil(sibling)
	assert.True(sibling.IsExclusive())
	assert.Equal("/c:/data/logs/other.log", sibling.Key())

	// A path being removed cannot be opened or removed twice.
	assert.Nil(table.Open(`C:\data\logs\other.log`, None, All))
	assert.Nil(table.Exclusive(`C:\data\logs\other.log`))
	sibling.Release()
	sibling.Release()

	file.Release()
	dir := table.Exclusive(`C:\data`)
	assert.NotNil(dir)
	dir.Release()
}

func TestShareDelete(t *testing.T) {
	assert := assert.New(t)
	table := &Table{}
	defer assertEmpty(assert, table)

	file := table.Open("/srv/app.log", Read, Read|Delete)
	assert.NotNil(file)
	removal := table.Exclusive("/srv/app.log")
	assert.NotNil(removal)
	removal.Release()

	// The directory still holds an open entry.
	assert.Nil(table.Exclusive("/srv"))
	file.Release()

	writer := table.Open("/srv/app.log", Write, Read)
	assert.NotNil(writer)
	assert.Nil(table.Exclusive("/srv/app.log"))
	writer.Release()
}

func TestExclusiveBlocksDescendants(t *testing.T) {
	assert := assert.New(t)
	table := &Table{}
	defer assertEmpty(assert, table)

	dir := table.Exclusive("/srv/cache")
	assert.NotNil(dir)
	assert.Nil(table.Open("/srv/cache/entry", Read, All))
	assert.Nil(table.Exclusive("/srv/cache/entry"))
	assert.Nil(table.Exclusive("/srv"))
	dir.Release()

	entry := table.Open("/srv/cache/entry", Read, All)
	assert.NotNil(entry)
	entry.Release()
}
