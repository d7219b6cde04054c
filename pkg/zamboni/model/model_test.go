package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidProductSlug(t *testing.T) {
	assert.True(t, ValidProductSlug("steamed-hams"))
	assert.True(t, ValidProductSlug("app_2"))
	assert.False(t, ValidProductSlug(""))
	assert.False(t, ValidProductSlug("Steamed"))
	assert.False(t, ValidProductSlug("a/b"))
	assert.False(t, ValidProductSlug("a b"))
}

func TestVersionStatusLabel(t *testing.T) {
	v := &Version{Status: VERSION_PENDING}
	assert.Equal(t, "Pending approval", v.StatusLabel())
	v.Status = VERSION_PUBLIC
	assert.Equal(t, "Approved", v.StatusLabel())
	// deletion wins over whatever status the version holds.
	v.Deleted = true
	assert.Equal(t, "Deleted", v.StatusLabel())
}

func TestFileStatusLabel(t *testing.T) {
	f := &File{Status: FILE_BLOCKED}
	assert.Equal(t, "Blocked", f.StatusLabel())
	f.Status = ZamboniFileStatus(99)
	assert.Equal(t, "Unknown", f.StatusLabel())
}

func TestValidNoteType(t *testing.T) {
	for _, nt := range AllNoteTypes() {
		assert.True(t, ValidNoteType(nt))
	}
	assert.False(t, ValidNoteType(ZamboniNoteType(-1)))
	assert.False(t, ValidNoteType(ZamboniNoteType(8)))
}
