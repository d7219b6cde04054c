package pager

import (
	"testing"

	"github.com/naveen24691/zamboni/pkg/zamboni/model"
	"github.com/stretchr/testify/assert"
)

func TestReverseChronological(t *testing.T) {
	vs := []*model.Version{
		{ID: 3}, {ID: 1}, {ID: 2},
	}
	p := NewSlicePager(vs)
	res := ReverseChronological(p)
	assert.Equal(t, int64(3), res[0].ID)
	assert.Equal(t, int64(2), res[1].ID)
	assert.Equal(t, int64(1), res[2].ID)
	// input untouched.
	assert.Equal(t, int64(3), vs[0].ID)
	assert.Equal(t, int64(1), vs[1].ID)
	assert.Len(t, res, 3)
}

func TestReverseChronologicalEmpty(t *testing.T) {
	res := ReverseChronological(NewSlicePager(nil))
	assert.Empty(t, res)
}
