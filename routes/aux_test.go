package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePageInfoDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	pi, err := GeneratePageInfo(r, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pi.PageNum)
	assert.Equal(t, int64(25), pi.PageSize)
	assert.Equal(t, int64(3), pi.TotalPage)
}

func TestGeneratePageInfoClampsPageNum(t *testing.T) {
	r := httptest.NewRequest("GET", "/?p=99&s=10", nil)
	pi, err := GeneratePageInfo(r, 35)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pi.TotalPage)
	assert.Equal(t, int64(4), pi.PageNum)

	r = httptest.NewRequest("GET", "/?p=0&s=10", nil)
	pi, err = GeneratePageInfo(r, 35)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pi.PageNum)
}

func TestGeneratePageInfoRejectsGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/?p=bogus", nil)
	_, err := GeneratePageInfo(r, 10)
	assert.Error(t, err)
}

func TestResolveMostPossibleIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:12345"
	assert.Equal(t, "10.0.0.1", ResolveMostPossibleIP(nil, r))

	r.Header.Set("X-Forwarded-For", "garbage, 192.168.1.5")
	assert.Equal(t, "192.168.1.5", ResolveMostPossibleIP(nil, r))

	r.Header.Set("X-Real-IP", "172.16.0.9")
	assert.Equal(t, "172.16.0.9", ResolveMostPossibleIP(nil, r))
}
