package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatorLookup(t *testing.T) {
	t9n, err := NewTranslator("en-US")
	require.NoError(t, err)
	assert.Equal(t, "Version 1.0", t9n.Tr("history.version.header", "1.0"))
	assert.Equal(t, "by seymour", t9n.Tr("history.version.by", "seymour"))
}

func TestTranslatorFrench(t *testing.T) {
	t9n, err := NewTranslator("fr")
	require.NoError(t, err)
	assert.Equal(t, "par seymour", t9n.Tr("history.version.by", "seymour"))
}

func TestTranslatorBadLocale(t *testing.T) {
	_, err := NewTranslator("not a locale")
	assert.Error(t, err)
}
