package utils

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestP(t *testing.T) {
	p := P(3)
	require.NotNil(t, p)
	assert.Equal(t, 3, *p)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "0", "-1", "abc", "64f1c2a9e1b2c3d4e5f60718"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}
