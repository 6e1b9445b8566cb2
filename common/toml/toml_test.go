package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type release struct {
	Release string `toml:"release"`
	Year    uint16 `toml:"release_year"`
}

func TestMarshal(t *testing.T) {
	b, err := Marshal(release{"12.24.2020", 2020})
	require.NoError(t, err)
	assert.Equal(t, "release = \"12.24.2020\"\nrelease_year = 2020\n", string(b))

	var back release
	require.NoError(t, Unmarshal(b, &back))
	assert.Equal(t, release{"12.24.2020", 2020}, back)
}
