//go:build unit

package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := 7
	assert.Equal(t, 7, Coalesce(&v, 3))
	assert.Equal(t, 3, Coalesce[int](nil, 3))
}

func TestCoalesceString(t *testing.T) {
	assert.Equal(t, "cinematic", CoalesceString("  ", "cinematic"))
	assert.Equal(t, "anime", CoalesceString("anime", "cinematic"))
}

func TestApply(t *testing.T) {
	name := "old"
	next := "new"
	Apply(&name, nil)
	assert.Equal(t, "old", name)
	Apply(&name, &next)
	assert.Equal(t, "new", name)
}
