//go:build unit

package patch_test

import (
	"testing"

	"glamping-api/internal/pkg/patch"
	"glamping-api/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 4, patch.Coalesce(ptr.Of(4), 2))
	assert.Equal(t, 2, patch.Coalesce[int](nil, 2))
	assert.Equal(t, []string{"wifi"}, patch.Coalesce(&[]string{"wifi"}, nil))
}

func TestChanged(t *testing.T) {
	assert.True(t, patch.Changed(ptr.Of("Riverside Dome"), "Forest Dome"))
	assert.False(t, patch.Changed(ptr.Of("Forest Dome"), "Forest Dome"))
	assert.False(t, patch.Changed[string](nil, "Forest Dome"))
}

func TestNonBlank(t *testing.T) {
	assert.Nil(t, ptr.NonBlank(nil))
	assert.Nil(t, ptr.NonBlank(ptr.Of("   ")))
	assert.Equal(t, "late arrival", *ptr.NonBlank(ptr.Of("  late arrival ")))
	assert.Equal(t, "", ptr.Value[string](nil))
}
