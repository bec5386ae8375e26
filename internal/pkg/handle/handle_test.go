package handle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
)

func TestRef(t *testing.T) {
	assert.True(t, handle.Nil.IsNil())
	assert.Equal(t, "ref(nil)", handle.Nil.String())

	ref := handle.New(7, 2)
	assert.False(t, ref.IsNil())
	assert.Equal(t, "ref(7:2)", ref.String())
	assert.NotEqual(t, handle.New(7, 3), ref)
	assert.Equal(t, handle.New(7, 2), ref)
}
