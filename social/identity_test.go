package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashIdentity(t *testing.T) {
	token := HashIdentity("203.0.113.7")

	assert.Len(t, token, 16)
	assert.Regexp(t, `^[0-9a-f]{16}$`, token)
	assert.Equal(t, token, HashIdentity("203.0.113.7"))
	assert.NotEqual(t, token, HashIdentity("203.0.113.8"))
}

func TestHashIdentity_EmptyInput(t *testing.T) {
	assert.Empty(t, HashIdentity(""))
}

func TestNewID(t *testing.T) {
	id := NewID("c")
	assert.Regexp(t, `^c_[0-9a-f]{12}$`, id)
	assert.NotEqual(t, id, NewID("c"))
	assert.Regexp(t, `^sub_[0-9a-f]{12}$`, NewID("sub"))
}
