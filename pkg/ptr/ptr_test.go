package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrAndValue(t *testing.T) {
	p := Ptr("+56 9 1234 5678")
	assert.Equal(t, "+56 9 1234 5678", *p)
	assert.Equal(t, "+56 9 1234 5678", Value(p))

	var nilStr *string
	assert.Equal(t, "", Value(nilStr))
	assert.Equal(t, 0, Value[int](nil))
}
