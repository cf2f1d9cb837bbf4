package random

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIDFormat(t *testing.T) {
	gen := New()
	ctx := context.Background()

	id, err := gen.NextID(ctx, "PAY-")
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PAY-[0-9A-F]{32}$`), id)

	other, err := gen.NextID(ctx, "PAY-")
	assert.NoError(t, err)
	assert.NotEqual(t, id, other)
}
