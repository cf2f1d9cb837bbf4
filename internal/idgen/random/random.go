// Package random provides the production id generator: prefixed
// uppercase tokens backed by UUIDs, so collisions are structurally
// impossible without any registry lookup.
package random

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) NextID(_ context.Context, prefix string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return prefix + strings.ToUpper(hex.EncodeToString(id[:])), nil
}
