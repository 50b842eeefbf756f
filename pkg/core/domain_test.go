package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/veil/pkg/core"
)

func TestEntity_Terms(t *testing.T) {
	e := core.Entity{
		Original:   "John Smith",
		Variations: []string{"Johnny", "", "J. Smith"},
	}
	assert.Equal(t, []string{"John Smith", "Johnny", "J. Smith"}, e.Terms(), "empty terms are dropped, order kept")

	assert.Empty(t, core.Entity{}.Terms())
}

func TestNewDocument(t *testing.T) {
	doc := core.NewDocument()
	assert.Equal(t, core.DocumentVersion, doc.Version)
	assert.False(t, doc.Created.IsZero())
	assert.Equal(t, doc.Created, doc.Updated)
	assert.Empty(t, doc.Entities)
}
