package seeder

import (
	"testing"

	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalOrderIsTopological(t *testing.T) {
	g := NewDependencyGraph()
	var canonical []schema.EntityType
	for _, d := range schema.Entities() {
		g.AddEntity(d)
		canonical = append(canonical, d.Type)
	}

	order, err := g.BuildInsertionOrder()
	require.NoError(t, err)
	assert.Equal(t, canonical, order)
	assert.Equal(t, order, g.GetOrder())
	assert.NoError(t, g.Validate(canonical))
}

func TestBuildOrderPullsDependenciesForward(t *testing.T) {
	g := NewDependencyGraph()
	user, _ := schema.Lookup(schema.User)
	role, _ := schema.Lookup(schema.Role)
	g.AddEntity(user)
	g.AddEntity(role)

	order, err := g.BuildInsertionOrder()
	require.NoError(t, err)
	assert.Equal(t, []schema.EntityType{schema.Role, schema.User}, order)

	err = g.Validate([]schema.EntityType{schema.User, schema.Role})
	assert.ErrorIs(t, err, apperrors.ErrMissingDependency)
}

func TestCycleIsInvalidConfiguration(t *testing.T) {
	g := NewDependencyGraph()
	g.AddEntity(schema.Descriptor{Type: "A", Depends: []schema.EntityType{"B"}})
	g.AddEntity(schema.Descriptor{Type: "B", Depends: []schema.EntityType{"A"}})

	_, err := g.BuildInsertionOrder()
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfiguration)
}

func TestUnregisteredDependency(t *testing.T) {
	g := NewDependencyGraph()
	order, _ := schema.Lookup(schema.Order)
	g.AddEntity(order)

	_, err := g.BuildInsertionOrder()
	assert.ErrorIs(t, err, apperrors.ErrMissingDependency)
	assert.ErrorIs(t, g.Validate([]schema.EntityType{schema.Order}), apperrors.ErrMissingDependency)
}
