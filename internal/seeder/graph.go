package seeder

import (
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
)

type DependencyGraph struct {
	entities map[schema.EntityType]schema.Descriptor
	added    []schema.EntityType
	order    []schema.EntityType
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		entities: make(map[schema.EntityType]schema.Descriptor),
	}
}

func (g *DependencyGraph) AddEntity(d schema.Descriptor) {
	if _, ok := g.entities[d.Type]; !ok {
		g.added = append(g.added, d.Type)
	}
	g.entities[d.Type] = d
}

// BuildInsertionOrder returns a topological order that keeps insertion order
// wherever dependencies allow.
func (g *DependencyGraph) BuildInsertionOrder() ([]schema.EntityType, error) {
	visited := make(map[schema.EntityType]bool)
	temp := make(map[schema.EntityType]bool)
	var order []schema.EntityType

	var visit func(schema.EntityType) error
	visit = func(t schema.EntityType) error {
		if temp[t] {
			return apperrors.New(apperrors.CodeInvalidConfiguration, "circular dependency detected involving %s", t)
		}
		if visited[t] {
			return nil
		}

		d, ok := g.entities[t]
		if !ok {
			return apperrors.New(apperrors.CodeMissingDependency, "no entity registered for %s", t)
		}

		temp[t] = true
		for _, dep := range d.Depends {
			if dep != t {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		temp[t] = false
		visited[t] = true
		order = append(order, t)
		return nil
	}

	for _, t := range g.added {
		if err := visit(t); err != nil {
			return nil, err
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []schema.EntityType {
	return g.order
}

// Validate checks that order lists every dependency before its dependents.
func (g *DependencyGraph) Validate(order []schema.EntityType) error {
	position := make(map[schema.EntityType]int, len(order))
	for i, t := range order {
		position[t] = i
	}

	for i, t := range order {
		d, ok := g.entities[t]
		if !ok {
			return apperrors.New(apperrors.CodeMissingDependency, "no entity registered for %s", t)
		}
		for _, dep := range d.Depends {
			at, ok := position[dep]
			if !ok {
				return apperrors.New(apperrors.CodeMissingDependency, "%s depends on %s which is not generated", t, dep)
			}
			if at >= i {
				return apperrors.New(apperrors.CodeMissingDependency, "%s is generated before its dependency %s", t, dep)
			}
		}
	}
	return nil
}
