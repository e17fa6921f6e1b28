package repository

import (
	"context"

	"hr-assistant/internal/model"
)

// Repository is the knowledge graph data access layer.
type Repository interface {
	// QueryEntities returns entities of the given type matching every filter, in insertion order.
	// The "country_id" filter matches the entity column; any other key matches a top-level property.
	QueryEntities(ctx context.Context, entityType model.EntityType, filters map[string]any) ([]model.Entity, error)
	UpsertEntities(ctx context.Context, entities []model.Entity) error
}

// FilterCountry is the filter key bound to the entity's country column.
const FilterCountry = "country_id"
