package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-assistant/internal/knowledge/repository"
	"hr-assistant/internal/model"
)

var filterKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// QueryEntities selects entities of one type. Filters are ANDed.
func (r *implRepository) QueryEntities(ctx context.Context, entityType model.EntityType, filters map[string]any) ([]model.Entity, error) {
	if !entityType.Valid() {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidEntityType, entityType)
	}

	where, args, err := buildWhere(entityType, filters)
	if err != nil {
		return nil, err
	}

	query := "SELECT id, type, country_id, name, properties FROM entities WHERE " + where + " ORDER BY rowid"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "knowledge.sqlite.QueryEntities: %v", err)
		return nil, model.Upstream(model.SourceKnowledge, fmt.Errorf("query entities: %w", err))
	}
	defer rows.Close()

	var entities []model.Entity
	for rows.Next() {
		var (
			e     model.Entity
			typ   string
			props string
		)
		if err := rows.Scan(&e.ID, &typ, &e.CountryID, &e.Name, &props); err != nil {
			return nil, model.Upstream(model.SourceKnowledge, fmt.Errorf("scan entity: %w", err))
		}
		e.Type = model.EntityType(typ)
		e.Properties = json.RawMessage(props)
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, model.Upstream(model.SourceKnowledge, fmt.Errorf("iterate entities: %w", err))
	}

	r.l.Debugf(ctx, "knowledge.sqlite.QueryEntities: type=%s filters=%d found=%d", entityType, len(filters), len(entities))
	return entities, nil
}

// UpsertEntities inserts or replaces entities in one transaction.
// Entities without an ID get a random one. Replacing keeps the original insertion order.
func (r *implRepository) UpsertEntities(ctx context.Context, entities []model.Entity) error {
	if len(entities) == 0 {
		return nil
	}
	for _, e := range entities {
		if !e.Type.Valid() {
			return fmt.Errorf("%w: %q (entity %q)", repository.ErrInvalidEntityType, e.Type, e.Name)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Upstream(model.SourceKnowledge, fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO entities (id, type, country_id, name, properties, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	type = excluded.type,
	country_id = excluded.country_id,
	name = excluded.name,
	properties = excluded.properties,
	updated_at = excluded.updated_at`)
	if err != nil {
		return model.Upstream(model.SourceKnowledge, fmt.Errorf("prepare upsert: %w", err))
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range entities {
		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}
		props := "{}"
		if len(e.Properties) > 0 {
			if !json.Valid(e.Properties) {
				return fmt.Errorf("entity %q: properties are not valid JSON", id)
			}
			props = string(e.Properties)
		}
		if _, err := stmt.ExecContext(ctx, id, string(e.Type), e.CountryID, e.Name, props, now); err != nil {
			return model.Upstream(model.SourceKnowledge, fmt.Errorf("upsert entity %s: %w", id, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Upstream(model.SourceKnowledge, fmt.Errorf("commit: %w", err))
	}
	r.l.Infof(ctx, "knowledge.sqlite.UpsertEntities: upserted %d entities", len(entities))
	return nil
}

func buildWhere(entityType model.EntityType, filters map[string]any) (string, []any, error) {
	clauses := []string{"type = ?"}
	args := []any{string(entityType)}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !filterKeyPattern.MatchString(key) {
			return "", nil, fmt.Errorf("%w: %q", repository.ErrInvalidFilterKey, key)
		}
		val, err := sqlValue(filters[key])
		if err != nil {
			return "", nil, fmt.Errorf("filter %q: %w", key, err)
		}
		if key == repository.FilterCountry {
			clauses = append(clauses, "country_id = ?")
		} else {
			clauses = append(clauses, "json_extract(properties, ?) = ?")
			args = append(args, "$."+key)
		}
		args = append(args, val)
	}
	return strings.Join(clauses, " AND "), args, nil
}

// sqlValue converts a filter value to what json_extract yields for the same JSON scalar.
func sqlValue(v any) (any, error) {
	switch t := v.(type) {
	case string, int, int64, float64:
		return t, nil
	case int32:
		return int64(t), nil
	case float32:
		return float64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	default:
		return nil, fmt.Errorf("%w: %T", repository.ErrUnsupportedFilter, v)
	}
}
