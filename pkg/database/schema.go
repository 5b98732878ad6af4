package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the full relational model. All foreign keys are RESTRICT on
// delete: removing a brand, item type or location that is still referenced
// fails with a constraint violation instead of cascading.
const schema = `
CREATE TABLE IF NOT EXISTS brands (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(60) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS item_types (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	brand_id BIGINT NOT NULL REFERENCES brands (id) ON DELETE RESTRICT,
	CONSTRAINT item_types_name_brand_id_key UNIQUE (name, brand_id)
);

CREATE TABLE IF NOT EXISTS locations (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL UNIQUE,
	address VARCHAR(255) NOT NULL,
	city VARCHAR(255) NOT NULL UNIQUE,
	CONSTRAINT locations_name_city_key UNIQUE (name, city)
);

CREATE TABLE IF NOT EXISTS items (
	id BIGSERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expiration_date DATE NOT NULL,
	item_type_id BIGINT NOT NULL REFERENCES item_types (id) ON DELETE RESTRICT,
	location_id BIGINT NOT NULL REFERENCES locations (id) ON DELETE RESTRICT
);
`

// Tables are dropped children-first so the RESTRICT foreign keys don't get
// in the way.
var dropStatements = []string{
	`DROP TABLE IF EXISTS items`,
	`DROP TABLE IF EXISTS item_types`,
	`DROP TABLE IF EXISTS locations`,
	`DROP TABLE IF EXISTS brands`,
}

// EnsureSchema creates any missing tables. Safe to run at every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

// ResetSchema drops all tables and recreates them empty.
func ResetSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range dropStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return EnsureSchema(ctx, pool)
}
