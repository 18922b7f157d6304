// Package database provides database test helpers built on per-test schemas.
package database

import (
	"testing"

	"github.com/skillforge/skillforge/pkg/database"
	"github.com/skillforge/skillforge/test/util"
)

// NewTestClient creates a database.Client backed by an isolated per-test
// schema. Cleanup (schema drop, connection close) is registered on t.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
