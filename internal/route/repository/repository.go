// Package repository implements the route store's transactional
// operations against DynamoDB, grounded on the teacher's repository
// pattern (one struct implementing a model/interface contract) but
// replacing gorm/MySQL with the composite-key, TTL, and
// TransactWriteItems primitives the data model calls for.
package repository

import (
	"github.com/commutecast/backend/internal/store/dynamo"
)

const (
	sortProfile        = "PROFILE"
	routeSortPrefix    = "ROUTE#"
	scheduleSortPrefix = "SCHEDULE#"
	forecastSortPrefix = "FORECAST#"
)

type Repository struct {
	db             *dynamo.Client
	routeTable     string
	cityIndexTable string
}

func NewRepository(db *dynamo.Client, routeTable, cityIndexTable string) *Repository {
	return &Repository{db: db, routeTable: routeTable, cityIndexTable: cityIndexTable}
}

func routeSortKey(routeID string) string    { return routeSortPrefix + routeID }
func scheduleSortKey(routeID string) string { return scheduleSortPrefix + routeID }
func forecastSortKey(routeID string) string { return forecastSortPrefix + routeID }
