// internal/adapters/repository/store.go
package repository

import "github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"

var (
	_ ports.StorePort = (*MongoStore)(nil)
	_ ports.StorePort = (*PostgresStore)(nil)
)
