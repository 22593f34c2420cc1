package entity

import (
	"availability-api/core/entity"
)

// User is a member identity. Equality is by ID; the name is display-only.
type User struct {
	Name string `db:"name" json:"name"`

	entity.BaseEntity
}
