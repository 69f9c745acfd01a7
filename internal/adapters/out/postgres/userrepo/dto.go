// Package userrepo persists the roster.
package userrepo

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username   string    `gorm:"type:varchar(255);uniqueIndex"`
	Name       string
	Role       string `gorm:"type:varchar(32)"`
	Cohort     string `gorm:"type:varchar(255);index"`
	IsDelivery bool
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:         aggregate.ID().Bytes(),
		Username:   aggregate.Username(),
		Name:       aggregate.Name(),
		Role:       string(aggregate.Role()),
		Cohort:     aggregate.Cohort(),
		IsDelivery: aggregate.IsDelivery(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.Name, user.Role(dto.Role),
		dto.Cohort, dto.IsDelivery)
}
