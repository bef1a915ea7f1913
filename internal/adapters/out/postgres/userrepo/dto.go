// Package userrepo provides data transfer objects and mapping functions for
// account persistence. Usernames carry a unique index; a duplicate
// registration is a constraint violation regardless of application checks.
package userrepo

import (
	"github.com/google/uuid"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
}

// TableName specifies the database table name for account entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.PasswordHash, role)
}
