// Package accountrepo provides data transfer objects and mapping functions for
// account persistence, converting between the account domain aggregate and its
// database representation.
package accountrepo

import (
	"time"

	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
type AccountDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Role      int `gorm:"index"`
	Status    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for account entities.
// Kept as "users" to match the original schema.
func (AccountDTO) TableName() string {
	return "users"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(account *account.Account) AccountDTO {
	return AccountDTO{
		ID:     account.ID().Bytes(),
		Name:   account.Name(),
		Role:   int(account.Role()),
		Status: int(account.Status()),
	}
}

// toDomain converts a database DTO to an account domain aggregate using RestoreAccount.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Name,
		account.Role(dto.Role),
		account.Status(dto.Status),
	)
}
