// Package orderrepo persists the order ledger. Orders get a bigserial ledger
// id on insert; their line snapshots live in a child table and are written
// once, at placement.
package orderrepo

import (
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	Sequence     int
	Instructions string
	Status       string `gorm:"type:varchar(32);index"`
	CreatedAt    time.Time
	CollectedBy  *uuid.UUID `gorm:"type:uuid;index"`
	CollectedAt  *time.Time
	DeliveredAt  *time.Time
	Lines        []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one ingredient snapshot row. IngredientKey and IngredientName
// are copies taken at placement, deliberately not foreign keys into the
// catalog.
type LineDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        int64     `gorm:"index"`
	IngredientID   uuid.UUID `gorm:"type:uuid"`
	IngredientKey  string    `gorm:"type:varchar(255)"`
	IngredientName string
}

func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var collectedBy *uuid.UUID
	if id := aggregate.CollectedBy(); id != nil {
		raw := id.Bytes()
		collectedBy = &raw
	}

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			OrderID:        aggregate.ID(),
			IngredientID:   line.IngredientID().Bytes(),
			IngredientKey:  line.Key(),
			IngredientName: line.Name(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		UserID:       aggregate.UserID().Bytes(),
		Sequence:     aggregate.Sequence(),
		Instructions: aggregate.Instructions(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		CollectedBy:  collectedBy,
		CollectedAt:  aggregate.CollectedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Lines:        lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var collectedBy *kernel.UUID
	if dto.CollectedBy != nil {
		courierID, courierErr := kernel.UUIDFromBytes((*dto.CollectedBy)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		collectedBy = &courierID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		ingredientID, lineErr := kernel.UUIDFromBytes(lineDTO.IngredientID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(ingredientID, lineDTO.IngredientKey, lineDTO.IngredientName)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID,
		userID,
		dto.Sequence,
		lines,
		dto.Instructions,
		status,
		dto.CreatedAt,
		collectedBy,
		dto.CollectedAt,
		dto.DeliveredAt,
	)
}
