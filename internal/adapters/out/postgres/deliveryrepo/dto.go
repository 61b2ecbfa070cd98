// Package deliveryrepo persists notification delivery records.
package deliveryrepo

import (
	"time"

	"tours/internal/adapters/out/postgres/bookingrepo"
	"tours/internal/core/domain/model/notification"
)

type DeliveryDTO struct {
	ID        uint                    `gorm:"primaryKey"`
	BookingID uint                    `gorm:"not null;index"`
	Booking   *bookingrepo.BookingDTO `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Kind      string                  `gorm:"type:varchar(32);not null"`
	Status    string                  `gorm:"type:varchar(16);not null;index"`
	Attempts  int                     `gorm:"type:int;not null;default:0"`
	LastError string                  `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time               `gorm:"not null"`
	UpdatedAt time.Time               `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "notification_deliveries"
}

func fromDomain(d *notification.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:        d.ID(),
		BookingID: d.BookingID(),
		Kind:      d.Kind().String(),
		Status:    d.Status().String(),
		Attempts:  d.Attempts(),
		LastError: d.LastError(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*notification.Delivery, error) {
	return notification.RestoreDelivery(dto.ID, dto.BookingID,
		notification.Kind(dto.Kind), notification.Status(dto.Status),
		dto.Attempts, dto.LastError, dto.CreatedAt, dto.UpdatedAt)
}
