// Package catalogrepo persists tours, locations and the links between them.
package catalogrepo

import (
	"time"

	"tours/internal/core/domain/model/location"
	"tours/internal/core/domain/model/tour"
)

// TourDTO is the row of the tours table. Locations are stored as ordered links.
type TourDTO struct {
	ID          uint              `gorm:"primaryKey"`
	Name        string            `gorm:"type:varchar(200);not null;index"`
	Description string            `gorm:"type:text;not null;default:''"`
	Country     string            `gorm:"type:varchar(100);not null;index"`
	Region      string            `gorm:"type:varchar(100);not null;default:''"`
	Price       float64           `gorm:"type:numeric(10,2);not null;default:0"`
	Capacity    int               `gorm:"type:int;not null;default:0"`
	IsActive    bool              `gorm:"not null"`
	CreatedAt   time.Time         `gorm:"not null"`
	UpdatedAt   time.Time         `gorm:"not null"`
	Locations   []TourLocationDTO `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
}

func (TourDTO) TableName() string {
	return "tours"
}

type LocationDTO struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Country     string    `gorm:"type:varchar(100);not null;index"`
	Region      string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

// TourLocationDTO links a tour to a location it visits. VisitOrder starts at 1.
type TourLocationDTO struct {
	TourID     uint         `gorm:"primaryKey;autoIncrement:false"`
	LocationID uint         `gorm:"primaryKey;autoIncrement:false;index"`
	VisitOrder int          `gorm:"type:int;not null"`
	Location   *LocationDTO `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
}

func (TourLocationDTO) TableName() string {
	return "tour_locations"
}

func tourFromDomain(t *tour.Tour) TourDTO {
	links := make([]TourLocationDTO, 0, len(t.LocationIDs()))
	for i, id := range t.LocationIDs() {
		links = append(links, TourLocationDTO{TourID: t.ID(), LocationID: id, VisitOrder: i + 1})
	}

	return TourDTO{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		Country:     t.Country(),
		Region:      t.Region(),
		Price:       t.Price(),
		Capacity:    t.Capacity(),
		IsActive:    t.IsActive(),
		Locations:   links,
	}
}

// tourToDomain expects dto.Locations sorted by VisitOrder.
func tourToDomain(dto TourDTO) (*tour.Tour, error) {
	ids := make([]uint, 0, len(dto.Locations))
	for _, link := range dto.Locations {
		ids = append(ids, link.LocationID)
	}

	return tour.RestoreTour(dto.ID, dto.Name, dto.Description, dto.Country, dto.Region,
		dto.Price, dto.Capacity, dto.IsActive, ids, dto.CreatedAt, dto.UpdatedAt)
}

func locationFromDomain(l *location.Location) LocationDTO {
	return LocationDTO{
		ID:          l.ID(),
		Name:        l.Name(),
		Description: l.Description(),
		Country:     l.Country(),
		Region:      l.Region(),
	}
}
