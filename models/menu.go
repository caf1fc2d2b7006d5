package models

type MenuItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
	IsAvailable bool    `json:"is_available" gorm:"not null;default:true"`
}
