package models

type Address struct {
	ID           int64  `gorm:"primaryKey"`
	EmailAddress string `gorm:"size:50;not null;uniqueIndex"`
	UserID       int64  `gorm:"not null;index"`
}

func (Address) TableName() string {
	return "address"
}
