package models

// UserAccount owns its addresses; the foreign key cascades deletes.
type UserAccount struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"size:10"`
	FullName  string    `gorm:"size:30"`
	Addresses []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserAccount) TableName() string {
	return "user_account"
}
