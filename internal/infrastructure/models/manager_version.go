package models

import "time"

// ManagerVersion is the singleton version marker row.
type ManagerVersion struct {
	ID        uint   `gorm:"primaryKey"`
	Version   string `gorm:"type:varchar(10)"`
	UpdatedAt time.Time
}

func (ManagerVersion) TableName() string {
	return "wallet_manager"
}
