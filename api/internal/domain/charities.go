package domain

type Charities struct {
	Model
	ID          uint   `gorm:"primaryKey"`
	CharityID   string `gorm:"unique;size:36;not null"`
	Name        string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	// no two charities may claim the same wallet
	WalletAddress  string `gorm:"uniqueIndex;not null"`
	SubscriptionID string `gorm:"uniqueIndex;not null"` // set by the address watcher before insert
}
