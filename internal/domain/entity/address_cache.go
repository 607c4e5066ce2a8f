package entity

// AddressCache stores resolved postal-code lookups so repeated form
// entry does not hammer the external API.
type AddressCache struct {
	ID         int    `gorm:"primaryKey"`
	Zipcode    string `gorm:"not null;uniqueIndex"` // normalized, 7 digits, no hyphen
	Prefecture string `gorm:"not null"`
	City       string `gorm:"not null"`
	Town       string
	CachedAt   int64 `gorm:"not null"`
}
