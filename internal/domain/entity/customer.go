package entity

type Customer struct {
	ID           int    `gorm:"primaryKey"`
	ProjectID    int    `gorm:"not null;index"` // References: projects(id)
	OwnerName    string `gorm:"not null"`
	OwnerKana    string
	OwnerZip     string
	OwnerAddress string
	OwnerPhone   string
	JointName    string
	JointKana    string
	ClientName   string
	ClientStaff  string
}
