package entity

// Status is one of the nine workflow stages a project can be in.
// The values are stored as-is, matching what the office staff see on screen.
type Status string

const (
	StatusPreConsultation Status = "事前相談"
	StatusOrderReceived   Status = "受注"
	StatusApplicationWork Status = "申請作業"
	StatusUnderReview     Status = "審査中"
	StatusAwaitingRebar   Status = "配筋検査待ち"
	StatusAwaitingInterim Status = "中間検査待ち"
	StatusAwaitingFinal   Status = "完了検査待ち"
	StatusCompleted       Status = "完了"
	StatusLost            Status = "失注"
)

// AllStatuses lists every valid status in workflow order.
var AllStatuses = []Status{
	StatusPreConsultation,
	StatusOrderReceived,
	StatusApplicationWork,
	StatusUnderReview,
	StatusAwaitingRebar,
	StatusAwaitingInterim,
	StatusAwaitingFinal,
	StatusCompleted,
	StatusLost,
}

func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Project struct {
	ID          int    `gorm:"primaryKey"`
	ProjectCode string `gorm:"not null;index"`
	ProjectName string `gorm:"not null"`
	Status      Status `gorm:"not null;index"`
	InputDate   string `gorm:"not null"` // YYYY-MM-DD
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Customer     *Customer     `gorm:"foreignKey:ProjectID;references:ID"`
	Site         *Site         `gorm:"foreignKey:ProjectID;references:ID"`
	Building     *Building     `gorm:"foreignKey:ProjectID;references:ID"`
	Applications []Application `gorm:"foreignKey:ProjectID;references:ID"`
	Financial    *Financial    `gorm:"foreignKey:ProjectID;references:ID"`
	Schedule     *Schedule     `gorm:"foreignKey:ProjectID;references:ID"`
}
