package domain

// Burger is a standalone catalog item. Archived rows stay addressable by id
// but are excluded from default listings.
type Burger struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name" validate:"required,min=2,max=255"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price" validate:"required,gt=0"`
	Image       string  `gorm:"size:255" json:"image"`
	Archived    bool    `gorm:"not null;default:false" json:"archived"`
}

func (Burger) TableName() string { return "burger" }

type BurgerRepository interface {
	Create(b *Burger) error
	FindByID(id uint) (*Burger, error)
	ListActive() ([]Burger, error)
	Save(b *Burger) error
	Archive(id uint) error
}
