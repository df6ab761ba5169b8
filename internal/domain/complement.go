package domain

// Complement types form a closed enum.
const (
	ComplementDrink   = "DRINK"
	ComplementSide    = "SIDE"
	ComplementDessert = "DESSERT"
)

// ComplementTypes lists the valid values in display order.
var ComplementTypes = []string{ComplementDrink, ComplementSide, ComplementDessert}

// Complement is a side item (drink, side dish or dessert).
type Complement struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name" validate:"required,min=2,max=255"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price" validate:"required,gt=0"`
	Image       string  `gorm:"size:255" json:"image"`
	Type        string  `gorm:"size:20;not null" json:"type" validate:"required,oneof=DRINK SIDE DESSERT"`
	Archived    bool    `gorm:"not null;default:false" json:"archived"`
}

func (Complement) TableName() string { return "complement" }

type ComplementRepository interface {
	Create(c *Complement) error
	FindByID(id uint) (*Complement, error)
	ListActive() ([]Complement, error)
	Save(c *Complement) error
	Archive(id uint) error
}
