package domain

// Menu bundles burgers and complements at a discounted price. Membership is
// a set: the join tables carry a composite primary key, so adding an item
// twice is a no-op. The stored price is computed at create/update time and
// is not independently settable.
type Menu struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name" validate:"required,min=2,max=255"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price" validate:"required,gt=0"`
	Image       string  `gorm:"size:255" json:"image"`
	Archived    bool    `gorm:"not null;default:false" json:"archived"`

	Burgers     []Burger     `gorm:"many2many:menu_burger;constraint:OnDelete:CASCADE" json:"burgers"`
	Complements []Complement `gorm:"many2many:menu_complement;constraint:OnDelete:CASCADE" json:"complements"`
}

func (Menu) TableName() string { return "menu" }

type MenuRepository interface {
	// Create persists the menu together with its member associations.
	Create(m *Menu) error
	// FindByID loads the menu with members preloaded.
	FindByID(id uint) (*Menu, error)
	ListActive() ([]Menu, error)
	// Save updates the menu's own columns without touching associations.
	Save(m *Menu) error
	Archive(id uint) error
	// ReplaceBurgers swaps the whole burger membership set.
	ReplaceBurgers(m *Menu, burgers []Burger) error
	// ReplaceComplements swaps the whole complement membership set.
	ReplaceComplements(m *Menu, complements []Complement) error
}
