package models

import "time"

// Category is a fine-grained label such as VEGETABLES or LAUNDRY. A purchase
// may carry several.
type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (c *Category) TableName() string {
	return "categories"
}

// Category group names used by summary views.
const (
	GroupFreshProduce      = "Fresh Produce"
	GroupMeatSeafood       = "Meat & Seafood"
	GroupDairyBakery       = "Dairy & Bakery"
	GroupPantryStaples     = "Pantry Staples"
	GroupCookingEssentials = "Cooking Essentials"
	GroupBeveragesOthers   = "Beverages & Others"
	GroupHouseholdPersonal = "Household & Personal Care"
	GroupMiscellaneous     = "Miscellaneous"
)

// AllCategoryGroups returns the groups in display order, the default bucket last.
func AllCategoryGroups() []string {
	return []string{
		GroupFreshProduce,
		GroupMeatSeafood,
		GroupDairyBakery,
		GroupPantryStaples,
		GroupCookingEssentials,
		GroupBeveragesOthers,
		GroupHouseholdPersonal,
		GroupMiscellaneous,
	}
}
