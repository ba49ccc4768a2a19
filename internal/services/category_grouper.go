package services

import (
	"sort"
	"strings"

	"frugalfolio/internal/models"
)

// categoryGroups is built once and only read afterwards.
var categoryGroups = map[string]string{
	"VEGETABLES": models.GroupFreshProduce,
	"FRUIT":      models.GroupFreshProduce,

	"MEAT":    models.GroupMeatSeafood,
	"FISH":    models.GroupMeatSeafood,
	"SEAFOOD": models.GroupMeatSeafood,

	"DAIRY": models.GroupDairyBakery,
	"BREAD": models.GroupDairyBakery,

	"CANNED GOODS":  models.GroupPantryStaples,
	"NOODLES-PASTA": models.GroupPantryStaples,
	"RICE":          models.GroupPantryStaples,
	"CEREAL":        models.GroupPantryStaples,

	"BAKING":     models.GroupCookingEssentials,
	"OIL":        models.GroupCookingEssentials,
	"SPICES":     models.GroupCookingEssentials,
	"CONDIMENTS": models.GroupCookingEssentials,
	"SPREAD":     models.GroupCookingEssentials,

	"JUNK FOOD": models.GroupBeveragesOthers,
	"BEVERAGE":  models.GroupBeveragesOthers,
	"COFFEE":    models.GroupBeveragesOthers,

	"HOUSEHOLD SUPPLIES": models.GroupHouseholdPersonal,
	"LAUNDRY":            models.GroupHouseholdPersonal,
	"PERSONAL CARE":      models.GroupHouseholdPersonal,

	"MISCELLANEOUS": models.GroupMiscellaneous,
	"SEEDS":         models.GroupMiscellaneous,
	"PET FOOD":      models.GroupMiscellaneous,
}

type categoryGrouper struct {
	groups       map[string]string
	defaultGroup string
}

func NewCategoryGrouper() CategoryGrouperInterface {
	return &categoryGrouper{
		groups:       categoryGroups,
		defaultGroup: models.GroupMiscellaneous,
	}
}

// GroupFor maps a raw category name to its group. Unknown names, including
// the empty name of an uncategorized purchase, land in the default group.
func (g *categoryGrouper) GroupFor(categoryName string) string {
	key := strings.ToUpper(strings.TrimSpace(categoryName))
	if group, ok := g.groups[key]; ok {
		return group
	}
	return g.defaultGroup
}

func (g *categoryGrouper) DefaultGroup() string {
	return g.defaultGroup
}

// Categories lists the known category names of a group.
func (g *categoryGrouper) Categories(group string) []string {
	var names []string
	for name, mapped := range g.groups {
		if mapped == group {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
