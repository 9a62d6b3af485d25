package mockdata

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

type Category string

const (
	CategoryTechnology    Category = "Technology"
	CategoryHealth        Category = "Health"
	CategoryDesign        Category = "Design"
	CategoryTravel        Category = "Travel"
	CategoryFood          Category = "Food"
	CategoryLifestyle     Category = "Lifestyle"
	CategoryBusiness      Category = "Business"
	CategoryFinance       Category = "Finance"
	CategoryEducation     Category = "Education"
	CategoryEntertainment Category = "Entertainment"
)

var allCategories = []Category{
	CategoryTechnology,
	CategoryHealth,
	CategoryDesign,
	CategoryTravel,
	CategoryFood,
	CategoryLifestyle,
	CategoryBusiness,
	CategoryFinance,
	CategoryEducation,
	CategoryEntertainment,
}

// Categories returns all known categories, in their canonical order.
// The returned slice is a copy and can be modified by the caller.
func Categories() []Category {
	categories := make([]Category, len(allCategories))
	copy(categories, allCategories)
	return categories
}

func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory matches the given name against the known categories, ignoring case.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range allCategories {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// ParseCategories parses a comma separated list of category names, skipping
// empty elements and duplicates.
func ParseCategories(list string) ([]Category, error) {
	var categories []Category
	seen := make(map[Category]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseCategory(part)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		categories = append(categories, c)
	}
	return categories, nil
}
