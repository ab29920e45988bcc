package dataprocessing

import (
	"sort"

	"salesetl/pkg/contracts/domain"
)

// colorGroup identifies one (year, color) revenue group. Either side of the
// key may be missing: the year when the joined order date was missing, the
// color when the line's product is absent from the published product master.
// Missing groups are retained, not dropped.
type colorGroup struct {
	year     int
	hasYear  bool
	color    string
	hasColor bool
}

// RevenueLeaderByYear reports, for each order year, the color whose summed
// TotalLineExtendedPrice is highest. Groups are scanned in sorted key order
// (missing keys last) and on an exact revenue tie the first group scanned is
// kept, which makes the incidental tie-break deterministic.
func RevenueLeaderByYear(orders []domain.PublishOrder, products []domain.PublishProduct) []domain.ColorRevenue {
	colorByID := make(map[int]string, len(products))
	for _, p := range products {
		colorByID[p.ProductID] = p.Color
	}

	revenue := make(map[colorGroup]float64)
	for _, o := range orders {
		key := colorGroup{}
		if o.OrderDate != nil {
			key.year = o.OrderDate.Year()
			key.hasYear = true
		}
		if color, ok := colorByID[o.ProductID]; ok {
			key.color = color
			key.hasColor = true
		}
		// Missing line revenue contributes nothing to the group sum but
		// still materializes the group.
		if _, ok := revenue[key]; !ok {
			revenue[key] = 0
		}
		if o.TotalLineExtendedPrice != nil {
			revenue[key] += *o.TotalLineExtendedPrice
		}
	}

	keys := make([]colorGroup, 0, len(revenue))
	for key := range revenue {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.hasYear != b.hasYear {
			return a.hasYear
		}
		if a.year != b.year {
			return a.year < b.year
		}
		if a.hasColor != b.hasColor {
			return a.hasColor
		}
		return a.color < b.color
	})

	var result []domain.ColorRevenue
	for _, key := range keys {
		sum := revenue[key]
		leader := domain.ColorRevenue{Revenue: sum}
		if key.hasYear {
			year := key.year
			leader.Year = &year
		}
		if key.hasColor {
			color := key.color
			leader.Color = &color
		}

		if len(result) > 0 && sameYear(result[len(result)-1].Year, leader.Year) {
			// Strictly greater keeps the first scanned group on ties.
			if sum > result[len(result)-1].Revenue {
				result[len(result)-1] = leader
			}
			continue
		}
		result = append(result, leader)
	}
	return result
}

func sameYear(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// categoryGroup identifies one product-category lead-time group; ok is
// false for the group of lines without a resolvable category.
type categoryGroup struct {
	category string
	ok       bool
}

// AverageLeadTimeByCategory reports the mean LeadTimeInBusinessDays per
// product category. Lines with a missing lead time do not count toward the
// denominator; a category whose lines all have missing lead times yields a
// missing average, not zero. The missing-category group is retained.
func AverageLeadTimeByCategory(orders []domain.PublishOrder, products []domain.PublishProduct) []domain.CategoryLeadTime {
	categoryByID := make(map[int]*string, len(products))
	for _, p := range products {
		categoryByID[p.ProductID] = p.ProductCategoryName
	}

	type accumulator struct {
		sum   float64
		count int
	}
	groups := make(map[categoryGroup]*accumulator)

	for _, o := range orders {
		key := categoryGroup{}
		if category, found := categoryByID[o.ProductID]; found && category != nil {
			key.category = *category
			key.ok = true
		}
		acc, exists := groups[key]
		if !exists {
			acc = &accumulator{}
			groups[key] = acc
		}
		if o.LeadTimeInBusinessDays != nil {
			acc.sum += float64(*o.LeadTimeInBusinessDays)
			acc.count++
		}
	}

	keys := make([]categoryGroup, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.category < b.category
	})

	result := make([]domain.CategoryLeadTime, 0, len(keys))
	for _, key := range keys {
		row := domain.CategoryLeadTime{}
		if key.ok {
			category := key.category
			row.ProductCategoryName = &category
		}
		if acc := groups[key]; acc.count > 0 {
			mean := acc.sum / float64(acc.count)
			row.AverageLeadTime = &mean
		}
		result = append(result, row)
	}
	return result
}
