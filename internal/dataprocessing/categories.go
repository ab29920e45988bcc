package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"salesetl/internal/store"
	"salesetl/pkg/contracts/domain"
)

// missingColor is the sentinel written wherever the product master has no
// color.
const missingColor = "N/A"

// Product category names produced by the resolver.
const (
	categoryClothing    = "Clothing"
	categoryAccessories = "Accessories"
	categoryComponents  = "Components"
)

// categoryRule maps a subcategory predicate to the category it implies.
// Rules are evaluated top-down and the first match wins, which reproduces
// the precedence of the layered mapping tables the business authored over
// time; later tiers deliberately repeat earlier entries and only ever
// contribute subcategories the earlier tiers miss.
type categoryRule struct {
	match    func(sub string) bool
	category string
}

var categoryRules = []categoryRule{
	{matchExact("Gloves", "Shorts", "Socks", "Tights", "Vests"), categoryClothing},
	{matchExact("Locks", "Lights", "Headsets", "Helmets", "Pedals", "Pumps"), categoryAccessories},
	{func(sub string) bool {
		return strings.Contains(sub, "Frames") || sub == "Wheels" || sub == "Saddles"
	}, categoryComponents},
	{matchExact("Socks", "Caps", "Jerseys", "Shorts", "Tights", "Bib-Shorts", "Gloves", "Vests"), categoryClothing},
	{matchExact("Helmets", "Headsets", "Panniers", "Locks", "Pumps", "Lights",
		"Bottles and Cages", "Bike Racks", "Cleaners", "Bike Stands",
		"Hydration Packs", "Pedals", "Fenders"), categoryAccessories},
	{matchExact("Road Frames", "Mountain Frames", "Touring Frames", "Forks",
		"Derailleurs", "Brakes", "Saddles", "Cranksets", "Chains",
		"Bottom Brackets", "Tires and Tubes"), categoryComponents},
}

// matchExact builds a case-sensitive exact-match predicate over the given
// subcategory names.
func matchExact(names ...string) func(string) bool {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(sub string) bool {
		_, ok := set[sub]
		return ok
	}
}

// ResolveCategory maps a product subcategory to its category. The second
// return is false when no rule recognizes the subcategory.
func ResolveCategory(sub string) (string, bool) {
	for _, rule := range categoryRules {
		if rule.match(sub) {
			return rule.category, true
		}
	}
	return "", false
}

// BuildPublishProduct derives the published product master from the
// normalized one: missing colors become "N/A", and missing categories are
// backfilled from the subcategory where a rule matches. Already-populated
// categories pass through unchanged, so the transformation is idempotent.
// The result is persisted as publish_product.
func BuildPublishProduct(st *store.Store, products []domain.Product) ([]domain.PublishProduct, error) {
	published := make([]domain.PublishProduct, 0, len(products))
	unresolved := 0

	for _, p := range products {
		pub := domain.PublishProduct{
			ProductID:              p.ProductID,
			Color:                  missingColor,
			ProductSubCategoryName: p.ProductSubCategoryName,
			ProductCategoryName:    p.ProductCategoryName,
			MakeFlag:               p.MakeFlag,
			SafetyStockLevel:       p.SafetyStockLevel,
			ReorderPoint:           p.ReorderPoint,
			StandardCost:           p.StandardCost,
			ListPrice:              p.ListPrice,
			Weight:                 p.Weight,
		}
		if p.Color != nil {
			pub.Color = *p.Color
		}
		if pub.ProductCategoryName == nil && p.ProductSubCategoryName != nil {
			if category, ok := ResolveCategory(*p.ProductSubCategoryName); ok {
				pub.ProductCategoryName = &category
			}
		}
		if pub.ProductCategoryName == nil {
			unresolved++
		}
		published = append(published, pub)
	}

	if err := st.Replace(published); err != nil {
		return nil, fmt.Errorf("failed to persist publish products: %w", err)
	}
	slog.Info("published product master",
		slog.String("table", domain.PublishProduct{}.TableName()),
		slog.Int("rows", len(published)),
		slog.Int("unresolved_categories", unresolved))
	return published, nil
}
