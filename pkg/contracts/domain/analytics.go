package domain

// ColorRevenue is one row of the revenue-leader-by-year result: the color
// with the highest summed line revenue for a given order year. Year is nil
// for lines whose order date was missing after the join; Color is nil when
// the line's product was not found in the published product master.
type ColorRevenue struct {
	Year    *int    `json:"year,omitempty"`
	Color   *string `json:"color,omitempty"`
	Revenue float64 `json:"revenue"`
}

// CategoryLeadTime is one row of the average-lead-time-by-category result.
// ProductCategoryName is nil for the group of lines without a resolvable
// category; AverageLeadTime is nil when every line in the group had a
// missing lead time.
type CategoryLeadTime struct {
	ProductCategoryName *string  `json:"product_category_name,omitempty"`
	AverageLeadTime     *float64 `json:"average_lead_time,omitempty"`
}
