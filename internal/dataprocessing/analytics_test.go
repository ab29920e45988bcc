package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesetl/pkg/contracts/domain"
)

func publishOrder(detailID, productID int, orderDate *time.Time, revenue *float64, leadTime *int) domain.PublishOrder {
	return domain.PublishOrder{
		SalesOrderDetailID:     detailID,
		SalesOrderID:           detailID,
		ProductID:              productID,
		OrderDate:              orderDate,
		TotalLineExtendedPrice: revenue,
		LeadTimeInBusinessDays: leadTime,
	}
}

func TestRevenueLeaderByYear(t *testing.T) {
	y2012 := date(2012, time.March, 1)
	products := []domain.PublishProduct{
		{ProductID: 1, Color: "Red"},
		{ProductID: 2, Color: "Black"},
	}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, &y2012, floatPtr(60), nil),
		publishOrder(2, 1, &y2012, floatPtr(40), nil),
		publishOrder(3, 2, &y2012, floatPtr(50), nil),
	}

	result := RevenueLeaderByYear(orders, products)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].Year)
	assert.Equal(t, 2012, *result[0].Year)
	require.NotNil(t, result[0].Color)
	assert.Equal(t, "Red", *result[0].Color, "Red sums to 100 and beats Black's 50")
	assert.InDelta(t, 100.0, result[0].Revenue, 0.0001)
}

func TestRevenueLeaderByYearMultipleYears(t *testing.T) {
	y2011 := date(2011, time.July, 1)
	y2012 := date(2012, time.July, 1)
	products := []domain.PublishProduct{
		{ProductID: 1, Color: "Red"},
		{ProductID: 2, Color: "Black"},
	}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, &y2011, floatPtr(10), nil),
		publishOrder(2, 2, &y2011, floatPtr(30), nil),
		publishOrder(3, 1, &y2012, floatPtr(80), nil),
		publishOrder(4, 2, &y2012, floatPtr(20), nil),
	}

	result := RevenueLeaderByYear(orders, products)
	require.Len(t, result, 2)
	assert.Equal(t, 2011, *result[0].Year)
	assert.Equal(t, "Black", *result[0].Color)
	assert.InDelta(t, 30.0, result[0].Revenue, 0.0001)
	assert.Equal(t, 2012, *result[1].Year)
	assert.Equal(t, "Red", *result[1].Color)
	assert.InDelta(t, 80.0, result[1].Revenue, 0.0001)
}

func TestRevenueLeaderRetainsMissingColorGroup(t *testing.T) {
	y2012 := date(2012, time.March, 1)
	// Product 99 is absent from the product master, so its color is missing.
	products := []domain.PublishProduct{{ProductID: 1, Color: "Red"}}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, &y2012, floatPtr(10), nil),
		publishOrder(2, 99, &y2012, floatPtr(70), nil),
	}

	result := RevenueLeaderByYear(orders, products)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].Color, "the missing-color group can win the year")
	assert.InDelta(t, 70.0, result[0].Revenue, 0.0001)
}

func TestRevenueLeaderMissingRevenueContributesNothing(t *testing.T) {
	y2012 := date(2012, time.March, 1)
	products := []domain.PublishProduct{
		{ProductID: 1, Color: "Red"},
		{ProductID: 2, Color: "Black"},
	}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, &y2012, nil, nil),
		publishOrder(2, 2, &y2012, floatPtr(5), nil),
	}

	result := RevenueLeaderByYear(orders, products)
	require.Len(t, result, 1)
	assert.Equal(t, "Black", *result[0].Color)
	assert.InDelta(t, 5.0, result[0].Revenue, 0.0001)
}

func TestRevenueLeaderTieKeepsFirstScannedGroup(t *testing.T) {
	y2012 := date(2012, time.March, 1)
	products := []domain.PublishProduct{
		{ProductID: 1, Color: "Red"},
		{ProductID: 2, Color: "Black"},
	}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, &y2012, floatPtr(50), nil),
		publishOrder(2, 2, &y2012, floatPtr(50), nil),
	}

	result := RevenueLeaderByYear(orders, products)
	require.Len(t, result, 1)
	// Which of the tied colors wins is incidental; the contract is only
	// that exactly one of them is returned.
	require.NotNil(t, result[0].Color)
	assert.Contains(t, []string{"Red", "Black"}, *result[0].Color)
	assert.InDelta(t, 50.0, result[0].Revenue, 0.0001)
}

func TestRevenueLeaderMissingOrderDateGroup(t *testing.T) {
	products := []domain.PublishProduct{{ProductID: 1, Color: "Red"}}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, nil, floatPtr(15), nil),
	}

	result := RevenueLeaderByYear(orders, products)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].Year, "lines without an order date form their own group")
	assert.InDelta(t, 15.0, result[0].Revenue, 0.0001)
}

func TestAverageLeadTimeByCategory(t *testing.T) {
	components := "Components"
	products := []domain.PublishProduct{
		{ProductID: 1, Color: "Red", ProductCategoryName: &components},
		{ProductID: 2, Color: "Black", ProductCategoryName: &components},
	}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, nil, nil, intPtr(2)),
		publishOrder(2, 2, nil, nil, intPtr(4)),
	}

	result := AverageLeadTimeByCategory(orders, products)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].ProductCategoryName)
	assert.Equal(t, "Components", *result[0].ProductCategoryName)
	require.NotNil(t, result[0].AverageLeadTime)
	assert.InDelta(t, 3.0, *result[0].AverageLeadTime, 0.0001)
}

func TestAverageLeadTimeIgnoresMissingValues(t *testing.T) {
	clothing := "Clothing"
	products := []domain.PublishProduct{{ProductID: 1, Color: "Red", ProductCategoryName: &clothing}}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, nil, nil, intPtr(6)),
		publishOrder(2, 1, nil, nil, nil),
	}

	result := AverageLeadTimeByCategory(orders, products)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].AverageLeadTime)
	assert.InDelta(t, 6.0, *result[0].AverageLeadTime, 0.0001, "missing lead times are excluded from the denominator")
}

func TestAverageLeadTimeAllMissingIsMissingNotZero(t *testing.T) {
	accessories := "Accessories"
	products := []domain.PublishProduct{{ProductID: 1, Color: "Red", ProductCategoryName: &accessories}}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, nil, nil, nil),
		publishOrder(2, 1, nil, nil, nil),
	}

	result := AverageLeadTimeByCategory(orders, products)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].AverageLeadTime)
}

func TestAverageLeadTimeRetainsMissingCategoryGroup(t *testing.T) {
	components := "Components"
	products := []domain.PublishProduct{
		{ProductID: 1, Color: "Red", ProductCategoryName: &components},
		{ProductID: 2, Color: "Black"}, // unresolved category
	}
	orders := []domain.PublishOrder{
		publishOrder(1, 1, nil, nil, intPtr(3)),
		publishOrder(2, 2, nil, nil, intPtr(7)),
		publishOrder(3, 99, nil, nil, intPtr(9)), // product unknown entirely
	}

	result := AverageLeadTimeByCategory(orders, products)
	require.Len(t, result, 2)

	require.NotNil(t, result[0].ProductCategoryName)
	assert.Equal(t, "Components", *result[0].ProductCategoryName)
	assert.InDelta(t, 3.0, *result[0].AverageLeadTime, 0.0001)

	assert.Nil(t, result[1].ProductCategoryName, "missing-category group sorts last")
	require.NotNil(t, result[1].AverageLeadTime)
	assert.InDelta(t, 8.0, *result[1].AverageLeadTime, 0.0001)
}
