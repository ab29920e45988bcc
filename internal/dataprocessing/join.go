package dataprocessing

import (
	"fmt"
	"log/slog"

	"salesetl/internal/store"
	"salesetl/pkg/contracts/domain"
)

// BuildPublishOrders left-joins every order line to its header on
// SalesOrderID and derives the lead time and extended line price. The line
// side is authoritative: every detail row appears exactly once in the
// output, and a line without a matching header keeps missing values for all
// header-derived columns. The header's Freight arrives renamed as
// TotalOrderFreight, and the single SalesOrderID column is sourced from the
// line side. The result is persisted as publish_orders.
func BuildPublishOrders(st *store.Store, details []domain.OrderDetail, headers []domain.OrderHeader) ([]domain.PublishOrder, error) {
	headerByID := make(map[int]domain.OrderHeader, len(headers))
	for _, h := range headers {
		headerByID[h.SalesOrderID] = h
	}

	published := make([]domain.PublishOrder, 0, len(details))
	unmatched := 0

	for _, d := range details {
		pub := domain.PublishOrder{
			SalesOrderDetailID: d.SalesOrderDetailID,
			SalesOrderID:       d.SalesOrderID,
			OrderQty:           d.OrderQty,
			ProductID:          d.ProductID,
			UnitPrice:          d.UnitPrice,
			UnitPriceDiscount:  d.UnitPriceDiscount,
		}

		if h, ok := headerByID[d.SalesOrderID]; ok {
			orderDate := h.OrderDate
			pub.OrderDate = &orderDate
			pub.ShipDate = h.ShipDate
			onlineFlag := h.OnlineOrderFlag
			pub.OnlineOrderFlag = &onlineFlag
			accountNumber := h.AccountNumber
			pub.AccountNumber = &accountNumber
			customerID := h.CustomerID
			pub.CustomerID = &customerID
			pub.SalesPersonID = h.SalesPersonID
			pub.TotalOrderFreight = h.Freight
		} else {
			unmatched++
		}

		pub.LeadTimeInBusinessDays = leadTime(pub.OrderDate, pub.ShipDate)
		pub.TotalLineExtendedPrice = extendedPrice(d.OrderQty, d.UnitPrice, d.UnitPriceDiscount)
		published = append(published, pub)
	}

	if err := st.Replace(published); err != nil {
		return nil, fmt.Errorf("failed to persist publish orders: %w", err)
	}
	slog.Info("published orders",
		slog.String("table", domain.PublishOrder{}.TableName()),
		slog.Int("rows", len(published)),
		slog.Int("unmatched_lines", unmatched))
	return published, nil
}

// extendedPrice computes OrderQty * (UnitPrice - UnitPriceDiscount). A
// missing operand propagates as a missing result.
func extendedPrice(qty int, unitPrice, discount *float64) *float64 {
	if unitPrice == nil || discount == nil {
		return nil
	}
	total := float64(qty) * (*unitPrice - *discount)
	return &total
}
