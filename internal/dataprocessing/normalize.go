package dataprocessing

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"salesetl/internal/store"
	"salesetl/pkg/contracts/domain"
)

// orderDateLayouts are the accepted representations of OrderDate. The input
// mixes full timestamps, plain dates and year-month values.
var orderDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01",
}

// StoreTables holds the three datasets after type normalization.
type StoreTables struct {
	Products     []domain.Product
	OrderHeaders []domain.OrderHeader
	OrderDetails []domain.OrderDetail
}

// NormalizeTables coerces the raw tables into their typed form and persists
// each result as a store_ table.
//
// Mandatory integer columns fail the run when unparseable; optional numeric
// and date columns degrade to missing values instead.
func NormalizeTables(st *store.Store, raw *RawTables) (*StoreTables, error) {
	out := &StoreTables{}

	for i, r := range raw.Products {
		p, err := normalizeProduct(r, i)
		if err != nil {
			return nil, err
		}
		out.Products = append(out.Products, p)
	}
	if err := st.Replace(out.Products); err != nil {
		return nil, fmt.Errorf("failed to persist store products: %w", err)
	}
	slog.Info("normalized table",
		slog.String("table", domain.Product{}.TableName()),
		slog.Int("rows", len(out.Products)))

	for i, r := range raw.OrderHeaders {
		h, err := normalizeOrderHeader(r, i)
		if err != nil {
			return nil, err
		}
		out.OrderHeaders = append(out.OrderHeaders, h)
	}
	if err := st.Replace(out.OrderHeaders); err != nil {
		return nil, fmt.Errorf("failed to persist store order headers: %w", err)
	}
	slog.Info("normalized table",
		slog.String("table", domain.OrderHeader{}.TableName()),
		slog.Int("rows", len(out.OrderHeaders)))

	for i, r := range raw.OrderDetails {
		d, err := normalizeOrderDetail(r, i)
		if err != nil {
			return nil, err
		}
		out.OrderDetails = append(out.OrderDetails, d)
	}
	if err := st.Replace(out.OrderDetails); err != nil {
		return nil, fmt.Errorf("failed to persist store order details: %w", err)
	}
	slog.Info("normalized table",
		slog.String("table", domain.OrderDetail{}.TableName()),
		slog.Int("rows", len(out.OrderDetails)))

	return out, nil
}

func normalizeProduct(r domain.RawProduct, row int) (domain.Product, error) {
	var p domain.Product
	var err error

	if p.ProductID, err = parseMandatoryInt("products", "ProductID", row, r.ProductID); err != nil {
		return p, err
	}
	if p.MakeFlag, err = parseMandatoryBool("products", "MakeFlag", row, r.MakeFlag); err != nil {
		return p, err
	}
	if p.SafetyStockLevel, err = parseMandatoryInt("products", "SafetyStockLevel", row, r.SafetyStockLevel); err != nil {
		return p, err
	}
	if p.ReorderPoint, err = parseMandatoryInt("products", "ReorderPoint", row, r.ReorderPoint); err != nil {
		return p, err
	}
	p.Color = optionalString(r.Color)
	p.ProductSubCategoryName = optionalString(r.ProductSubCategoryName)
	p.ProductCategoryName = optionalString(r.ProductCategoryName)
	p.StandardCost = parseOptionalFloat(r.StandardCost)
	p.ListPrice = parseOptionalFloat(r.ListPrice)
	p.Weight = parseOptionalFloat(r.Weight)
	return p, nil
}

func normalizeOrderHeader(r domain.RawOrderHeader, row int) (domain.OrderHeader, error) {
	var h domain.OrderHeader
	var err error

	if h.SalesOrderID, err = parseMandatoryInt("sales_order_header", "SalesOrderID", row, r.SalesOrderID); err != nil {
		return h, err
	}
	if h.OrderDate, err = parseFlexibleTime(r.OrderDate); err != nil {
		return h, fmt.Errorf("sales_order_header row %d: unparseable OrderDate %q: %w", row, r.OrderDate, err)
	}
	if h.OnlineOrderFlag, err = parseMandatoryBool("sales_order_header", "OnlineOrderFlag", row, r.OnlineOrderFlag); err != nil {
		return h, err
	}
	if h.CustomerID, err = parseMandatoryInt("sales_order_header", "CustomerID", row, r.CustomerID); err != nil {
		return h, err
	}
	h.ShipDate = parseOptionalTime(r.ShipDate)
	h.AccountNumber = r.AccountNumber
	h.SalesPersonID = parseOptionalInt64(r.SalesPersonID)
	h.Freight = parseOptionalFloat(r.Freight)
	return h, nil
}

func normalizeOrderDetail(r domain.RawOrderDetail, row int) (domain.OrderDetail, error) {
	var d domain.OrderDetail
	var err error

	if d.SalesOrderID, err = parseMandatoryInt("sales_order_detail", "SalesOrderID", row, r.SalesOrderID); err != nil {
		return d, err
	}
	if d.SalesOrderDetailID, err = parseMandatoryInt("sales_order_detail", "SalesOrderDetailID", row, r.SalesOrderDetailID); err != nil {
		return d, err
	}
	if d.OrderQty, err = parseMandatoryInt("sales_order_detail", "OrderQty", row, r.OrderQty); err != nil {
		return d, err
	}
	if d.ProductID, err = parseMandatoryInt("sales_order_detail", "ProductID", row, r.ProductID); err != nil {
		return d, err
	}
	d.UnitPrice = parseOptionalFloat(r.UnitPrice)
	d.UnitPriceDiscount = parseOptionalFloat(r.UnitPriceDiscount)
	return d, nil
}

// parseMandatoryInt parses a fully-populated integer column. Failure is
// fatal for the run, not recovered.
func parseMandatoryInt(table, column string, row int, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: unparseable %s %q: %w", table, row, column, value, err)
	}
	return n, nil
}

// parseMandatoryBool parses a boolean column whose source representation is
// 0/1 or another numeric; any non-zero value is true.
func parseMandatoryBool(table, column string, row int, value string) (bool, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false, fmt.Errorf("%s row %d: unparseable %s %q: %w", table, row, column, value, err)
	}
	return f != 0, nil
}

// parseOptionalInt64 keeps per-row missingness: empty is a valid missing
// value, an unparseable non-empty value also degrades to missing.
func parseOptionalInt64(value string) *int64 {
	if value == "" {
		return nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// Salesperson ids sometimes arrive as "279.0" style floats.
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil {
			return nil
		}
		n = int64(f)
	}
	return &n
}

// parseOptionalFloat converts unparseable values to missing rather than
// raising.
func parseOptionalFloat(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// optionalString maps the empty string to a missing value.
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// parseFlexibleTime tries each accepted OrderDate layout in order. No match
// is an error; OrderDate is mandatory.
func parseFlexibleTime(value string) (time.Time, error) {
	for _, layout := range orderDateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("no known date layout matches %q", value)
}

// parseOptionalTime is the strict counterpart used for ShipDate: the same
// layouts, but an unparseable or empty value becomes missing.
func parseOptionalTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	ts, err := parseFlexibleTime(value)
	if err != nil {
		return nil
	}
	return &ts
}
