package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"salesetl/internal/config"
	"salesetl/internal/store"
	"salesetl/pkg/contracts/domain"
)

// RawTables holds the three input datasets exactly as read from disk, before
// any type coercion.
type RawTables struct {
	Products     []domain.RawProduct
	OrderHeaders []domain.RawOrderHeader
	OrderDetails []domain.RawOrderDetail
}

// LoadRawTables reads the three delimited input files from the data
// directory and persists them as the raw_ tables. A missing or unreadable
// input file is fatal for the run.
func LoadRawTables(st *store.Store, paths config.PathsConfig) (*RawTables, error) {
	raw := &RawTables{}

	productRows, err := readDelimitedFile(paths.ProductsPath())
	if err != nil {
		return nil, err
	}
	for _, row := range productRows {
		raw.Products = append(raw.Products, domain.RawProduct{
			ProductID:              row.get("ProductID"),
			Color:                  row.get("Color"),
			ProductSubCategoryName: row.get("ProductSubCategoryName"),
			ProductCategoryName:    row.get("ProductCategoryName"),
			MakeFlag:               row.get("MakeFlag"),
			SafetyStockLevel:       row.get("SafetyStockLevel"),
			ReorderPoint:           row.get("ReorderPoint"),
			StandardCost:           row.get("StandardCost"),
			ListPrice:              row.get("ListPrice"),
			Weight:                 row.get("Weight"),
		})
	}
	if err := st.Replace(raw.Products); err != nil {
		return nil, fmt.Errorf("failed to persist raw products: %w", err)
	}
	slog.Info("loaded raw table",
		slog.String("table", domain.RawProduct{}.TableName()),
		slog.Int("rows", len(raw.Products)))

	headerRows, err := readDelimitedFile(paths.OrderHeaderPath())
	if err != nil {
		return nil, err
	}
	for _, row := range headerRows {
		raw.OrderHeaders = append(raw.OrderHeaders, domain.RawOrderHeader{
			SalesOrderID:    row.get("SalesOrderID"),
			OrderDate:       row.get("OrderDate"),
			ShipDate:        row.get("ShipDate"),
			OnlineOrderFlag: row.get("OnlineOrderFlag"),
			AccountNumber:   row.get("AccountNumber"),
			CustomerID:      row.get("CustomerID"),
			SalesPersonID:   row.get("SalesPersonID"),
			Freight:         row.get("Freight"),
		})
	}
	if err := st.Replace(raw.OrderHeaders); err != nil {
		return nil, fmt.Errorf("failed to persist raw order headers: %w", err)
	}
	slog.Info("loaded raw table",
		slog.String("table", domain.RawOrderHeader{}.TableName()),
		slog.Int("rows", len(raw.OrderHeaders)))

	detailRows, err := readDelimitedFile(paths.OrderDetailPath())
	if err != nil {
		return nil, err
	}
	for _, row := range detailRows {
		raw.OrderDetails = append(raw.OrderDetails, domain.RawOrderDetail{
			SalesOrderID:       row.get("SalesOrderID"),
			SalesOrderDetailID: row.get("SalesOrderDetailID"),
			OrderQty:           row.get("OrderQty"),
			ProductID:          row.get("ProductID"),
			UnitPrice:          row.get("UnitPrice"),
			UnitPriceDiscount:  row.get("UnitPriceDiscount"),
		})
	}
	if err := st.Replace(raw.OrderDetails); err != nil {
		return nil, fmt.Errorf("failed to persist raw order details: %w", err)
	}
	slog.Info("loaded raw table",
		slog.String("table", domain.RawOrderDetail{}.TableName()),
		slog.Int("rows", len(raw.OrderDetails)))

	return raw, nil
}

// delimitedRow is one data row paired with the file's header-to-index map.
type delimitedRow struct {
	columns map[string]int
	fields  []string
}

// get returns the trimmed value of the named column, or "" when the column
// is absent from the file or the row is short.
func (r delimitedRow) get(name string) string {
	idx, ok := r.columns[name]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[idx])
}

// readDelimitedFile reads a comma-delimited file with a mandatory header row
// and maps each data row by column name, so column order in the input does
// not matter.
func readDelimitedFile(path string) ([]delimitedRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Rows may legitimately have trailing short records; length is checked
	// per lookup instead.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("input file %s has no header row", path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}

	rows := make([]delimitedRow, 0, len(records)-1)
	for _, fields := range records[1:] {
		rows = append(rows, delimitedRow{columns: columns, fields: fields})
	}
	return rows, nil
}
