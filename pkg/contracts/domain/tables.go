package domain

import "time"

// RawProduct is a product master row exactly as read from the delimited
// input, before any type coercion. Every field keeps its source text.
type RawProduct struct {
	ProductID              string `gorm:"column:ProductID" json:"product_id"`
	Color                  string `gorm:"column:Color" json:"color"`
	ProductSubCategoryName string `gorm:"column:ProductSubCategoryName" json:"product_sub_category_name"`
	ProductCategoryName    string `gorm:"column:ProductCategoryName" json:"product_category_name"`
	MakeFlag               string `gorm:"column:MakeFlag" json:"make_flag"`
	SafetyStockLevel       string `gorm:"column:SafetyStockLevel" json:"safety_stock_level"`
	ReorderPoint           string `gorm:"column:ReorderPoint" json:"reorder_point"`
	StandardCost           string `gorm:"column:StandardCost" json:"standard_cost"`
	ListPrice              string `gorm:"column:ListPrice" json:"list_price"`
	Weight                 string `gorm:"column:Weight" json:"weight"`
}

// TableName implements the gorm naming convention for the raw landing table.
func (RawProduct) TableName() string { return "raw_products" }

// RawOrderHeader is a sales order header row as read from the input.
type RawOrderHeader struct {
	SalesOrderID    string `gorm:"column:SalesOrderID" json:"sales_order_id"`
	OrderDate       string `gorm:"column:OrderDate" json:"order_date"`
	ShipDate        string `gorm:"column:ShipDate" json:"ship_date"`
	OnlineOrderFlag string `gorm:"column:OnlineOrderFlag" json:"online_order_flag"`
	AccountNumber   string `gorm:"column:AccountNumber" json:"account_number"`
	CustomerID      string `gorm:"column:CustomerID" json:"customer_id"`
	SalesPersonID   string `gorm:"column:SalesPersonID" json:"sales_person_id"`
	Freight         string `gorm:"column:Freight" json:"freight"`
}

func (RawOrderHeader) TableName() string { return "raw_sales_order_header" }

// RawOrderDetail is a sales order line row as read from the input.
type RawOrderDetail struct {
	SalesOrderID       string `gorm:"column:SalesOrderID" json:"sales_order_id"`
	SalesOrderDetailID string `gorm:"column:SalesOrderDetailID" json:"sales_order_detail_id"`
	OrderQty           string `gorm:"column:OrderQty" json:"order_qty"`
	ProductID          string `gorm:"column:ProductID" json:"product_id"`
	UnitPrice          string `gorm:"column:UnitPrice" json:"unit_price"`
	UnitPriceDiscount  string `gorm:"column:UnitPriceDiscount" json:"unit_price_discount"`
}

func (RawOrderDetail) TableName() string { return "raw_sales_order_detail" }

// Product is the typed product master row after normalization. Optional
// columns are pointers; nil marks a missing value.
type Product struct {
	ProductID              int      `gorm:"column:ProductID;primaryKey" json:"product_id"`
	Color                  *string  `gorm:"column:Color" json:"color,omitempty"`
	ProductSubCategoryName *string  `gorm:"column:ProductSubCategoryName" json:"product_sub_category_name,omitempty"`
	ProductCategoryName    *string  `gorm:"column:ProductCategoryName" json:"product_category_name,omitempty"`
	MakeFlag               bool     `gorm:"column:MakeFlag" json:"make_flag"`
	SafetyStockLevel       int      `gorm:"column:SafetyStockLevel" json:"safety_stock_level"`
	ReorderPoint           int      `gorm:"column:ReorderPoint" json:"reorder_point"`
	StandardCost           *float64 `gorm:"column:StandardCost" json:"standard_cost,omitempty"`
	ListPrice              *float64 `gorm:"column:ListPrice" json:"list_price,omitempty"`
	Weight                 *float64 `gorm:"column:Weight" json:"weight,omitempty"`
}

func (Product) TableName() string { return "store_products" }

// OrderHeader is the typed sales order header row after normalization.
// OrderDate is mandatory; ShipDate, SalesPersonID and Freight may be missing.
type OrderHeader struct {
	SalesOrderID    int        `gorm:"column:SalesOrderID;primaryKey" json:"sales_order_id"`
	OrderDate       time.Time  `gorm:"column:OrderDate" json:"order_date"`
	ShipDate        *time.Time `gorm:"column:ShipDate" json:"ship_date,omitempty"`
	OnlineOrderFlag bool       `gorm:"column:OnlineOrderFlag" json:"online_order_flag"`
	AccountNumber   string     `gorm:"column:AccountNumber" json:"account_number"`
	CustomerID      int        `gorm:"column:CustomerID" json:"customer_id"`
	SalesPersonID   *int64     `gorm:"column:SalesPersonID" json:"sales_person_id,omitempty"`
	Freight         *float64   `gorm:"column:Freight" json:"freight,omitempty"`
}

func (OrderHeader) TableName() string { return "store_sales_order_header" }

// OrderDetail is the typed sales order line row after normalization.
type OrderDetail struct {
	SalesOrderDetailID int      `gorm:"column:SalesOrderDetailID;primaryKey" json:"sales_order_detail_id"`
	SalesOrderID       int      `gorm:"column:SalesOrderID" json:"sales_order_id"`
	OrderQty           int      `gorm:"column:OrderQty" json:"order_qty"`
	ProductID          int      `gorm:"column:ProductID" json:"product_id"`
	UnitPrice          *float64 `gorm:"column:UnitPrice" json:"unit_price,omitempty"`
	UnitPriceDiscount  *float64 `gorm:"column:UnitPriceDiscount" json:"unit_price_discount,omitempty"`
}

func (OrderDetail) TableName() string { return "store_sales_order_detail" }

// PublishProduct is the published product master. Color is always populated
// ("N/A" when the source had none); the category may still be missing when no
// mapping rule recognizes the subcategory.
type PublishProduct struct {
	ProductID              int      `gorm:"column:ProductID;primaryKey" json:"product_id"`
	Color                  string   `gorm:"column:Color" json:"color"`
	ProductSubCategoryName *string  `gorm:"column:ProductSubCategoryName" json:"product_sub_category_name,omitempty"`
	ProductCategoryName    *string  `gorm:"column:ProductCategoryName" json:"product_category_name,omitempty"`
	MakeFlag               bool     `gorm:"column:MakeFlag" json:"make_flag"`
	SafetyStockLevel       int      `gorm:"column:SafetyStockLevel" json:"safety_stock_level"`
	ReorderPoint           int      `gorm:"column:ReorderPoint" json:"reorder_point"`
	StandardCost           *float64 `gorm:"column:StandardCost" json:"standard_cost,omitempty"`
	ListPrice              *float64 `gorm:"column:ListPrice" json:"list_price,omitempty"`
	Weight                 *float64 `gorm:"column:Weight" json:"weight,omitempty"`
}

func (PublishProduct) TableName() string { return "publish_product" }

// PublishOrder is one published row per order line: the line itself, the
// header columns attached by a left join on SalesOrderID, and the two derived
// columns. Header-side fields are pointers because a line without a matching
// header keeps the row but loses every header column.
type PublishOrder struct {
	SalesOrderDetailID     int        `gorm:"column:SalesOrderDetailID;primaryKey" json:"sales_order_detail_id"`
	SalesOrderID           int        `gorm:"column:SalesOrderID" json:"sales_order_id"`
	OrderQty               int        `gorm:"column:OrderQty" json:"order_qty"`
	ProductID              int        `gorm:"column:ProductID" json:"product_id"`
	UnitPrice              *float64   `gorm:"column:UnitPrice" json:"unit_price,omitempty"`
	UnitPriceDiscount      *float64   `gorm:"column:UnitPriceDiscount" json:"unit_price_discount,omitempty"`
	OrderDate              *time.Time `gorm:"column:OrderDate" json:"order_date,omitempty"`
	ShipDate               *time.Time `gorm:"column:ShipDate" json:"ship_date,omitempty"`
	OnlineOrderFlag        *bool      `gorm:"column:OnlineOrderFlag" json:"online_order_flag,omitempty"`
	AccountNumber          *string    `gorm:"column:AccountNumber" json:"account_number,omitempty"`
	CustomerID             *int       `gorm:"column:CustomerID" json:"customer_id,omitempty"`
	SalesPersonID          *int64     `gorm:"column:SalesPersonID" json:"sales_person_id,omitempty"`
	TotalOrderFreight      *float64   `gorm:"column:TotalOrderFreight" json:"total_order_freight,omitempty"`
	LeadTimeInBusinessDays *int       `gorm:"column:LeadTimeInBusinessDays" json:"lead_time_in_business_days,omitempty"`
	TotalLineExtendedPrice *float64   `gorm:"column:TotalLineExtendedPrice" json:"total_line_extended_price,omitempty"`
}

func (PublishOrder) TableName() string { return "publish_orders" }
