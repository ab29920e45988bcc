package operations

import (
	"context"
	"fmt"

	"salesetl/internal/config"
	"salesetl/internal/dataprocessing"
	"salesetl/internal/store"
	"salesetl/pkg/contracts/domain"
)

// Step identifiers in execution order.
const (
	StepIDLoadRaw        = "load_raw"
	StepIDNormalize      = "normalize"
	StepIDPublishProduct = "publish_product"
	StepIDPublishOrders  = "publish_orders"
	StepIDAnalytics      = "analytics"
)

// RegisterPipelineSteps registers the five pipeline stages in execution
// order on the given registry.
func RegisterPipelineSteps(registry *Registry, st *store.Store, paths config.PathsConfig) error {
	steps := []Step{
		&LoadRawStep{store: st, paths: paths},
		&NormalizeStep{store: st},
		&PublishProductStep{store: st},
		&PublishOrdersStep{store: st},
		&AnalyticsStep{},
	}
	for _, step := range steps {
		if err := registry.Register(step); err != nil {
			return err
		}
	}
	return nil
}

// LoadRawStep reads the three input files and lands them as raw_ tables.
type LoadRawStep struct {
	store *store.Store
	paths config.PathsConfig
}

func (s *LoadRawStep) ID() string   { return StepIDLoadRaw }
func (s *LoadRawStep) Name() string { return "Load raw tables" }

func (s *LoadRawStep) Validate(state *RunState) error {
	if s.store == nil {
		return fmt.Errorf("no store configured")
	}
	return nil
}

func (s *LoadRawStep) Execute(ctx context.Context, state *RunState) error {
	raw, err := dataprocessing.LoadRawTables(s.store, s.paths)
	if err != nil {
		return err
	}
	state.Set(KeyRawTables, raw)
	return nil
}

// NormalizeStep coerces the raw tables into their typed store_ form.
type NormalizeStep struct {
	store *store.Store
}

func (s *NormalizeStep) ID() string   { return StepIDNormalize }
func (s *NormalizeStep) Name() string { return "Normalize column types" }

func (s *NormalizeStep) Validate(state *RunState) error {
	if _, ok := state.Get(KeyRawTables); !ok {
		return fmt.Errorf("raw tables not loaded")
	}
	return nil
}

func (s *NormalizeStep) Execute(ctx context.Context, state *RunState) error {
	value, _ := state.Get(KeyRawTables)
	raw, ok := value.(*dataprocessing.RawTables)
	if !ok {
		return fmt.Errorf("unexpected raw tables type %T", value)
	}
	normalized, err := dataprocessing.NormalizeTables(s.store, raw)
	if err != nil {
		return err
	}
	state.Set(KeyStoreTables, normalized)
	return nil
}

// PublishProductStep derives and persists the published product master.
type PublishProductStep struct {
	store *store.Store
}

func (s *PublishProductStep) ID() string   { return StepIDPublishProduct }
func (s *PublishProductStep) Name() string { return "Publish product master" }

func (s *PublishProductStep) Validate(state *RunState) error {
	if _, ok := state.Get(KeyStoreTables); !ok {
		return fmt.Errorf("store tables not built")
	}
	return nil
}

func (s *PublishProductStep) Execute(ctx context.Context, state *RunState) error {
	tables, err := storeTables(state)
	if err != nil {
		return err
	}
	published, err := dataprocessing.BuildPublishProduct(s.store, tables.Products)
	if err != nil {
		return err
	}
	state.Set(KeyPublishProduct, published)
	return nil
}

// PublishOrdersStep joins order lines to their headers and persists the
// published orders table.
type PublishOrdersStep struct {
	store *store.Store
}

func (s *PublishOrdersStep) ID() string   { return StepIDPublishOrders }
func (s *PublishOrdersStep) Name() string { return "Publish orders" }

func (s *PublishOrdersStep) Validate(state *RunState) error {
	if _, ok := state.Get(KeyStoreTables); !ok {
		return fmt.Errorf("store tables not built")
	}
	return nil
}

func (s *PublishOrdersStep) Execute(ctx context.Context, state *RunState) error {
	tables, err := storeTables(state)
	if err != nil {
		return err
	}
	published, err := dataprocessing.BuildPublishOrders(s.store, tables.OrderDetails, tables.OrderHeaders)
	if err != nil {
		return err
	}
	state.Set(KeyPublishOrders, published)
	return nil
}

// AnalyticsStep answers the two business questions over the publish tables.
type AnalyticsStep struct{}

func (s *AnalyticsStep) ID() string   { return StepIDAnalytics }
func (s *AnalyticsStep) Name() string { return "Run analytics" }

func (s *AnalyticsStep) Validate(state *RunState) error {
	if _, ok := state.Get(KeyPublishProduct); !ok {
		return fmt.Errorf("publish_product not built")
	}
	if _, ok := state.Get(KeyPublishOrders); !ok {
		return fmt.Errorf("publish_orders not built")
	}
	return nil
}

func (s *AnalyticsStep) Execute(ctx context.Context, state *RunState) error {
	products, err := publishProducts(state)
	if err != nil {
		return err
	}
	orders, err := publishOrders(state)
	if err != nil {
		return err
	}
	state.Set(KeyColorRevenue, dataprocessing.RevenueLeaderByYear(orders, products))
	state.Set(KeyAverageLeadTimes, dataprocessing.AverageLeadTimeByCategory(orders, products))
	return nil
}

func storeTables(state *RunState) (*dataprocessing.StoreTables, error) {
	value, _ := state.Get(KeyStoreTables)
	tables, ok := value.(*dataprocessing.StoreTables)
	if !ok {
		return nil, fmt.Errorf("unexpected store tables type %T", value)
	}
	return tables, nil
}

func publishProducts(state *RunState) ([]domain.PublishProduct, error) {
	value, _ := state.Get(KeyPublishProduct)
	products, ok := value.([]domain.PublishProduct)
	if !ok {
		return nil, fmt.Errorf("unexpected publish_product type %T", value)
	}
	return products, nil
}

func publishOrders(state *RunState) ([]domain.PublishOrder, error) {
	value, _ := state.Get(KeyPublishOrders)
	orders, ok := value.([]domain.PublishOrder)
	if !ok {
		return nil, fmt.Errorf("unexpected publish_orders type %T", value)
	}
	return orders, nil
}

// Results extracts the two analytics result tables from a completed run.
func Results(state *RunState) ([]domain.ColorRevenue, []domain.CategoryLeadTime, error) {
	revenueValue, ok := state.Get(KeyColorRevenue)
	if !ok {
		return nil, nil, fmt.Errorf("analytics step has not produced results")
	}
	revenue, ok := revenueValue.([]domain.ColorRevenue)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected color revenue type %T", revenueValue)
	}
	leadValue, _ := state.Get(KeyAverageLeadTimes)
	leads, ok := leadValue.([]domain.CategoryLeadTime)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected average lead time type %T", leadValue)
	}
	return revenue, leads, nil
}
