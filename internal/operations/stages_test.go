package operations

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesetl/internal/config"
	"salesetl/internal/store"
	"salesetl/pkg/contracts/domain"
)

const (
	testProductsCSV = `ProductID,Color,ProductSubCategoryName,ProductCategoryName,MakeFlag,SafetyStockLevel,ReorderPoint,StandardCost,ListPrice,Weight
680,Black,Road Frames,,1,500,375,1059.31,1431.50,2.24
707,,Caps,,0,4,3,6.92,8.99,
708,Red,Kickstands,,0,4,3,5.00,9.00,
`
	testHeadersCSV = `SalesOrderID,OrderDate,ShipDate,OnlineOrderFlag,AccountNumber,CustomerID,SalesPersonID,Freight
43659,2012-01-02 00:00:00,2012-01-09,0,10-4020-000676,29825,279,616.0984
43660,2012-01-02,,1,10-4020-000117,29672,,12.50
`
	testDetailsCSV = `SalesOrderID,SalesOrderDetailID,OrderQty,ProductID,UnitPrice,UnitPriceDiscount
43659,1,3,680,100,0
43659,2,1,707,50,0
43660,3,2,708,20,0
99999,4,1,680,10,0
`
)

func pipelineFixture(t *testing.T) (*store.Store, config.PathsConfig) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ProductsFile), []byte(testProductsCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.OrderHeaderFile), []byte(testHeadersCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.OrderDetailFile), []byte(testDetailsCSV), 0o644))

	st, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, config.PathsConfig{DataDir: dir}
}

func TestFullPipelineRun(t *testing.T) {
	st, paths := pipelineFixture(t)

	registry := NewRegistry()
	require.NoError(t, RegisterPipelineSteps(registry, st, paths))
	assert.Equal(t, 5, registry.Len())

	m := NewManager(registry, nil)
	state, err := m.Execute(context.Background(), "test-run")
	require.NoError(t, err)
	assert.Equal(t, RunStatusCompleted, state.CurrentStatus())

	// Row-count invariant: every order line survives the left join.
	var published []domain.PublishOrder
	require.NoError(t, st.Read(&published))
	var details []domain.OrderDetail
	require.NoError(t, st.Read(&details))
	assert.Len(t, published, len(details))
	assert.Len(t, published, 4)

	// Publish product invariants.
	var products []domain.PublishProduct
	require.NoError(t, st.Read(&products))
	require.Len(t, products, 3)
	for _, p := range products {
		assert.NotEmpty(t, p.Color)
	}

	revenue, leads, err := Results(state)
	require.NoError(t, err)
	require.NotEmpty(t, revenue)
	require.NotEmpty(t, leads)

	// In 2012 Black sums to 300 and beats N/A (50) and Red (40); the line
	// without a matching header lands in the missing-year group.
	require.Len(t, revenue, 2)
	require.NotNil(t, revenue[0].Year)
	assert.Equal(t, 2012, *revenue[0].Year)
	require.NotNil(t, revenue[0].Color)
	assert.Equal(t, "Black", *revenue[0].Color)
	assert.InDelta(t, 300.0, revenue[0].Revenue, 0.0001)
	assert.Nil(t, revenue[1].Year)
	assert.InDelta(t, 10.0, revenue[1].Revenue, 0.0001)
}

func TestPipelineStepsValidateTheirInputs(t *testing.T) {
	st, _ := pipelineFixture(t)

	state := NewRunState("empty")
	normalize := &NormalizeStep{store: st}
	assert.Error(t, normalize.Validate(state), "normalize needs the raw tables")

	analytics := &AnalyticsStep{}
	assert.Error(t, analytics.Validate(state), "analytics needs both publish tables")
}

func TestPipelineFailsOnMissingInputFile(t *testing.T) {
	st, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	registry := NewRegistry()
	require.NoError(t, RegisterPipelineSteps(registry, st, config.PathsConfig{DataDir: t.TempDir()}))

	m := NewManager(registry, nil)
	state, err := m.Execute(context.Background(), "broken-run")
	require.Error(t, err)
	assert.Equal(t, RunStatusFailed, state.CurrentStatus())

	stepState, ok := state.StepState(StepIDLoadRaw)
	require.True(t, ok)
	assert.Equal(t, StepStatusFailed, stepState.CurrentStatus())
}

func TestResultsBeforeAnalytics(t *testing.T) {
	state := NewRunState("fresh")
	_, _, err := Results(state)
	assert.Error(t, err)
}
