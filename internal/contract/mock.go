package contract

import (
	"time"

	"github.com/huangsam/examtwin/schema"
	"github.com/stretchr/testify/mock"
)

// MockResultWriter is a mock type for the ResultWriter type.
type MockResultWriter struct {
	mock.Mock
}

var _ ResultWriter = &MockResultWriter{} // Compile-time check

// WriteReport implements the ResultWriter interface.
func (m *MockResultWriter) WriteReport(report schema.Report, cfg *Config, duration time.Duration) error {
	return m.Called(report, cfg, duration).Error(0)
}

// WriteTrend implements the ResultWriter interface.
func (m *MockResultWriter) WriteTrend(result schema.TrendResult, cfg *Config) error {
	return m.Called(result, cfg).Error(0)
}

// WriteFormulas implements the ResultWriter interface.
func (m *MockResultWriter) WriteFormulas(model *schema.FormulasRenderModel, cfg *Config) error {
	return m.Called(model, cfg).Error(0)
}

// WriteCheck implements the ResultWriter interface.
func (m *MockResultWriter) WriteCheck(result schema.CheckResult, cfg *Config) error {
	return m.Called(result, cfg).Error(0)
}
