package forecast

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"go.uber.org/zap"
)

// TestPerformance loads the example configuration and times each stage.
func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping performance test in short mode")
	}

	logger := zap.NewNop()

	start := time.Now()
	conf, err := config.LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	loadTime := time.Since(start)

	start = time.Now()
	const runs = 1000
	for i := 0; i < runs; i++ {
		if _, err := GetForecast(logger, *conf); err != nil {
			t.Fatalf("GetForecast failed: %v", err)
		}
	}
	forecastTime := time.Since(start)

	t.Logf("Performance metrics:")
	t.Logf("  Config loading: %v", loadTime)
	t.Logf("  %d forecasts: %v (%v each)", runs, forecastTime, forecastTime/runs)

	if forecastTime > 10*time.Second {
		t.Errorf("forecasting took too long: %v", forecastTime)
	}
}

func BenchmarkGetForecast(b *testing.B) {
	logger := zap.NewNop()
	conf := config.DefaultConfiguration()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := GetForecast(logger, conf); err != nil {
			b.Fatalf("GetForecast failed: %v", err)
		}
	}
}
