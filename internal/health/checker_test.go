package health

import (
	"context"
	"testing"
	"time"
)

type staticChecker CheckResult

func (c staticChecker) Check(context.Context) CheckResult {
	return CheckResult(c)
}

func TestProbeRunnerAllHealthy(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond, 0,
		staticChecker{Name: "postgres", Healthy: true},
		staticChecker{Name: "redis", Healthy: true},
		staticChecker{Name: "minio", Healthy: true},
	)
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatal("expected ready")
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, res := range results {
		if !res.Healthy || res.Error != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	}
}

func TestProbeRunnerSingleFailureFlipsReadiness(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond, 0,
		staticChecker{Name: "postgres", Healthy: true},
		staticChecker{Name: "redis", Healthy: false, Error: "connection refused"},
	)
	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatal("expected unready when one dependency is down")
	}
	// The healthy result still reports, so operators see the full picture.
	if len(results) != 2 {
		t.Fatalf("expected both results, got %d", len(results))
	}
	if results[1].Error != "connection refused" {
		t.Fatalf("expected the failure detail, got %+v", results[1])
	}
}

func TestProbeRunnerStartupGrace(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond, time.Minute,
		staticChecker{Name: "postgres", Healthy: true},
	)
	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatal("expected unready during the grace period")
	}
	if len(results) != 1 || results[0].Name != "startup_grace" {
		t.Fatalf("unexpected grace results: %+v", results)
	}
}

func TestProbeRunnerNilIsAlwaysReady(t *testing.T) {
	var runner *ProbeRunner
	ready, results := runner.Ready(context.Background())
	if !ready || results != nil {
		t.Fatalf("expected nil runner to pass, got %v %+v", ready, results)
	}
}
