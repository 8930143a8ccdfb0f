package enum

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

type recordingMetrics struct {
	mu          sync.Mutex
	discovered  map[string]int
	constructed []string
	failures    []Kind
}

func (r *recordingMetrics) ConstantsDiscovered(typ string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.discovered == nil {
		r.discovered = make(map[string]int)
	}
	r.discovered[typ] = count
}

func (r *recordingMetrics) InstanceConstructed(typ, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructed = append(r.constructed, typ+"."+name)
}

func (r *recordingMetrics) LookupFailed(_ string, kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, kind)
}

type observed struct{ Base }

func TestObservabilityHooks(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	rec := &recordingMetrics{}
	SetMetrics(rec)
	t.Cleanup(func() {
		SetLogger(nil)
		SetMetrics(nil)
	})

	registry := New[observed](Declare("ObserveTestType", Const("ONE", 1), Const("TWO", 2)))
	registry.MustValueOf("ONE")
	registry.MustValueOf("ONE")
	if _, err := registry.ValueOf("THREE"); err == nil {
		t.Fatalf("expected lookup failure")
	}
	if _, err := registry.FromValue(3); err == nil {
		t.Fatalf("expected value failure")
	}

	if rec.discovered["ObserveTestType"] != 2 {
		t.Fatalf("expected discovery metric, got %v", rec.discovered)
	}
	if len(rec.constructed) != 1 || rec.constructed[0] != "ObserveTestType.ONE" {
		t.Fatalf("expected single construction, got %v", rec.constructed)
	}
	if len(rec.failures) != 2 || rec.failures[0] != KindInvalidName || rec.failures[1] != KindInvalidValue {
		t.Fatalf("unexpected failures %v", rec.failures)
	}

	out := buf.String()
	for _, want := range []string{
		"enum constants discovered",
		"enum instance constructed",
		`msg="enum constant not defined" type=ObserveTestType name=THREE`,
		`msg="enum value not defined" type=ObserveTestType value=3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestNilSinksFallBackToNoop(t *testing.T) {
	SetLogger(nil)
	SetMetrics(nil)
	if _, ok := logger().(noopLogger); !ok {
		t.Fatalf("expected noop logger")
	}
	if _, ok := metrics().(noopMetrics); !ok {
		t.Fatalf("expected noop metrics")
	}
}
