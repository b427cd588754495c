package observability

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-marketplace/internal/config"
)

// keepGlobals restores the otel tracer provider and propagator after t.
func keepGlobals(t *testing.T) {
	t.Helper()
	tp, prop := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(prop)
	})
}

func otelCfg(service string, insecure bool) config.OTELConfig {
	return config.OTELConfig{
		Enabled:     true,
		Insecure:    insecure,
		Endpoint:    "localhost:4317",
		ServiceName: service,
		SampleRatio: 1.0,
	}
}

func TestSetupOTel_DisabledIsNoop(t *testing.T) {
	keepGlobals(t)
	before := otel.GetTracerProvider()

	cfg := otelCfg("catalog", true)
	cfg.Enabled = false
	shutdown, err := SetupOTel(context.Background(), cfg, "dev")
	if err != nil || shutdown == nil {
		t.Fatalf("disabled setup: shutdown=%v err=%v", shutdown != nil, err)
	}
	if otel.GetTracerProvider() != before {
		t.Fatalf("disabled setup must not touch the global provider")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestSetupOTel_InstallsProvider(t *testing.T) {
	for _, tc := range []struct {
		name     string
		insecure bool
	}{
		{"plaintext", true},
		{"tls", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			keepGlobals(t)

			shutdown, err := SetupOTel(context.Background(), otelCfg("marketplace-"+tc.name, tc.insecure), "1.0.0")
			if err != nil {
				t.Fatalf("setup: %v", err)
			}
			if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
				t.Fatalf("global provider is %T", otel.GetTracerProvider())
			}

			// The composite propagator carries traceparent across a carrier.
			ctx, span := otel.Tracer("purchase").Start(context.Background(), "purchase",
				trace.WithSpanKind(trace.SpanKindInternal))
			carrier := propagation.MapCarrier{}
			otel.GetTextMapPropagator().Inject(ctx, carrier)
			span.End()
			if carrier.Get("traceparent") == "" {
				t.Fatalf("traceparent not injected: %v", carrier)
			}

			sctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
			defer cancel()
			_ = shutdown(sctx)
		})
	}
}

func TestSetupOTel_CanceledContextStillBuilds(t *testing.T) {
	keepGlobals(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	shutdown, err := SetupOTel(ctx, otelCfg("catalog", true), "dev")
	if err != nil {
		t.Fatalf("grpc exporter connects lazily, got %v", err)
	}
	_ = shutdown(context.Background())
}

func TestSetupOTel_FailureLeavesGlobals(t *testing.T) {
	failures := map[string]func(t *testing.T){
		"exporter": func(t *testing.T) {
			orig := newOTLPExporterFn
			t.Cleanup(func() { newOTLPExporterFn = orig })
			newOTLPExporterFn = func(context.Context, otlptrace.Client) (*otlptrace.Exporter, error) {
				return nil, errors.New("exporter unavailable")
			}
		},
		"resource": func(t *testing.T) {
			orig := newServiceResourceFn
			t.Cleanup(func() { newServiceResourceFn = orig })
			newServiceResourceFn = func(context.Context, string, string, ...attribute.KeyValue) (*resource.Resource, error) {
				return nil, errors.New("bad resource")
			}
		},
	}
	for name, inject := range failures {
		t.Run(name, func(t *testing.T) {
			keepGlobals(t)
			inject(t)
			tp, prop := otel.GetTracerProvider(), otel.GetTextMapPropagator()

			if _, err := SetupOTel(context.Background(), otelCfg("catalog", true), "dev"); err == nil {
				t.Fatalf("expected %s failure", name)
			}
			if otel.GetTracerProvider() != tp || otel.GetTextMapPropagator() != prop {
				t.Fatalf("globals replaced after %s failure", name)
			}
		})
	}
}

func TestSetupOTel_ForwardsExtraAttributes(t *testing.T) {
	keepGlobals(t)

	orig := newServiceResourceFn
	t.Cleanup(func() { newServiceResourceFn = orig })
	var got []attribute.KeyValue
	newServiceResourceFn = func(ctx context.Context, name, version string, extra ...attribute.KeyValue) (*resource.Resource, error) {
		got = extra
		return orig(ctx, name, version, extra...)
	}

	shutdown, err := SetupOTel(context.Background(), otelCfg("catalog", true), "dev", AttrStoreDriver.String("redis"))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if len(got) != 1 || got[0].Key != AttrStoreDriver || got[0].Value.AsString() != "redis" {
		t.Fatalf("extra attributes not forwarded: %v", got)
	}
}

func TestOutcome(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	refused := errors.New("payment required")
	cases := []struct {
		name    string
		err     error
		failed  bool
		outcome string
	}{
		{"ok", nil, false, "ok"},
		{"expected refusal", fmt.Errorf("download: %w", refused), false, "download: payment required"},
		{"unexpected", errors.New("disk on fire"), true, ""},
	}
	for _, tc := range cases {
		_, span := tp.Tracer("outcome").Start(context.Background(), tc.name)
		Outcome(span, tc.err, refused)
		span.End()
	}

	ended := rec.Ended()
	if len(ended) != len(cases) {
		t.Fatalf("expected %d spans, got %d", len(cases), len(ended))
	}
	for i, tc := range cases {
		s := ended[i]
		if failed := s.Status().Code == codes.Error; failed != tc.failed {
			t.Fatalf("%s: failed=%v; want %v", tc.name, failed, tc.failed)
		}
		if tc.failed && len(s.Events()) == 0 {
			t.Fatalf("%s: error event not recorded", tc.name)
		}
		var outcome string
		for _, kv := range s.Attributes() {
			if kv.Key == "marketplace.outcome" {
				outcome = kv.Value.AsString()
			}
		}
		if outcome != tc.outcome {
			t.Fatalf("%s: outcome=%q; want %q", tc.name, outcome, tc.outcome)
		}
	}
}
