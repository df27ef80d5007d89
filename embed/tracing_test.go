package embed

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// captureSpans routes the global tracer into buf for the duration of the
// test.
func captureSpans(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(buf), stdouttrace.WithPrettyPrint())
	require.NoError(t, err)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("quiver-test"),
		)),
	)
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
}

func TestSearchEmitsSpan(t *testing.T) {
	var buf bytes.Buffer
	captureSpans(t, &buf)

	ix := compassIndex(t)
	_, err := ix.Search(context.Background(), []float64{1, 0.5}, 2)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.Contains(out, `"Search"`), "span output missing Search: %s", out)
	require.Contains(t, out, "index_size")
}

func TestEmbedBatchEmitsSpan(t *testing.T) {
	var buf bytes.Buffer
	captureSpans(t, &buf)

	e, err := NewEmbedder(testDictionary(t))
	require.NoError(t, err)
	_, err = e.EmbedBatch(context.Background(), []string{"arrow", "bow"})
	require.NoError(t, err)

	require.Contains(t, buf.String(), `"EmbedBatch"`)
	require.Contains(t, buf.String(), "batch_size")
}
