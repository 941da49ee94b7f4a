package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportEnvWithoutKey(t *testing.T) {
	assert.Nil(t, Options{}.ExportEnv())
}

func TestExportEnvDefaultsDataset(t *testing.T) {
	env := Options{APIKey: "abc"}.ExportEnv()
	assert.Equal(t, honeycombEndpoint, env["OTEL_EXPORTER_OTLP_ENDPOINT"])
	assert.Equal(t, "x-honeycomb-team=abc,x-honeycomb-dataset=dungeonmaze", env["OTEL_EXPORTER_OTLP_HEADERS"])
}

func TestSetupWithoutKeyIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), Options{})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()
}
