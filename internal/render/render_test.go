package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
	"github.com/couchcryptid/stormwater-assessment/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New()
	require.NoError(t, err)
	return r
}

func TestFieldSet_FlowAttenuation(t *testing.T) {
	r := newRenderer(t)
	f, ok := domain.DefaultCatalogue().FieldSet("flow_attenuation")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, r.FieldSet(&buf, f))

	out := buf.String()
	assert.Contains(t, out, `<label for="x_in">X-in (Flow Input) (m3/s):</label>`)
	assert.Contains(t, out, `id="x_in" name="x_in" placeholder="Enter flow input value" step="0.01" min="0"`)
	assert.Contains(t, out, `<label for="x_out">X-out (Flow Output) (m3/s):</label>`)
}

func TestFieldSet_IntegerFieldHasNoStep(t *testing.T) {
	r := newRenderer(t)
	f, ok := domain.DefaultCatalogue().FieldSet("dwf")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, r.FieldSet(&buf, f))

	assert.Contains(t, buf.String(), `id="population" name="population" placeholder="Enter population value" min="0">`)
}

func TestFieldSet_EmptyFeatureClears(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.FieldSet(&buf, domain.Feature{}))
	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestEntries_OneRowPerEntryBoundByID(t *testing.T) {
	r := newRenderer(t)
	entries := []domain.SavedEntry{
		{ID: "a1", Feature: "volume_reduction", Inputs: []domain.InputValue{{Label: "Volume In", Value: "12"}, {Label: "Volume Out", Value: "4"}}},
		{ID: "b2", Feature: "dwf"},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Entries(&buf, entries))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "<tr "))
	assert.Contains(t, out, "<td>volume_reduction</td>")
	assert.Contains(t, out, "<td>Volume In: 12, Volume Out: 4</td>")
	assert.Contains(t, out, `data-entry-id="a1"`)
	assert.Contains(t, out, `data-entry-id="b2"`)
	assert.Less(t, strings.Index(out, "a1"), strings.Index(out, "b2"))
}

func TestEntries_EscapesRawValues(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Entries(&buf, []domain.SavedEntry{
		{ID: "x", Feature: "dwf", Inputs: []domain.InputValue{{Label: "Population", Value: "<script>"}}},
	}))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestCondition(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Condition(&buf, domain.ConditionItem{Key: "pipes", Label: "Pipes", Rating: 5}))

	out := buf.String()
	assert.Contains(t, out, `id="condition-pipes"`)
	assert.Contains(t, out, "<label>Pipes:</label>")
	assert.Contains(t, out, `value="5" class="condition-slider"`)
	assert.Contains(t, out, `<span class="condition-value">5</span>`)
}

func TestSimulation(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Simulation(&buf, domain.HydrologicalResult{
		Runoff:         "7 m³",
		PipeFlowRatio:  "2",
		FloodFrequency: "2 events/day",
		InflowOutflow:  "0.75 m³/s",
	}))

	out := buf.String()
	assert.Contains(t, out, "<p><strong>Runoff Volume: </strong>7 m³</p>")
	assert.Contains(t, out, "<p><strong>Pipe Flow Ratio: </strong>2</p>")
	assert.Contains(t, out, "<p><strong>Flood Frequency: </strong>2 events/day</p>")
	assert.Contains(t, out, "<p><strong>Inflow/Outflow: </strong>0.75 m³/s</p>")
}

func TestIntake(t *testing.T) {
	r := newRenderer(t)
	echo := domain.DefaultCatalogue().EchoIntake(domain.FieldValues{"flowRate": "3"})

	var buf bytes.Buffer
	require.NoError(t, r.Intake(&buf, echo))

	out := buf.String()
	assert.Contains(t, out, "<h3>Time Condition (TC) - Lifespan and Long-Term Effectiveness</h3>")
	assert.Contains(t, out, "<p><strong>Flow Rate:</strong> 3 L/s</p>")
	assert.Equal(t, 20, strings.Count(out, "<p>"))
}

func TestPage(t *testing.T) {
	r := newRenderer(t)
	cat := domain.DefaultCatalogue()

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, render.NewPageData(cat, nil, nil)))

	out := buf.String()
	assert.Contains(t, out, `<option value="pumping_overflow">`)
	assert.Contains(t, out, `<option value="manholes">`)
	assert.Contains(t, out, `id="pf-value"`)
	assert.Contains(t, out, `id="instantaneousFlow"`)
	assert.Contains(t, out, `id="gcr-slider"`)
	assert.Contains(t, out, `id="osac-slider" name="osac-slider" min="0" max="10" step="1" value="5"><span id="osac-value">5</span>`)
	assert.Contains(t, out, `<span id="asset-classification">Fair - Rehabilitation Recommended</span>`)
}
