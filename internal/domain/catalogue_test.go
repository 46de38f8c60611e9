package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue_Valid(t *testing.T) {
	cat, err := LoadCatalogue("")
	require.NoError(t, err)
	require.NoError(t, cat.CheckReadiness(context.Background()))

	keys := make([]string, len(cat.Features))
	for i, f := range cat.Features {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{
		"flow_attenuation", "volume_reduction", "dwf",
		"overflow_freq", "drainage_duration", "pumping_overflow",
	}, keys)
}

func TestCatalogue_FieldSets(t *testing.T) {
	cat := DefaultCatalogue()

	type want struct {
		id, step, min string
	}
	tests := []struct {
		feature string
		fields  []want
	}{
		{"flow_attenuation", []want{{"x_in", "0.01", "0"}, {"x_out", "0.01", "0"}}},
		{"volume_reduction", []want{{"volume_in", "0.1", "0"}, {"volume_out", "0.1", "0"}}},
		{"dwf", []want{
			{"population", "", "0"},
			{"domestic_consumption", "0.1", "0"},
			{"industrial_flows", "0.1", "0"},
			{"infiltration", "0.1", "0"},
		}},
		{"overflow_freq", []want{
			{"total_flow_volume", "0.1", "0"},
			{"cso_volume", "0.1", "0"},
			{"overflow_return_period", "", "1"},
		}},
		{"drainage_duration", []want{{"time_to_peak", "0.1", "0"}, {"peak_discharge_volume", "0.1", "0"}}},
		{"pumping_overflow", []want{
			{"dwf_volume", "0.1", "0"},
			{"pumping_station_capacity", "0.1", "0"},
			{"overflow_volume", "0.1", "0"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.feature, func(t *testing.T) {
			f, ok := cat.FieldSet(tt.feature)
			require.True(t, ok)
			require.Len(t, f.Fields, len(tt.fields))
			for i, w := range tt.fields {
				assert.Equal(t, w.id, f.Fields[i].ID)
				assert.Equal(t, w.step, f.Fields[i].Step)
				assert.Equal(t, w.min, f.Fields[i].Min)
			}
		})
	}
}

func TestCatalogue_FieldSetUnknown(t *testing.T) {
	cat := DefaultCatalogue()

	for _, key := range []string{"", "nope"} {
		f, ok := cat.FieldSet(key)
		assert.False(t, ok)
		assert.Empty(t, f.Fields)
	}
}

func TestCatalogue_SaveLabels(t *testing.T) {
	cat := DefaultCatalogue()

	f, ok := cat.FieldSet("flow_attenuation")
	require.True(t, ok)
	assert.Equal(t, "X-in (Flow Input) (m3/s):", f.Fields[0].Label)
	assert.Equal(t, "X-in (Flow Input)", f.Fields[0].SaveLabel)

	f, ok = cat.FieldSet("pumping_overflow")
	require.True(t, ok)
	assert.Equal(t, "Pumping Station Overflow Volume (m³):", f.Fields[2].Label)
	assert.Equal(t, "Overflow Volume", f.Fields[2].SaveLabel)
}

func TestCatalogue_Classify(t *testing.T) {
	cat := DefaultCatalogue()

	tests := []struct {
		gcr  string
		want string
	}{
		{"10", "Good - Routine Maintenance"},
		{"8", "Good - Routine Maintenance"},
		{"7", "Fair - Rehabilitation Recommended"},
		{"3", "Poor - Major Rehabilitation Required"},
		{"0", "Critical - Replacement Required"},
		{"-1", Unclassified},
		{"", Unclassified},
	}
	for _, tt := range tests {
		t.Run(tt.gcr, func(t *testing.T) {
			assert.Equal(t, tt.want, cat.Classify(tt.gcr))
		})
	}
}

func TestCatalogue_StrategyLabelsKeepCatalogueOrder(t *testing.T) {
	cat := DefaultCatalogue()

	labels := cat.StrategyLabels([]string{"full_replacement", "bogus", "slip_lining"})
	assert.Equal(t, []string{"Slip Lining", "Full Replacement"}, labels)
	assert.Empty(t, cat.StrategyLabels(nil))
}

func TestLoadCatalogue_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	data := `
features:
  - key: custom
    title: Custom
    fields:
      - {id: a, label: "A:", save_label: A, step: "0.5", min: "0"}
conditions:
  - {key: pipes, label: Pipes}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cat, err := LoadCatalogue(path)
	require.NoError(t, err)
	f, ok := cat.FieldSet("custom")
	require.True(t, ok)
	assert.Equal(t, "0.5", f.Fields[0].Step)
}

func TestLoadCatalogue_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{
			name: "unknown key",
			data: "features: []\nbogus: 1\n",
			msg:  "parse catalogue",
		},
		{
			name: "no features",
			data: "features: []\nconditions: [{key: a, label: A}]\n",
			msg:  "invalid catalogue",
		},
		{
			name: "duplicate field across features",
			data: `
features:
  - {key: one, title: One, fields: [{id: x, label: "X:", save_label: X}]}
  - {key: two, title: Two, fields: [{id: x, label: "X:", save_label: X}]}
conditions: [{key: a, label: A}]
`,
			msg: `field "x" appears in both one and two`,
		},
		{
			name: "non numeric step",
			data: `
features:
  - {key: one, title: One, fields: [{id: x, label: "X:", save_label: X, step: fine}]}
conditions: [{key: a, label: A}]
`,
			msg: "invalid catalogue",
		},
		{
			name: "bands out of order",
			data: `
features:
  - {key: one, title: One, fields: [{id: x, label: "X:", save_label: X}]}
conditions: [{key: a, label: A}]
classifications:
  - {min: 2, label: Low}
  - {min: 5, label: High}
`,
			msg: "must have a lower min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalogue.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o600))

			_, err := LoadCatalogue(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadCatalogue_MissingFile(t *testing.T) {
	_, err := LoadCatalogue(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalogue")
}
