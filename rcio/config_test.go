package rcio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vginneken/bufferinsert/rcio"
)

const sampleTechnology = `{
  "module": [ { "name": "BUF", "input": [ { "C": 0.5, "R": 0.1, "intrinsic_delay": 0.2 } ] } ],
  "technology": {
    "unit_wire_resistance": 1.0,
    "unit_wire_resistance_comment0": "ohm per unit length",
    "unit_wire_capacitance": 1.0,
    "unit_wire_capacitance_comment0": "farad per unit length"
  }
}`

func TestReadConfig(t *testing.T) {
	cfg, err := rcio.ReadConfig(strings.NewReader(sampleTechnology))
	require.NoError(t, err)

	require.Equal(t, "BUF", cfg.Buffer().Name)
	require.Equal(t, float32(0.5), cfg.Buffer().C)
	require.Equal(t, float32(0.1), cfg.Buffer().R)
	require.Equal(t, float32(0.2), cfg.Buffer().K)

	require.Equal(t, float32(1.0), cfg.Technology().UnitR)
	require.Equal(t, float32(1.0), cfg.Technology().UnitC)
	require.Equal(t, "ohm per unit length", cfg.Technology().ResistanceComment)
	require.Equal(t, "farad per unit length", cfg.Technology().CapacitanceComment)
}

func TestReadConfig_MultipleModulesRejected(t *testing.T) {
	doc := `{
      "module": [
        { "name": "A", "input": [ { "C": 1, "R": 1, "intrinsic_delay": 1 } ] },
        { "name": "B", "input": [ { "C": 1, "R": 1, "intrinsic_delay": 1 } ] }
      ],
      "technology": { "unit_wire_resistance": 1, "unit_wire_resistance_comment0": "",
                       "unit_wire_capacitance": 1, "unit_wire_capacitance_comment0": "" }
    }`

	_, err := rcio.ReadConfig(strings.NewReader(doc))
	require.ErrorIs(t, err, rcio.ErrMultipleModules)
}

func TestReadConfig_NoModulesRejected(t *testing.T) {
	doc := `{
      "module": [],
      "technology": { "unit_wire_resistance": 1, "unit_wire_resistance_comment0": "",
                       "unit_wire_capacitance": 1, "unit_wire_capacitance_comment0": "" }
    }`

	_, err := rcio.ReadConfig(strings.NewReader(doc))
	require.ErrorIs(t, err, rcio.ErrNoModules)
}
