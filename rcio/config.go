package rcio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vginneken/bufferinsert/techconfig"
)

// ErrMultipleModules indicates a technology file named more than one
// module. The engine has no way to choose between several buffer
// modules, so exactly one is required and treated as the buffer module.
var ErrMultipleModules = errors.New("rcio: technology file must name exactly one module")

// ErrNoModules indicates a technology file named zero modules.
var ErrNoModules = errors.New("rcio: technology file names no module")

type moduleInputJSON struct {
	C float32 `json:"C"`
	R float32 `json:"R"`
	K float32 `json:"intrinsic_delay"`
}

type moduleJSON struct {
	Name  string            `json:"name"`
	Input []moduleInputJSON `json:"input"`
}

type technologyJSON struct {
	UnitR              float32 `json:"unit_wire_resistance"`
	UnitRComment       string  `json:"unit_wire_resistance_comment0"`
	UnitC              float32 `json:"unit_wire_capacitance"`
	UnitCComment       string  `json:"unit_wire_capacitance_comment0"`
}

type configJSON struct {
	Module     []moduleJSON   `json:"module"`
	Technology technologyJSON `json:"technology"`
}

// ReadConfig decodes a technology file into a techconfig.Config. The
// comment fields are decoded straight into their correspondingly named
// struct fields; an earlier revision swapped them in memory, but the
// JSON field names are authoritative and that swap had no business being
// observable, so it is not reproduced here.
func ReadConfig(r io.Reader) (techconfig.Config, error) {
	var doc configJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return techconfig.Config{}, fmt.Errorf("rcio: decoding technology file: %w", err)
	}

	switch len(doc.Module) {
	case 0:
		return techconfig.Config{}, ErrNoModules
	case 1:
	default:
		return techconfig.Config{}, ErrMultipleModules
	}
	mod := doc.Module[0]
	if len(mod.Input) != 1 {
		return techconfig.Config{}, fmt.Errorf("rcio: module %q must have exactly one input entry", mod.Name)
	}
	in := mod.Input[0]

	buf := techconfig.Module{Name: mod.Name, R: in.R, C: in.C, K: in.K}
	tech := techconfig.Technology{
		UnitR:              doc.Technology.UnitR,
		UnitC:              doc.Technology.UnitC,
		ResistanceComment:  doc.Technology.UnitRComment,
		CapacitanceComment: doc.Technology.UnitCComment,
	}

	return techconfig.NewConfig(tech, buf), nil
}
