// Package gen implements the algorithmic name generators of §4.8: families
// whose names follow a closed formula from a code-point value, served
// without expanding them into the compiled database (SPEC_FULL.md §12.1).
package gen

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/unina-go/unina/namerange"
)

// FamilyTableEntry describes one algorithmic hex-named family: every code
// point in [Low, High] is named Stem followed by its zero-padded uppercase
// hex value (namecounter.HyphenHex), per §4.8 and SPEC_FULL.md §12.2.
type FamilyTableEntry struct {
	Name             string `json:"name"`
	Stem             string `json:"stem"`
	Low              int    `json:"low"`
	High             int    `json:"high"`
	NameTypeSpelling string `json:"nameType"`
}

// NameType resolves the entry's nameType spelling.
func (e FamilyTableEntry) NameType() (namerange.Type, error) {
	nt, ok := namerange.ParseType(e.NameTypeSpelling)
	if !ok {
		return 0, fmt.Errorf("gen: family %q has unknown nameType %q", e.Name, e.NameTypeSpelling)
	}
	return nt, nil
}

// familyTableSchema is the JSON Schema a configured family table must
// satisfy before LoadFamilyTable will decode it.
const familyTableSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name", "stem", "low", "high", "nameType"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"stem": {"type": "string", "minLength": 1},
			"low": {"type": "integer", "minimum": 0, "maximum": 1114111},
			"high": {"type": "integer", "minimum": 0, "maximum": 1114111},
			"nameType": {"type": "string"}
		},
		"additionalProperties": false
	}
}`

// LoadFamilyTable validates data against familyTableSchema and decodes it
// into a family table, rejecting any entry with an unknown nameType
// spelling or an inverted [low, high] range.
func LoadFamilyTable(data []byte) ([]FamilyTableEntry, error) {
	sch, err := jsonschema.CompileString("family-table.json", familyTableSchema)
	if err != nil {
		return nil, fmt.Errorf("gen: compiling family table schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gen: parsing family table JSON: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("gen: family table failed schema validation: %w", err)
	}

	var entries []FamilyTableEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("gen: decoding family table: %w", err)
	}
	for _, e := range entries {
		if _, err := e.NameType(); err != nil {
			return nil, err
		}
		if e.Low > e.High {
			return nil, fmt.Errorf("gen: family %q has low %d > high %d", e.Name, e.Low, e.High)
		}
	}
	return entries, nil
}
