// Package loader reads the raw per-season tables into typed in-memory tables.
package loader

import (
	"fmt"

	"github.com/spf13/viper"
)

// Data set names understood by the schema dictionary
const (
	DataSetPlayer  = "player"
	DataSetHistory = "player_hist"
	DataSetFixture = "fixture"
	DataSetTeam    = "team"
)

// DataSetSchema maps canonical field names to raw column names for one
// tabular source.
type DataSetSchema struct {
	File    string            `mapstructure:"file"`
	Columns map[string]string `mapstructure:"columns"`
}

// Schema is the external, human-editable schema dictionary: one entry per
// data set, consumed read-only.
type Schema struct {
	DataSets map[string]DataSetSchema `mapstructure:"data_sets"`
}

// LoadSchema reads the schema dictionary from a YAML file
func LoadSchema(path string) (*Schema, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read schema dictionary %s: %w", path, err)
	}

	schema := &Schema{}
	if err := v.Unmarshal(schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema dictionary %s: %w", path, err)
	}

	for _, name := range []string{DataSetPlayer, DataSetHistory, DataSetFixture, DataSetTeam} {
		ds, ok := schema.DataSets[name]
		if !ok {
			return nil, fmt.Errorf("schema dictionary %s is missing data set %q", path, name)
		}
		if ds.File == "" {
			return nil, fmt.Errorf("schema dictionary %s: data set %q has no file", path, name)
		}
		if len(ds.Columns) == 0 {
			return nil, fmt.Errorf("schema dictionary %s: data set %q has no column mappings", path, name)
		}
	}

	return schema, nil
}

// DataSet returns the schema entry for the named data set
func (s *Schema) DataSet(name string) (DataSetSchema, error) {
	ds, ok := s.DataSets[name]
	if !ok {
		return DataSetSchema{}, fmt.Errorf("unknown data set %q", name)
	}
	return ds, nil
}

// Column resolves a canonical field name to the raw column name
func (d DataSetSchema) Column(canonical string) (string, error) {
	raw, ok := d.Columns[canonical]
	if !ok {
		return "", fmt.Errorf("no column mapping for field %q in %s", canonical, d.File)
	}
	return raw, nil
}
