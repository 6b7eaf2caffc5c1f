// SPDX-License-Identifier: MIT

package ensemble

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Params holds the constructor arguments of every kind; each kind reads
// only its own fields.
type Params struct {
	DegreeDist []int   `mapstructure:"degree_dist"`
	NumOfNodes int     `mapstructure:"num_of_nodes"`
	EdgeProb   float64 `mapstructure:"edge_prob"`
	NumOfEdges int     `mapstructure:"num_of_edges"`
}

// Definition is the named-variant record read from an ensemble file.
type Definition struct {
	Type   string `mapstructure:"type"`
	Params Params `mapstructure:"params"`
}

// LoadDefinition reads a JSON or YAML ensemble definition; the format is
// picked from the file extension, and a path without one is read as JSON.
func LoadDefinition(path string) (Definition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}
	if err := v.ReadInConfig(); err != nil {
		return Definition{}, fmt.Errorf("LoadDefinition: %s: %w", path, err)
	}

	var def Definition
	def.Type = v.GetString("type")
	if err := v.UnmarshalKey("params", &def.Params); err != nil {
		return Definition{}, fmt.Errorf("LoadDefinition: %s: params: %w", path, err)
	}

	return def, nil
}

// New builds the ensemble named by def.Type, drawing from src.
func New(def Definition, src *Source) (Ensemble, error) {
	kind, err := ParseKind(def.Type)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	p := def.Params
	switch kind {
	case KindSpecifiedDegreeDist:
		e, err := NewSpecifiedDegreeDist(p.DegreeDist, src)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		return e, nil
	case KindErdosRenyi:
		e, err := NewErdosRenyi(p.NumOfNodes, p.EdgeProb, src)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		return e, nil
	case KindNM:
		e, err := NewNM(p.NumOfNodes, p.NumOfEdges, src)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		return e, nil
	case KindMultiGraph:
		e, err := NewMultiGraph(p.NumOfNodes, p.NumOfEdges, src)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("New: %s: %w", kind, ErrUnknownEnsemble)
	}
}

// Load is LoadDefinition followed by New.
func Load(path string, src *Source) (Ensemble, error) {
	def, err := LoadDefinition(path)
	if err != nil {
		return nil, err
	}

	return New(def, src)
}
