package initwfn

import (
	"github.com/samuelfneumann/qgrid/agent/tabular/qtable"
	"github.com/samuelfneumann/qgrid/environment/gridworld"
)

// TabulaRasaConfig implements a configuration of an initialisation
// which sets every action value to 0
type TabulaRasaConfig struct{}

// NewTabulaRasa returns a new tabula rasa initialisation
func NewTabulaRasa() *InitWFn {
	return newInitWFn(TabulaRasaConfig{})
}

// Type returns the type of initialisation described by this config
func (t TabulaRasaConfig) Type() Type {
	return TabulaRasa
}

// Create returns a table with every value 0
func (t TabulaRasaConfig) Create(size int,
	_ gridworld.Position) *qtable.QTable {
	return qtable.New(size)
}
