package schema

// FormulaFactor is one weighted term of the readiness formula.
type FormulaFactor struct {
	Name       string  `json:"name" yaml:"name"`
	Weight     float64 `json:"weight" yaml:"weight"`
	Normalizer string  `json:"normalizer" yaml:"normalizer"`
}

// FormulaDefinition describes one derived indicator for display purposes.
type FormulaDefinition struct {
	Name    string          `json:"name" yaml:"name"`
	Purpose string          `json:"purpose" yaml:"purpose"`
	Formula string          `json:"formula" yaml:"formula"`
	Factors []FormulaFactor `json:"factors,omitempty" yaml:"factors,omitempty"`
	Rules   []string        `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// FormulasRenderModel contains all processed data needed for displaying formula definitions.
type FormulasRenderModel struct {
	Title       string              `json:"title" yaml:"title"`
	Description string              `json:"description" yaml:"description"`
	Rounding    string              `json:"rounding" yaml:"rounding"`
	Definitions []FormulaDefinition `json:"definitions" yaml:"definitions"`
}
