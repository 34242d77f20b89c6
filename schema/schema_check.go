package schema

// CheckResult holds the outcome of a readiness gate.
type CheckResult struct {
	Passed       bool     `json:"passed" yaml:"passed"`
	Readiness    int      `json:"readiness" yaml:"readiness"`
	MinReadiness int      `json:"min_readiness" yaml:"min_readiness"`
	Zone         Zone     `json:"zone" yaml:"zone"`
	Risk         Advice   `json:"risk" yaml:"risk"`
	Failures     []string `json:"failures,omitempty" yaml:"failures,omitempty"`
}
