package contract

import (
	"fmt"
	"math"
	"os"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"github.com/huangsam/examtwin/schema"
	"github.com/xeipuuv/gojsonschema"
)

// Keys accepted in an input document (input file or MCP arguments).
const (
	KeyTargetBand  = "target_band"
	KeyExamDays    = "exam_days"
	KeyListening   = "listening"
	KeyReading     = "reading"
	KeyWriting     = "writing"
	KeySpeaking    = "speaking"
	KeyAccuracy    = "accuracy"
	KeyConsistency = "consistency"
	KeyMocksTaken  = "mocks_taken"
	KeySeed        = "seed"
)

// MaxInputSeed is the largest seed a document may carry. Documents decode
// numbers as float64, which holds every integer up to 2^53 exactly.
const MaxInputSeed = 1 << 53

// InputDocumentSchema returns the JSON schema every input document must satisfy.
// Ranges and steps mirror schema.PreparationInputs.Validate.
func InputDocumentSchema() map[string]any {
	band := func(lo, hi float64, desc string) map[string]any {
		return map[string]any{"type": "number", "minimum": lo, "maximum": hi, "multipleOf": schema.BandStep, "description": desc}
	}
	integer := func(lo, hi int, desc string) map[string]any {
		return map[string]any{"type": "integer", "minimum": lo, "maximum": hi, "description": desc}
	}
	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title":   "examtwin preparation inputs",
		"type":    "object",
		"properties": map[string]any{
			KeyTargetBand:  band(schema.MinTargetBand, schema.MaxTargetBand, "Target overall band"),
			KeyExamDays:    integer(schema.MinExamDays, schema.MaxExamDays, "Days until the exam"),
			KeyListening:   band(schema.MinSectionBand, schema.MaxSectionBand, "Listening band"),
			KeyReading:     band(schema.MinSectionBand, schema.MaxSectionBand, "Reading band"),
			KeyWriting:     band(schema.MinSectionBand, schema.MaxSectionBand, "Writing band"),
			KeySpeaking:    band(schema.MinSectionBand, schema.MaxSectionBand, "Speaking band"),
			KeyAccuracy:    integer(int(schema.MinAccuracy), int(schema.MaxAccuracy), "Practice accuracy percent"),
			KeyConsistency: integer(schema.MinConsistency, schema.MaxConsistency, "Study days per week"),
			KeyMocksTaken:  integer(schema.MinMocks, schema.MaxMocks, "Mock tests taken"),
			KeySeed:        map[string]any{"type": "integer", "minimum": 0, "maximum": MaxInputSeed, "description": "Trend seed (0 = random)"},
		},
		"additionalProperties": false,
	}
}

// ValidateInputDocument checks a decoded document against InputDocumentSchema.
// Schema violations are reported as schema.InvalidInputError.
func ValidateInputDocument(doc map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(InputDocumentSchema()),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]schema.FieldViolation, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" {
			if p, ok := desc.Details()["property"].(string); ok {
				field = p
			}
		}
		violations = append(violations, schema.FieldViolation{
			Field:  field,
			Value:  fmt.Sprint(desc.Value()),
			Reason: desc.Description(),
		})
	}
	return &schema.InvalidInputError{Violations: violations}
}

// LoadInputFile reads an HJSON (or plain JSON) input document and validates it.
func LoadInputFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read input file: %w", err)
	}
	return ParseInputDocument(data)
}

// ParseInputDocument decodes HJSON bytes and validates them.
func ParseInputDocument(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := hjson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse input file: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := ValidateInputDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ApplyInputDocument overwrites the fields of in that doc sets. The document
// must already be validated. The seed is returned separately since it is not an input.
func ApplyInputDocument(in *schema.PreparationInputs, doc map[string]any) (*uint64, error) {
	floatFields := map[string]*float64{
		KeyTargetBand: &in.TargetBand,
		KeyListening:  &in.Scores.Listening,
		KeyReading:    &in.Scores.Reading,
		KeyWriting:    &in.Scores.Writing,
		KeySpeaking:   &in.Scores.Speaking,
		KeyAccuracy:   &in.Accuracy,
	}
	intFields := map[string]*int{
		KeyExamDays:    &in.ExamDays,
		KeyConsistency: &in.Consistency,
		KeyMocksTaken:  &in.MocksTaken,
	}

	var seed *uint64
	for key, raw := range doc {
		v, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a number", schema.ErrInvalidInput, key)
		}
		switch {
		case floatFields[key] != nil:
			*floatFields[key] = v
		case intFields[key] != nil:
			*intFields[key] = int(v)
		case key == KeySeed:
			if v < 0 || v > MaxInputSeed || v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: seed must be a whole number between 0 and %d", schema.ErrInvalidInput, uint64(MaxInputSeed))
			}
			s := uint64(v)
			seed = &s
		default:
			return nil, fmt.Errorf("%w: unknown field %s", schema.ErrInvalidInput, strings.TrimSpace(key))
		}
	}
	return seed, nil
}

// toFloat accepts the numeric types produced by HJSON, JSON and MCP decoders.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
