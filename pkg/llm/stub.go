package llm

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// StubModel is the model identifier reported by the stub variant.
const StubModel = "stub-llm"

// StubClient is a deterministic, zero-I/O Client. It walks the response
// schema and fills it with values derived from a hash of the prompt, so the
// same prompt always produces the same schema-valid output. Numeric fields
// land in [0.0, 1.0], which matches the voice metric bounds.
type StubClient struct {
	model string
}

// NewStubClient creates a stub client. An empty model defaults to StubModel.
func NewStubClient(model string) *StubClient {
	if model == "" {
		model = StubModel
	}
	return &StubClient{model: model}
}

// schemaNode is the subset of JSON Schema the stub understands.
type schemaNode struct {
	Type       string                 `json:"type"`
	Properties map[string]*schemaNode `json:"properties"`
	Items      *schemaNode            `json:"items"`
}

// GenerateStructured implements Client with no external I/O.
func (s *StubClient) GenerateStructured(_ context.Context, prompt string, schema ResponseSchema) (string, error) {
	var root schemaNode
	if err := json.Unmarshal(schema.Schema, &root); err != nil {
		return "", NewError(ErrorTypeParse, "invalid response schema", false, err)
	}

	value := fillNode(prompt, schema.Name, &root)

	out, err := json.Marshal(value)
	if err != nil {
		return "", NewError(ErrorTypeParse, "marshal stub response", false, err)
	}
	return string(out), nil
}

// GetModel returns the model name the stub reports.
func (s *StubClient) GetModel() string {
	return s.model
}

// fillNode produces a deterministic value for a schema node. The name carries
// the property path so sibling numbers get distinct scores.
func fillNode(seed, name string, node *schemaNode) any {
	if node == nil {
		return nil
	}

	switch node.Type {
	case "object":
		obj := make(map[string]any, len(node.Properties))
		for prop, child := range node.Properties {
			obj[prop] = fillNode(seed, prop, child)
		}
		return obj
	case "array":
		if node.Items != nil && node.Items.Type == "string" {
			spaced := strings.ReplaceAll(name, "_", " ")
			return []string{
				fmt.Sprintf("Deterministic %s entry one.", spaced),
				fmt.Sprintf("Deterministic %s entry two.", spaced),
			}
		}
		return []any{fillNode(seed, name+"_item", node.Items)}
	case "number":
		return deterministicScore(seed + name)
	case "integer":
		return int(deterministicScore(seed+name) * 100)
	case "boolean":
		return deterministicScore(seed+name) >= 0.5
	default: // string and anything unrecognized
		return fmt.Sprintf("Deterministic %s for the supplied content.", strings.ReplaceAll(name, "_", " "))
	}
}

// deterministicScore maps a seed to a stable two-decimal float in [0.0, 1.0].
func deterministicScore(seed string) float64 {
	h := sha256.Sum256([]byte(seed))
	v := binary.BigEndian.Uint32(h[:4])
	return math.Round(float64(v)/float64(math.MaxUint32)*100) / 100
}

// Ensure StubClient implements Client at compile time.
var _ Client = (*StubClient)(nil)
