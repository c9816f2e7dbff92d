package shared

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/agentkit-io/agentkit/pkg/shared/files"
)

// GenericResult captures the outcome of a single tool invocation in a shape
// every command writes identically, so downstream agents parse one envelope.
type GenericResult struct {
	RunID   string      `json:"run_id"`
	Tool    string      `json:"tool"`
	Args    interface{} `json:"args"`
	Result  interface{} `json:"result"`
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
}

// NewResult builds the envelope for one invocation. Status is derived from err.
func NewResult(tool string, args, result interface{}, err error) GenericResult {
	res := GenericResult{
		RunID:  uuid.NewString(),
		Tool:   tool,
		Args:   args,
		Result: result,
		Status: "OK",
	}
	if err != nil {
		res.Status = "FAILED"
		res.Message = err.Error()
	}
	return res
}

// WriteResult serializes the envelope to outputPath as indented JSON.
func WriteResult(logger hclog.Logger, outputPath string, result GenericResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := files.WriteJsonFile(outputPath, data); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	logger.Debug("result written", "tool", result.Tool, "path", outputPath, "status", result.Status)
	return nil
}
