package mcp

import "fmt"

// FormatMCPError formats various error types into MCP-compatible JSON-RPC errors
func FormatMCPError(err error) *RPCError {
	// Check if already an RPC error
	if rpcErr, ok := err.(*RPCError); ok {
		return rpcErr
	}

	// Check for validation errors
	if ve, ok := err.(*ValidationError); ok {
		return &RPCError{
			Code:    ValidationFailed,
			Message: "Parameter validation failed",
			Data: map[string]interface{}{
				"field":   ve.Field,
				"message": ve.Message,
			},
		}
	}

	// Generic error
	return &RPCError{
		Code:    InternalError,
		Message: fmt.Sprintf("Internal error: %s", err.Error()),
	}
}
