// ABOUTME: Argument validation errors reported back to MCP clients
// ABOUTME: Both types surface as "Error: ..." tool results through the dispatcher

package mcp

import "fmt"

// MissingParameterError means a required argument was absent or empty.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing required parameter: %s", e.Key)
}

// InvalidParameterError means an argument was present with an unusable value.
type InvalidParameterError struct {
	Name   string
	Detail string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("Invalid parameter '%s': %s", e.Name, e.Detail)
}
