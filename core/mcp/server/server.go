// Package server exposes the factorial tool over the Model Context Protocol.
package server

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/tools"
)

const serverName = "factorial"

// FactorialInput is the MCP tool input.
type FactorialInput struct {
	N int64 `json:"n" jsonschema:"non-negative integer whose factorial is computed"`
}

// FactorialResult is the MCP tool output.
type FactorialResult struct {
	N      int64  `json:"n"`
	Value  string `json:"value" jsonschema:"decimal digits of n!"`
	Digits int    `json:"digits" jsonschema:"number of decimal digits in value"`
}

func FactorialTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "factorial",
		Description: "Computes n! exactly for a non-negative integer n",
	}
}

func FactorialHandler() mcp.ToolHandlerFor[FactorialInput, FactorialResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FactorialInput) (*mcp.CallToolResult, FactorialResult, error) {
		v, err := tools.Compute(input.N)
		if err != nil {
			return nil, FactorialResult{}, err
		}

		value := v.String()
		return &mcp.CallToolResult{}, FactorialResult{N: input.N, Value: value, Digits: len(value)}, nil
	}
}

// New builds an MCP server with the factorial tool registered.
func New(version string) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	mcp.AddTool(s, FactorialTool(), FactorialHandler())
	return s
}

// Serve runs the server on stdio until the client disconnects or ctx ends.
func Serve(ctx context.Context, version string) error {
	return serveWithTransport(ctx, New(version), &mcp.StdioTransport{})
}

func serveWithTransport(ctx context.Context, s *mcp.Server, transport mcp.Transport) error {
	if s == nil {
		return errors.New("mcp server is not configured")
	}

	log.Printf("%s MCP server started", serverName)
	defer log.Printf("%s MCP server stopped", serverName)

	if err := s.Run(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "run mcp server")
	}
	return nil
}
