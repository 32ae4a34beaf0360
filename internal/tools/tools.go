package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tolmachov/tgcompose/internal/styling"
	"github.com/tolmachov/tgcompose/internal/tgclient"
)

// Handler defines the interface for MCP tool handlers
type Handler interface {
	Tool() mcp.Tool
	Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// RegisterTools registers all handlers with the MCP server
func RegisterTools(s *server.MCPServer, handlers []Handler) {
	for _, h := range handlers {
		s.AddTool(h.Tool(), h.Handle)
	}
}

// chatOption is the shared definition of the "chat" argument.
func chatOption(desc string) mcp.ToolOption {
	return mcp.WithString("chat",
		mcp.Description(desc+" Accepts a numeric chat ID, a public @username, or \"me\" for Saved Messages."),
		mcp.Required(),
	)
}

// parseModeOption is the shared definition of the "parse_mode" argument.
func parseModeOption() mcp.ToolOption {
	return mcp.WithString("parse_mode",
		mcp.Description("Text styling dialect: \"combined\" (Markdown and HTML together, default), \"markdown\", \"html\", or \"none\""),
	)
}

// resolveChat resolves the "chat" argument to an input peer. The second
// return value is a ready error result when resolution fails.
func resolveChat(ctx context.Context, client *tg.Client, request mcp.CallToolRequest) (tg.InputPeerClass, *mcp.CallToolResult) {
	ident := mcp.ParseString(request, "chat", "")
	if ident == "" {
		return nil, mcp.NewToolResultError("chat is required")
	}
	peer, err := tgclient.ResolvePeerText(ctx, client, ident)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("Failed to resolve chat %q: %v", ident, err))
	}
	return peer, nil
}

// requestMode reads the optional "parse_mode" argument.
func requestMode(request mcp.CallToolRequest) (styling.Mode, *mcp.CallToolResult) {
	mode, err := styling.ParseMode(mcp.ParseString(request, "parse_mode", ""))
	if err != nil {
		return 0, mcp.NewToolResultError(err.Error())
	}
	return mode, nil
}

// jsonResult marshals v as an indented JSON tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// truncateRunes truncates string to n runes without allocating a full []rune slice.
// If the string is longer than n runes, it returns the first n runes followed by "...".
func truncateRunes(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j] + "..."
		}
		i++
	}
	return s
}
