package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lean-forge/proofcheck/internal/console"
	"github.com/lean-forge/proofcheck/internal/project"
	"github.com/lean-forge/proofcheck/internal/search"
	"github.com/lean-forge/proofcheck/internal/toolchain"
	"github.com/lean-forge/proofcheck/internal/verify"
)

// tool mirrors the MCP tool descriptor wire shape.
type tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func toolList() []tool {
	return []tool{
		{
			Name:        "translate_latex",
			Description: "Translate LaTeX mathematical content to Lean 4 syntax",
			InputSchema: objectSchema(map[string]any{
				"latex_content": map[string]any{
					"type":        "string",
					"description": "LaTeX content to translate",
				},
			}, "latex_content"),
		},
		{
			Name:        "create_lean_project",
			Description: "Create a new Lean 4 project with Lake",
			InputSchema: objectSchema(map[string]any{
				"project_name": map[string]any{
					"type":        "string",
					"description": "Name of the new Lean project",
				},
			}, "project_name"),
		},
		{
			Name:        "check_lean_file",
			Description: "Check a Lean file for correctness by building the project",
			InputSchema: objectSchema(map[string]any{
				"file_path": map[string]any{
					"type":        "string",
					"description": "Path to the Lean file to check",
				},
			}, "file_path"),
		},
		{
			Name:        "search_mathlib",
			Description: "Search Lean Mathlib for theorems and definitions",
			InputSchema: objectSchema(map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query for Mathlib",
				},
				"use_cache": map[string]any{
					"type":        "boolean",
					"description": "Whether to use cached results",
					"default":     true,
				},
			}, "query"),
		},
		{
			Name:        "check_lean_installation",
			Description: "Check if Lean 4 and Lake are properly installed",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "cache_stats",
			Description: "Report search cache statistics",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "clear_search_cache",
			Description: "Clear cached search results, either all entries or only expired ones",
			InputSchema: objectSchema(map[string]any{
				"expired_only": map[string]any{
					"type":        "boolean",
					"description": "Delete only expired entries",
					"default":     false,
				},
			}),
		},
	}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

type toolCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// textResult wraps plain text in the MCP content envelope.
func textResult(text string) any {
	return map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	}
}

// errorResult reports a tool-level failure inside a successful RPC response,
// as the protocol expects for operational errors.
func errorResult(text string) any {
	return map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"isError": true,
	}
}

func (s *Server) handleToolCall(params json.RawMessage) (any, *rpcError) {
	var call toolCallParams
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: "invalid tool call parameters"}
	}

	if call.Arguments == nil {
		call.Arguments = map[string]any{}
	}

	switch call.Name {
	case "translate_latex":
		return s.toolTranslate(call.Arguments), nil
	case "create_lean_project":
		return s.toolCreateProject(call.Arguments), nil
	case "check_lean_file":
		return s.toolCheckFile(call.Arguments), nil
	case "search_mathlib":
		return s.toolSearch(call.Arguments), nil
	case "check_lean_installation":
		return s.toolCheckInstallation(), nil
	case "cache_stats":
		return s.toolCacheStats(), nil
	case "clear_search_cache":
		return s.toolClearCache(call.Arguments), nil
	default:
		return nil, &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("unknown tool: %s", call.Name)}
	}
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func boolArg(args map[string]any, key string, fallback bool) bool {
	v, ok := args[key].(bool)
	if !ok {
		return fallback
	}

	return v
}

func (s *Server) toolTranslate(args map[string]any) any {
	content := stringArg(args, "latex_content")
	if content == "" {
		return errorResult("Error: latex_content is required")
	}

	lean := s.deps.Translator.Translate(content)

	return textResult(fmt.Sprintf("Translation successful!\n\nLean code:\n```lean\n%s\n```", lean))
}

func (s *Server) toolCreateProject(args map[string]any) any {
	name := stringArg(args, "project_name")

	if err := project.Create(s.deps.Runner, name, s.deps.Config.Template); err != nil {
		return errorResult(fmt.Sprintf("Failed to create project %q: %v", name, err))
	}

	return textResult(fmt.Sprintf("Created Lean project '%s'.\n\nNext steps:\n1. cd %s\n2. Edit Proofs.lean\n3. Use the check_lean_file tool to verify your proofs", name, name))
}

func (s *Server) toolCheckFile(args map[string]any) any {
	path := stringArg(args, "file_path")

	if _, err := os.Stat(path); err != nil {
		return errorResult(fmt.Sprintf("Error: file not found: %s", path))
	}

	result := verify.CheckFile(s.deps.Runner, path)
	if !result.Success {
		return errorResult(result.Message)
	}

	return textResult(result.Message)
}

func (s *Server) toolSearch(args map[string]any) any {
	query := stringArg(args, "query")
	useCache := boolArg(args, "use_cache", true)

	hits, err := s.deps.Search.Search(query, useCache)
	if err != nil {
		if errors.Is(err, search.ErrInvalidQuery) {
			return errorResult(fmt.Sprintf("Error: %v", err))
		}

		return errorResult(fmt.Sprintf("Search failed for %q: %v", query, err))
	}

	var buf bytes.Buffer
	search.Render(console.NewWithWriters(&buf, &buf), hits, s.deps.Config.MaxResults)

	return textResult(fmt.Sprintf("Search completed for: %s\n\n%s", query, buf.String()))
}

func (s *Server) toolCheckInstallation() any {
	ok, msg := toolchain.CheckInstallation(s.deps.Runner)
	if !ok {
		return errorResult(msg)
	}

	return textResult(fmt.Sprintf("Lean toolchain is installed and working.\n%s", msg))
}

func (s *Server) toolCacheStats() any {
	if s.deps.Cache == nil {
		return errorResult("Search cache is unavailable.")
	}

	stats := s.deps.Cache.Stats()

	return textResult(fmt.Sprintf(
		"Cache directory: %s\nTotal entries: %d\nValid entries: %d\nExpired entries: %d\nTotal size: %d bytes\nTTL: %s",
		stats.Dir, stats.Total, stats.Valid, stats.Expired, stats.TotalBytes, stats.TTL))
}

func (s *Server) toolClearCache(args map[string]any) any {
	if s.deps.Cache == nil {
		return errorResult("Search cache is unavailable.")
	}

	if boolArg(args, "expired_only", false) {
		count := s.deps.Cache.ClearExpired()
		return textResult(fmt.Sprintf("Removed %d expired cache entries.", count))
	}

	count := s.deps.Cache.Clear()

	return textResult(fmt.Sprintf("Cleared %d cache entries.", count))
}
