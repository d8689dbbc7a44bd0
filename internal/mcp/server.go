// Package mcp exposes proofcheck operations as a Model Context Protocol
// tool server speaking JSON-RPC 2.0 over stdio.
//
// Requests are handled strictly sequentially: each operation runs to
// completion before the next line is read, so the server shares the CLI's
// synchronous execution model.
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/lean-forge/proofcheck/internal/cache"
	"github.com/lean-forge/proofcheck/internal/config"
	"github.com/lean-forge/proofcheck/internal/search"
	"github.com/lean-forge/proofcheck/internal/toolchain"
	"github.com/lean-forge/proofcheck/internal/translator"
	"github.com/lean-forge/proofcheck/internal/version"
)

const protocolVersion = "2024-11-05"

// Deps carries the component instances the tool handlers delegate to.
type Deps struct {
	Runner     toolchain.Runner
	Search     *search.Client
	Cache      *cache.Cache
	Translator *translator.Translator
	Config     *config.Config
}

// Server is a stdio MCP server.
type Server struct {
	deps   Deps
	logger *slog.Logger

	// maximum line size accepted on stdin; generous because tool calls can
	// carry whole LaTeX documents
	maxLineBytes int
}

// NewServer creates an MCP server over the given dependencies.
func NewServer(deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		deps:         deps,
		logger:       logger,
		maxLineBytes: 4 * 1024 * 1024,
	}
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON-RPC error codes used by the dispatcher.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// Serve reads newline-delimited JSON-RPC requests from in and writes one
// response per request to out, until EOF.
func (s *Server) Serve(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), s.maxLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.write(out, response{JSONRPC: "2.0", Error: &rpcError{Code: codeParseError, Message: "parse error"}})
			continue
		}

		resp := s.dispatch(&req)
		if resp == nil {
			// Notification, no response expected
			continue
		}

		s.write(out, *resp)
	}

	return scanner.Err()
}

func (s *Server) write(out io.Writer, resp response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("failed to marshal response", "error", err)
		return
	}

	fmt.Fprintf(out, "%s\n", data)
}

func (s *Server) dispatch(req *request) *response {
	s.logger.Debug("request", "method", req.Method)

	if req.ID == nil {
		// Notifications (e.g. notifications/initialized) are ignored
		return nil
	}

	resp := &response{JSONRPC: "2.0", ID: req.ID}

	result, rpcErr := s.handle(req)
	if rpcErr != nil {
		resp.Error = rpcErr
		return resp
	}

	resp.Result = result

	return resp
}

func (s *Server) handle(req *request) (any, *rpcError) {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(), nil
	case "ping":
		return map[string]any{}, nil
	case "tools/list":
		return map[string]any{"tools": toolList()}, nil
	case "tools/call":
		return s.handleToolCall(req.Params)
	case "resources/list":
		return map[string]any{"resources": resourceList()}, nil
	case "resources/read":
		return s.handleResourceRead(req.Params)
	case "prompts/list":
		return map[string]any{"prompts": promptList()}, nil
	case "prompts/get":
		return s.handlePromptGet(req.Params)
	default:
		return nil, &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}
}

func (s *Server) handleInitialize() any {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
			"prompts":   map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    "proofcheck",
			"version": version.Version,
		},
	}
}
