package mcp

import (
	"encoding/json"
	"fmt"
)

// prompt mirrors the MCP prompt descriptor wire shape.
type prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Arguments   []promptArgument `json:"arguments,omitempty"`
}

type promptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

func promptList() []prompt {
	return []prompt{
		{
			Name:        "formalize_statement",
			Description: "Help formalize a mathematical statement in Lean",
			Arguments: []promptArgument{
				{Name: "statement", Description: "The mathematical statement to formalize", Required: true},
			},
		},
		{
			Name:        "prove_theorem",
			Description: "Guide through proving a theorem step by step",
			Arguments: []promptArgument{
				{Name: "theorem", Description: "The theorem to prove", Required: true},
				{Name: "approach", Description: "Preferred proof approach (induction, contradiction, etc.)", Required: false},
			},
		},
		{
			Name:        "debug_proof",
			Description: "Help debug a failing Lean proof",
			Arguments: []promptArgument{
				{Name: "code", Description: "The Lean code with the failing proof", Required: true},
				{Name: "error", Description: "The error message from Lean", Required: true},
			},
		},
	}
}

type promptGetParams struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments"`
}

func (s *Server) handlePromptGet(params json.RawMessage) (any, *rpcError) {
	var get promptGetParams
	if err := json.Unmarshal(params, &get); err != nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: "invalid prompt parameters"}
	}

	if get.Arguments == nil {
		get.Arguments = map[string]string{}
	}

	switch get.Name {
	case "formalize_statement":
		statement := get.Arguments["statement"]
		return promptResult(
			fmt.Sprintf("Formalize: %s", statement),
			fmt.Sprintf(`I need help formalizing this mathematical statement in Lean 4:

"%s"

Please:
1. Identify the key mathematical concepts involved
2. Suggest appropriate Lean types and definitions
3. Write the formal Lean statement
4. Explain any assumptions or simplifications made`, statement)), nil

	case "prove_theorem":
		theorem := get.Arguments["theorem"]
		approachText := ""
		if approach := get.Arguments["approach"]; approach != "" {
			approachText = fmt.Sprintf(" using %s", approach)
		}

		return promptResult(
			fmt.Sprintf("Prove: %s", theorem),
			fmt.Sprintf(`I need help proving this theorem in Lean 4%s:

%s

Please:
1. Analyze what needs to be proven
2. Identify useful lemmas from Mathlib
3. Outline the proof strategy
4. Provide the complete Lean proof with explanations
5. Suggest alternative approaches if applicable`, approachText, theorem)), nil

	case "debug_proof":
		code := get.Arguments["code"]
		errorText := get.Arguments["error"]

		return promptResult(
			"Debug Lean proof",
			fmt.Sprintf(`My Lean proof is failing with an error. Please help me fix it.

Code:
`+"```lean\n%s\n```"+`

Error:
`+"```\n%s\n```"+`

Please:
1. Explain what the error means
2. Identify the issue in the code
3. Provide a corrected version
4. Explain the fix and why it works
5. Suggest how to avoid similar errors`, code, errorText)), nil

	default:
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown prompt: %s", get.Name)}
	}
}

func promptResult(description, text string) any {
	return map[string]any{
		"description": description,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": map[string]any{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}
