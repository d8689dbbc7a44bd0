package mcp

import (
	"encoding/json"
	"fmt"
)

const leanExamples = `-- Example 1: Basic arithmetic
theorem add_zero (n : Nat) : n + 0 = n := by
  rfl

theorem zero_add (n : Nat) : 0 + n = n := by
  induction n with
  | zero => rfl
  | succ n ih => simp [Nat.succ_eq_add_one, ih]

-- Example 2: List operations
def reverse {α : Type} : List α → List α
  | [] => []
  | x :: xs => reverse xs ++ [x]

theorem reverse_reverse {α : Type} (xs : List α) :
  reverse (reverse xs) = xs := by
  induction xs with
  | nil => rfl
  | cons x xs ih => sorry -- Exercise for the reader`

const leanTemplates = `-- Template for induction proof
theorem my_theorem (n : Nat) : P n := by
  induction n with
  | zero =>
    -- Base case
    sorry
  | succ n ih =>
    -- Inductive step
    -- ih : P n
    -- Goal: P (n + 1)
    sorry

-- Template for equality proof
theorem equality_proof (x y : α) (h : x = y) : f x = f y := by
  rw [h]

-- Template for contradiction proof
theorem by_contradiction (p : Prop) : p := by
  by_contra h
  -- h : ¬p
  -- Goal: False
  sorry`

// resource mirrors the MCP resource descriptor wire shape.
type resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mimeType"`
}

func resourceList() []resource {
	return []resource{
		{
			URI:         "lean://examples",
			Name:        "Example Lean Files",
			Description: "Collection of example Lean proofs and definitions",
			MIMEType:    "text/plain",
		},
		{
			URI:         "lean://templates",
			Name:        "Lean Templates",
			Description: "Template files for common proof patterns",
			MIMEType:    "text/plain",
		},
	}
}

type resourceReadParams struct {
	URI string `json:"uri"`
}

func (s *Server) handleResourceRead(params json.RawMessage) (any, *rpcError) {
	var read resourceReadParams
	if err := json.Unmarshal(params, &read); err != nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: "invalid resource read parameters"}
	}

	var text string
	switch read.URI {
	case "lean://examples":
		text = leanExamples
	case "lean://templates":
		text = leanTemplates
	default:
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown resource: %s", read.URI)}
	}

	return map[string]any{
		"contents": []map[string]any{
			{
				"uri":      read.URI,
				"mimeType": "text/plain",
				"text":     text,
			},
		},
	}, nil
}
