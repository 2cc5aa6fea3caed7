package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of prog to w.
func FprintJSON(w io.Writer, prog *Program) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(programJSON(prog))
}

func programJSON(prog *Program) interface{} {
	locals := make([]interface{}, len(prog.Locals))
	for i, name := range prog.Locals {
		locals[i] = map[string]interface{}{
			"name":   name,
			"offset": (i + 1) * SlotSize,
		}
	}
	return map[string]interface{}{
		"type":   "Program",
		"locals": locals,
		"stmts":  mapSlice(prog.Stmts, func(x Expr) interface{} { return toJSON(x) }),
	}
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *NumberLit:
		return map[string]interface{}{
			"type":  "NumberLit",
			"pos":   n.pos.Offset(),
			"value": n.Value,
		}

	case *Variable:
		return map[string]interface{}{
			"type":   "Variable",
			"pos":    n.pos.Offset(),
			"name":   n.Name,
			"offset": n.Offset,
		}

	case *BinaryExpr:
		return map[string]interface{}{
			"type": "BinaryOp",
			"pos":  n.pos.Offset(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
