package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MapRows is the wall grid, row-major. In YAML each row is either a string
// of digits ("40004") or a list of integers ([4, 0, 0, 0, 4]).
type MapRows [][]uint8

// UnmarshalYAML accepts both row encodings, even mixed in one map.
func (m *MapRows) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: map must be a list of rows", value.Line)
	}

	rows := make(MapRows, 0, len(value.Content))
	for i, node := range value.Content {
		switch node.Kind {
		case yaml.ScalarNode:
			row, err := parseDigits(node.Value)
			if err != nil {
				return fmt.Errorf("line %d: row %d: %w", node.Line, i, err)
			}
			rows = append(rows, row)
		case yaml.SequenceNode:
			var ints []int
			if err := node.Decode(&ints); err != nil {
				return fmt.Errorf("line %d: row %d: %w", node.Line, i, err)
			}
			row := make([]uint8, len(ints))
			for j, v := range ints {
				if v < 0 || v > 255 {
					return fmt.Errorf("line %d: row %d: cell %d value %d out of range", node.Line, i, j, v)
				}
				row[j] = uint8(v)
			}
			rows = append(rows, row)
		default:
			return fmt.Errorf("line %d: row %d must be a string or a list", node.Line, i)
		}
	}
	*m = rows
	return nil
}

// MarshalYAML writes rows as digit strings when every code is a single
// digit, and as integer lists otherwise.
func (m MapRows) MarshalYAML() (any, error) {
	for _, row := range m {
		for _, v := range row {
			if v > 9 {
				return m.ints(), nil
			}
		}
	}
	out := make([]string, len(m))
	for i, row := range m {
		var b strings.Builder
		for _, v := range row {
			b.WriteByte('0' + v)
		}
		out[i] = b.String()
	}
	return out, nil
}

func (m MapRows) ints() [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row))
		for j, v := range row {
			out[i][j] = int(v)
		}
	}
	return out
}

func parseDigits(s string) ([]uint8, error) {
	s = strings.TrimSpace(s)
	row := make([]uint8, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid cell %q at column %d", r, i)
		}
		row = append(row, uint8(r-'0'))
	}
	return row, nil
}
