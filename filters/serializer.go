package filters

import (
	"strings"

	"github.com/freeeve/sqlgroup/tree"
)

// SerializerUnicode is the final step (spec.md §6): join the in-order
// flattened token values, then rstrip each line.
type SerializerUnicode struct{}

// Process returns the serialized, line-rstripped output.
func (SerializerUnicode) Process(stmt *tree.TokenList) string {
	raw := stmt.Value()
	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}
