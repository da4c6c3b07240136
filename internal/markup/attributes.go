package markup

import (
	"regexp"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// attrPattern matches one attribute token: an identifier, optionally
// followed by = and a single- or double-quoted value.
var attrPattern = regexp.MustCompile(`([a-zA-Z0-9_-]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'))?`)

// ExtractAttributes tokenises the interior of an opening tag into an
// ordered attribute collection. A bare identifier maps to the empty
// string; a repeated key keeps its first position and takes its last
// value. It never fails - anything that is not an attribute token is
// passed over.
func ExtractAttributes(interior string) domain.Attributes {
	var attrs domain.Attributes
	for _, m := range attrPattern.FindAllStringSubmatch(interior, -1) {
		value := m[2]
		if value == "" {
			value = m[3]
		}
		attrs.Set(m[1], value)
	}
	return attrs
}
