package soroban

import (
	"regexp"
	"strings"

	"github.com/trebuchet-org/sorokit/internal/domain"
)

// GenericType is a parsed type expression such as Map<Symbol,Vec<U32>>
type GenericType struct {
	BaseType   string
	Parameters []string
}

var genericTypeRegex = regexp.MustCompile(`^\s*(\w+)\s*<(.*)>\s*$`)

// ParseGenericType splits a generic type expression into its base name and
// top-level parameters. ok is false for non-generic names.
func ParseGenericType(typeString string) (GenericType, bool, error) {
	if !strings.Contains(typeString, "<") && !strings.Contains(typeString, ">") {
		return GenericType{}, false, nil
	}

	matches := genericTypeRegex.FindStringSubmatch(typeString)
	if matches == nil {
		return GenericType{}, false, domain.NewCodecError(domain.ErrValidation, typeString, "",
			"malformed generic type expression")
	}

	params, err := splitTopLevel(matches[2])
	if err != nil {
		return GenericType{}, false, domain.NewCodecError(domain.ErrValidation, typeString, "", "%s", err.Error())
	}

	return GenericType{BaseType: matches[1], Parameters: params}, true, nil
}

type splitError string

func (e splitError) Error() string { return string(e) }

// splitTopLevel splits on commas at bracket depth zero
func splitTopLevel(inner string) ([]string, error) {
	var (
		params []string
		depth  int
		start  int
	)
	for i, r := range inner {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, splitError("unbalanced '>'")
			}
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, splitError("unbalanced '<'")
	}
	params = append(params, strings.TrimSpace(inner[start:]))

	for _, p := range params {
		if p == "" {
			return nil, splitError("empty type parameter")
		}
	}
	return params, nil
}

// isGenericBase reports whether the base name is handled by the container codec
func isGenericBase(base string) bool {
	switch base {
	case "Vec", "Map", "Option", "Result", "Tuple", "BytesN":
		return true
	}
	return false
}
