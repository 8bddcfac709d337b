package match

import "strings"

// NormalizeIdent normalizes an identifier for fuzzy matching:
// case-folds to lower and strips separators (_, -, spaces).
// Examples:
//   - "EquipmentID" -> "equipmentid"
//   - "equipment_id" -> "equipmentid"
//   - "Equipment List" -> "equipmentlist"
func NormalizeIdent(s string) string {
	return stripSeparators(strings.ToLower(s))
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
