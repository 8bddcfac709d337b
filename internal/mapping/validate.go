package mapping

import (
	"fmt"

	"equipment-csv/internal/diagnostic"
	"equipment-csv/internal/match"
)

const transformSuggestMinScore = 0.6

// Validate checks a table against the transform registry.
// This is a structural validation step only; the shape of input documents
// is checked while converting.
func Validate(t *Table, registry *TransformRegistry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("table_is_nil", "column table is nil", "", "")
		return res
	}

	if t.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported table version %q, expected %q", t.Version, CurrentVersion), "", "")
	}

	validateRoot(t.Root, res)

	if len(t.Columns) == 0 {
		res.AddError("no_columns", "column table defines no columns", "", "")
	}

	seen := map[string]struct{}{}

	for i := range t.Columns {
		validateColumn(&t.Columns[i], registry, seen, res)
	}

	return res
}

func validateRoot(root string, res *diagnostic.Diagnostics) {
	fp, err := ParsePath(root)
	if err != nil {
		res.AddError("invalid_root", err.Error(), "", root)
		return
	}

	if !fp.IsSliceLeaf() {
		res.AddError("root_not_sequence", "root path must end with a sequence segment \"[]\"", "", root)
	}

	if fp.HasInnerSlice() {
		res.AddError("nested_sequence", "only the last path segment may be a sequence", "", root)
	}
}

func validateColumn(col *Column, registry *TransformRegistry, seen map[string]struct{}, res *diagnostic.Diagnostics) {
	if col.Name == "" {
		res.AddError("empty_column_name", "column name is empty", "", col.Path)
	} else if _, ok := seen[col.Name]; ok {
		res.AddError("duplicate_column", fmt.Sprintf("duplicate column %q", col.Name), col.Name, col.Path)
	} else {
		seen[col.Name] = struct{}{}
	}

	if !col.Missing.IsValid() {
		res.AddError("invalid_missing_policy", fmt.Sprintf("unknown missing policy %q", col.Missing), col.Name, col.Path)
	}

	fp, err := ParsePath(col.Path)
	if err != nil {
		res.AddError("invalid_path", err.Error(), col.Name, col.Path)
		return
	}

	if fp.HasInnerSlice() {
		res.AddError("nested_sequence", "only the last path segment may be a sequence", col.Name, col.Path)
	}

	if col.Transform == "" {
		if fp.IsSliceLeaf() {
			res.AddError("sequence_without_transform", "a sequence column needs a transform", col.Name, col.Path)
		}

		return
	}

	if registry == nil || !registry.Has(col.Transform) {
		var suggestions []string
		if registry != nil {
			suggestions = match.Suggest(col.Transform, registry.Names(), transformSuggestMinScore)
		}

		res.AddError("unknown_transform",
			fmt.Sprintf("transform %q is not registered", col.Transform), col.Name, col.Path, suggestions...)

		return
	}

	if col.Default != "" {
		res.AddWarning("unused_default", "default is ignored when a transform is set", col.Name, col.Path)
	}
}
