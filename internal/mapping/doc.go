// Package mapping defines the column table that projects one equipment
// record onto one flat CSV row.
//
// The table is data, not code: an embedded YAML document lists every output
// column in order together with where its value comes from. The converter
// walks the table for each record, so adding or reordering a column never
// touches control flow.
//
// # Table Overview
//
//	version: "1"
//	root: ProcessEquipmentDataPrimaryScope.EquipmentList[]
//	columns:
//	  - name: EquipmentID
//	    path: EquipmentID
//	  - name: Length
//	    path: Dimensions.Length
//	    missing: falsy
//	  - name: MaintenanceHistory
//	    path: MaintenanceHistory[]
//	    transform: history
//
// # Missing values
//
// Each column declares when its value counts as missing:
//   - "null" (default): absent keys and JSON null
//   - "falsy": additionally 0, "" and false
//
// A missing value is replaced by the column default (empty unless set).
// Columns with a transform hand the raw value, absent or not, to the
// transform instead.
//
// # Path Syntax
//
// Paths are relative to a record (or to the document for root):
//   - Simple fields: "Notes"
//   - Nested fields: "Dimensions.Length"
//   - Sequences: "MaintenanceHistory[]", only as the last segment
//
// # Transform Registry
//
// Transforms are referenced by name. The registry maps a name to a function
// that renders the raw value as cell text; Validate rejects unknown names.
package mapping
