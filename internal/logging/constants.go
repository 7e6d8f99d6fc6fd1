package logging

// Field names shared by every component so that log output can be filtered
// consistently (for example `jq 'select(.document_kind=="receipt")'`).
const (
	FieldFile         = "file_path"
	FieldParser       = "parser"
	FieldDocumentKind = "document_kind"
	FieldDocumentHash = "document_hash"
	FieldDocumentID   = "document_id"
	FieldLine         = "line"
	FieldGrammar      = "grammar"
	FieldProduct      = "product"
	FieldCategory     = "category"
	FieldSubcategory  = "subcategory"
	FieldKeyword      = "keyword"
	FieldStrategy     = "strategy"
	FieldReason       = "reason"
	FieldOperation    = "operation"
	FieldStatus       = "status"
	FieldError        = "error"
	FieldDuration     = "duration_ms"
	FieldCount        = "count"
	FieldRunID        = "run_id"
	FieldVersion      = "taxonomy_version"
	FieldDelimiter    = "delimiter"
	FieldInputFile    = "input_file"
	FieldOutputFile   = "output_file"
)
