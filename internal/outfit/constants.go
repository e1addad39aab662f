package outfit

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the name of the outfits configuration file
	ConfigFileName = "outfits.json"

	// SchemaPath is the JSON schema the config file is validated against
	SchemaPath = "configs/schemas/outfits.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read outfits config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse outfits config: %w"
	ErrMsgSchemaInvalid        = "outfits config failed schema validation: %w"
)

// Format strings used with fmt.Errorf for validation errors
const (
	ErrFmtOutfitAtIndexEmpty  = "%w: outfit at index %d has empty name"
	ErrFmtOutfitEmptyCategory = "%w: outfit '%s' has empty category"
	ErrFmtOutfitNegativeCost  = "%w: outfit '%s' has negative base_cost"
	ErrFmtOutfitNegativeAttr  = "%w: outfit '%s' has negative attribute '%s'"
	ErrFmtOutfitDuplicate     = "%w: '%s'"
	ErrFmtOutfitLookupFailed  = "%w: '%s'"
)

// ==================== Log Messages ====================

const (
	LogMsgRegistryLoaded = "Outfit registry loaded"
)
