package excel

// ReaderConfig controls how source tables are read
type ReaderConfig struct {
	// SheetName selects a workbook sheet; empty means the first sheet.
	SheetName string `json:"sheet_name"`
	// Encodings is the ordered list tried when decoding csv input.
	Encodings []string `json:"encodings"`
}

// DefaultReaderConfig returns the defaults for JCR exports
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		Encodings: DefaultEncodings(),
	}
}
