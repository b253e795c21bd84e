package types

import "errors"

// Format names a snapshot encoding.
type Format string

// Supported snapshot encodings.
const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Config validation errors.
var (
	ErrFormatUnknown  = errors.New("unknown snapshot format")
	ErrStoreNameEmpty = errors.New("store name must not be empty")
)

// knownFormats lists the encodings ParseFormat accepts.
var knownFormats = map[Format]bool{
	FormatJSON: true,
	FormatXML:  true,
}

// ParseFormat converts a format name from a flag or config file into a
// Format. It returns ErrFormatUnknown for anything it does not recognize.
func ParseFormat(name string) (Format, error) {
	f := Format(name)
	if !knownFormats[f] {
		return "", ErrFormatUnknown
	}
	return f, nil
}

// Config holds the catalog settings loaded from config.yaml.
type Config struct {
	StoreName string `json:"store_name" yaml:"store_name" mapstructure:"store_name"`
	StoreFile string `json:"store_file" yaml:"store_file" mapstructure:"store_file"`
	Format    string `json:"format" yaml:"format" mapstructure:"format"`
	LogLevel  string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.StoreName == "" {
		return ErrStoreNameEmpty
	}
	if _, err := ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
