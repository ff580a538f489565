// Package config loads the host-side attributes of a numeric field from a
// TOML or YAML file and resolves them into a [numfmt.Config].
//
// Resolution order, later steps overriding earlier ones:
//
//  1. locale defaults (package locale), or the invariant defaults when no
//     locale is given
//  2. the style name/ID or format code (package styles)
//  3. explicit attributes (separators, digit limits, currency pattern,
//     show_currency_symbol)
//  4. override_currency_symbol, of which only the first character is used
//
// The result is validated before it is returned.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/TsubasaBE/go-numedit/locale"
	"github.com/TsubasaBE/go-numedit/numfmt"
	"github.com/TsubasaBE/go-numedit/styles"
)

// Format represents the attribute file format.
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota
	// FormatYAML represents YAML format
	FormatYAML
	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned for a file extension that is neither TOML nor
// YAML.
var ErrUnknownFormat = errors.New("config: unknown attribute file format")

// Attributes are the field settings a host loads from its resource files.
// Pointer fields distinguish "not set" from the zero value.
type Attributes struct {
	Locale string `toml:"locale" yaml:"locale"`
	// Style is a style name ("decimal", "currency") or a built-in style ID.
	Style string `toml:"style" yaml:"style"`
	// FormatCode is a spreadsheet-style format code, e.g. "#,##0.00 [$€-407]".
	// It takes precedence over Style.
	FormatCode string `toml:"format_code" yaml:"format_code"`

	DecimalSeparator  string `toml:"decimal_separator" yaml:"decimal_separator"`
	GroupingSeparator string `toml:"grouping_separator" yaml:"grouping_separator"`

	MaxDigitsBeforeDecimal *int `toml:"max_digits_before_decimal" yaml:"max_digits_before_decimal"`
	MaxDigitsAfterDecimal  *int `toml:"max_digits_after_decimal" yaml:"max_digits_after_decimal"`

	ShowCurrencySymbol     *bool  `toml:"show_currency_symbol" yaml:"show_currency_symbol"`
	OverrideCurrencySymbol string `toml:"override_currency_symbol" yaml:"override_currency_symbol"`
	CurrencyPattern        string `toml:"currency_pattern" yaml:"currency_pattern"`

	// DefaultValue, when set, is what the field shows initially and after
	// Clear.
	DefaultValue *float64 `toml:"default_value" yaml:"default_value"`
}

// Load reads attributes from path, choosing the decoder by extension:
// .toml, or .yaml / .yml.
func Load(path string) (*Attributes, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config: attribute file not found: %s", path)
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	attrs, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return attrs, nil
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Decode parses attribute data in the given format.  Unknown keys are an
// error so that a misspelled attribute does not silently fall back to its
// default.
func Decode(data []byte, format Format) (*Attributes, error) {
	var a Attributes
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &a)
		if err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown attributes: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return &a, nil
}

// Resolve turns the attributes into a validated formatting configuration.
func (a Attributes) Resolve() (numfmt.Config, error) {
	cfg := numfmt.DefaultConfig()
	if a.Locale != "" {
		var err error
		if cfg, err = locale.ResolveString(a.Locale); err != nil {
			return numfmt.Config{}, fmt.Errorf("config: %w", err)
		}
	}

	code, err := a.formatCode()
	if err != nil {
		return numfmt.Config{}, err
	}
	if code != "" {
		if cfg, err = styles.ApplyFormatCode(code, cfg); err != nil {
			return numfmt.Config{}, fmt.Errorf("config: %w", err)
		}
	}

	if a.DecimalSeparator != "" {
		cfg.DecimalSeparator = a.DecimalSeparator
	}
	if a.GroupingSeparator != "" {
		cfg.GroupingSeparator = a.GroupingSeparator
	}
	if a.MaxDigitsBeforeDecimal != nil {
		cfg.MaxDigitsBeforeDecimal = *a.MaxDigitsBeforeDecimal
	}
	if a.MaxDigitsAfterDecimal != nil {
		cfg.MaxDigitsAfterDecimal = *a.MaxDigitsAfterDecimal
	}
	if a.ShowCurrencySymbol != nil {
		cfg.ShowCurrencySymbol = *a.ShowCurrencySymbol
	}
	if a.CurrencyPattern != "" {
		p, err := numfmt.ParseCurrencyPattern(a.CurrencyPattern)
		if err != nil {
			return numfmt.Config{}, fmt.Errorf("config: %w", err)
		}
		cfg.CurrencyPattern = p
	}
	if a.OverrideCurrencySymbol != "" {
		r, _ := utf8.DecodeRuneInString(a.OverrideCurrencySymbol)
		cfg.CurrencySymbol = string(r)
	}

	if err := cfg.Validate(); err != nil {
		return numfmt.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// formatCode picks the format code from FormatCode or Style.
func (a Attributes) formatCode() (string, error) {
	if a.FormatCode != "" {
		return a.FormatCode, nil
	}
	if a.Style == "" {
		return "", nil
	}
	var (
		code string
		err  error
	)
	if id, convErr := strconv.Atoi(a.Style); convErr == nil {
		code, err = styles.Lookup(id)
	} else {
		code, err = styles.LookupName(a.Style)
	}
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return code, nil
}
