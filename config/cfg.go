package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"formc/layout"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	PageConfig struct {
		Paper        layout.Paper       `yaml:"paper" validate:"oneof=a4 a5 b5 letter"`
		Orientation  layout.Orientation `yaml:"orientation" validate:"oneof=portrait landscape"`
		Margin       int                `yaml:"margin" validate:"min=0"`
		HeaderHeight int                `yaml:"header_height" validate:"min=0"`
		FooterHeight int                `yaml:"footer_height" validate:"min=0"`
	}

	CompileConfig struct {
		OutputNameTemplate    string `yaml:"output_name_template"`
		FileNameTransliterate bool   `yaml:"file_name_transliterate"`
		Pretty                bool   `yaml:"pretty"`
		FixZip                bool   `yaml:"fix_zip"`
	}

	PreviewConfig struct {
		Format         PreviewFormat `yaml:"format" validate:"oneof=svg png"`
		Scale          float64       `yaml:"scale" validate:"gt=0,lte=4"`
		StylesheetPath string        `yaml:"stylesheet_path" sanitize:"assure_file_access"`
	}

	CatalogConfig struct {
		Path     string `yaml:"path" sanitize:"assure_file_access"`
		Encoding string `yaml:"encoding"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Page      PageConfig     `yaml:"page"`
		Compile   CompileConfig  `yaml:"compile"`
		Preview   PreviewConfig  `yaml:"preview"`
		Catalog   CatalogConfig  `yaml:"catalog"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// PageSetup converts page configuration to the page setup stamped into new
// documents.
func (c PageConfig) PageSetup() layout.PageSetup {
	return layout.PageSetup{
		Paper:        c.Paper,
		Orientation:  c.Orientation,
		Margin:       c.Margin,
		HeaderHeight: c.HeaderHeight,
		FooterHeight: c.FooterHeight,
	}
}

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
