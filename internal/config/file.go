package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/retroenv/gbinspect/internal/options"
)

// File is the optional JSON configuration file. Fields that are not set keep
// their default or command line value.
type File struct {
	Format        string `json:"format,omitempty" jsonschema:"title=Format,description=Output format,enum=text,enum=json,enum=markdown"`
	Color         string `json:"color,omitempty" jsonschema:"title=Color,description=Colored output,enum=auto,enum=always,enum=never"`
	Targets       string `json:"targets,omitempty" jsonschema:"title=Targets,description=Relative jump target computation,enum=relative,enum=literal"`
	Prefix        string `json:"prefix,omitempty" jsonschema:"title=Prefix,description=Decoding of the 0xCB prefix,enum=opaque,enum=decoded"`
	NoLabels      *bool  `json:"noLabels,omitempty" jsonschema:"title=No Labels,description=Omit labels of branch destinations"`
	StopAfterJump *bool  `json:"stopAfterJump,omitempty" jsonschema:"title=Stop After Jump,description=End a path after an unconditional jump"`
	Force         *bool  `json:"force,omitempty" jsonschema:"title=Force,description=Disassemble images with an invalid header"`
	Start         *int   `json:"start,omitempty" jsonschema:"title=Start,description=Start offset of the disassembly,minimum=0"`
	Debug         *bool  `json:"debug,omitempty" jsonschema:"title=Debug,description=Enable debug logging"`
	Quiet         *bool  `json:"quiet,omitempty" jsonschema:"title=Quiet,description=Only log errors"`
}

// Load reads a JSON configuration file. Unknown fields are rejected.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("opening config file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var cfg File
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return File{}, fmt.Errorf("decoding config file '%s': %w", path, err)
	}
	return cfg, nil
}

// Apply sets all program options that are set in the file and were not
// changed on the command line. changed reports whether the named command
// line flag was set.
func (c File) Apply(opts *options.Program, changed func(name string) bool) {
	setString(&opts.Format, c.Format, changed("format"))
	setString(&opts.Color, c.Color, changed("color"))
	setString(&opts.Targets, c.Targets, changed("targets"))
	setString(&opts.Prefix, c.Prefix, changed("prefix"))
	setValue(&opts.NoLabels, c.NoLabels, changed("no-labels"))
	setValue(&opts.StopAfterJump, c.StopAfterJump, changed("stop-after-jump"))
	setValue(&opts.Force, c.Force, changed("force"))
	setValue(&opts.Start, c.Start, changed("start"))
	setValue(&opts.Debug, c.Debug, changed("debug"))
	setValue(&opts.Quiet, c.Quiet, changed("quiet"))
}

func setString(target *string, value string, changed bool) {
	if value != "" && !changed {
		*target = value
	}
}

func setValue[T any](target *T, value *T, changed bool) {
	if value != nil && !changed {
		*target = *value
	}
}

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	b, err := json.MarshalIndent(reflector.Reflect(&File{}), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return b, nil
}
