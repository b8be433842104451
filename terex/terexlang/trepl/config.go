package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// CLI holds the command line flags of T.REPL.
type CLI struct {
	Trace   string          `help:"Trace level [Debug|Info|Error]." default:"Info"`
	Init    string          `help:"File with commands to execute at start."`
	Context string          `help:"YAML file with definitions to load at start."`
	Config  kong.ConfigFlag `help:"YAML configuration file for flags."`
	Input   []string        `arg:"" optional:"" help:"Expression to print at start."`
}

// defaultConfig is read if present, before any --config file.
const defaultConfig = "~/.trepl.yaml"

func parseFlags(args []string) (*CLI, error) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("trepl"),
		kong.Description("Interactive sandbox for symbolic expressions."),
		kong.UsageOnError(),
		kong.Configuration(yamlConfig, defaultConfig),
	)
	if err != nil {
		return nil, err
	}
	if _, err = parser.Parse(args); err != nil {
		return nil, err
	}
	return &cli, nil
}

// yamlConfig is a kong.ConfigurationLoader for YAML files mapping flag
// names to values, like
//
//	trace: Debug
//	context: ./physics.yaml
//
// Flag names with hyphens may be written with underscores.
func yamlConfig(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	values := make(map[string]any)
	if err = yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("malformed configuration: %w", err)
	}
	conf := make(config, len(values))
	for k, v := range values {
		switch x := v.(type) { // kong parses numbers from strings
		case uint64:
			conf[k] = strconv.FormatUint(x, 10)
		case int64:
			conf[k] = strconv.FormatInt(x, 10)
		case float64:
			conf[k] = strconv.FormatFloat(x, 'f', -1, 64)
		default:
			conf[k] = v
		}
	}
	return conf, nil
}

// config implements kong.Resolver for YAML configuration files.
type config map[string]any

// Validate implements kong.Resolver.
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements kong.Resolver.
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}
	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}
	return nil, nil
}
