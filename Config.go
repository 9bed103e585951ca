package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

const ConfigPathEnv = "CSVCEL_CONFIG"

const DefaultListenAddr = ":8080"

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

type RenderConfig struct {
	Width  int
	Colors bool
}

type ServerConfig struct {
	Listen         string
	WebhookWorkers int
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	Render RenderConfig
	Server ServerConfig
	Log    LogConfig
}

// hclConfigFile mirrors Config for decoding; pointer fields distinguish
// "absent" from a zero value so defaults survive a partial file.
type hclConfigFile struct {
	Render *hclRenderBlock `hcl:"render,block"`
	Server *hclServerBlock `hcl:"server,block"`
	Log    *hclLogBlock    `hcl:"log,block"`
}

type hclRenderBlock struct {
	Width  *int  `hcl:"width,optional"`
	Colors *bool `hcl:"colors,optional"`
}

type hclServerBlock struct {
	Listen         *string `hcl:"listen,optional"`
	WebhookWorkers *int    `hcl:"webhook_workers,optional"`
}

type hclLogBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{Width: DefaultColumnWidth, Colors: true},
		Server: ServerConfig{Listen: DefaultListenAddr, WebhookWorkers: DefaultWebhookWorkersCount},
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// LoadConfig reads an HCL config file. An empty path falls back to the
// CSVCEL_CONFIG environment variable; if that is empty too, the built-in
// defaults are returned as-is. Files may reference the `defaults` object,
// e.g. `width = defaults.width`.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}

	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var parsed hclConfigFile
	diags = gohcl.DecodeBody(hclFile.Body, defaultsEvalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	mergeConfigFile(config, &parsed)
	return config, nil
}

func defaultsEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"width":           cty.NumberIntVal(DefaultColumnWidth),
				"colors":          cty.BoolVal(true),
				"listen":          cty.StringVal(DefaultListenAddr),
				"webhook_workers": cty.NumberIntVal(DefaultWebhookWorkersCount),
				"level":           cty.StringVal(DefaultLogLevel),
				"format":          cty.StringVal(DefaultLogFormat),
			}),
		},
	}
}

func mergeConfigFile(config *Config, parsed *hclConfigFile) {
	if parsed.Render != nil {
		if parsed.Render.Width != nil {
			config.Render.Width = *parsed.Render.Width
		}
		if parsed.Render.Colors != nil {
			config.Render.Colors = *parsed.Render.Colors
		}
	}

	if parsed.Server != nil {
		if parsed.Server.Listen != nil {
			config.Server.Listen = *parsed.Server.Listen
		}
		if parsed.Server.WebhookWorkers != nil {
			config.Server.WebhookWorkers = *parsed.Server.WebhookWorkers
		}
	}

	if parsed.Log != nil {
		if parsed.Log.Level != nil {
			config.Log.Level = *parsed.Log.Level
		}
		if parsed.Log.Format != nil {
			config.Log.Format = *parsed.Log.Format
		}
	}
}
