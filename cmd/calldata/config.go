package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/tos-network/glsdk/internal/debug"
	"github.com/urfave/cli/v2"
)

const configKey = "config"

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}

	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Description: `The dumpconfig command shows configuration values.`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type outputConfig struct {
	JSON  bool
	Table bool
}

type calldataConfig struct {
	Log    debug.Config
	Output outputConfig
}

var defaultConfig = calldataConfig{
	Log: debug.DefaultConfig,
}

func loadConfig(file string, cfg *calldataConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the configuration file, if any, and applies the command
// line flags on top of it.
func makeConfig(ctx *cli.Context) (*calldataConfig, error) {
	cfg := defaultConfig
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return nil, err
		}
	}
	debug.ApplyFlags(ctx, &cfg.Log)
	return &cfg, nil
}

// outputSettings returns the effective output settings for a command.
func outputSettings(ctx *cli.Context) outputConfig {
	out := defaultConfig.Output
	if cfg, ok := ctx.App.Metadata[configKey].(*calldataConfig); ok {
		out = cfg.Output
	}
	if ctx.IsSet(jsonFlag.Name) {
		out.JSON = ctx.Bool(jsonFlag.Name)
	}
	if ctx.IsSet(tableFlag.Name) {
		out.Table = ctx.Bool(tableFlag.Name)
	}
	return out
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
