// Package config provides the configuration registry, its defaults and the viper-based engine behind them.
package config

import (
	"strings"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/constant"
	"github.com/nestshade/nestshade/filesystem"
	"github.com/nestshade/nestshade/highlight"
	"github.com/nestshade/nestshade/key"
	"github.com/nestshade/nestshade/log"
	"github.com/nestshade/nestshade/policy"
	"github.com/nestshade/nestshade/region"
	"github.com/nestshade/nestshade/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes defaults, environment bindings and the config file.
func Setup() error {
	viper.SetConfigName(constant.Nestshade)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Nestshade)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// Highlight snapshots the highlighting configuration. Malformed palette entries are dropped.
func Highlight() highlight.Options {
	palette := lo.FilterMap(viper.GetStringSlice(key.HighlightColors), func(raw string, _ int) (color.Hex, bool) {
		c, err := color.Normalize(strings.TrimSpace(raw))
		if err != nil {
			log.Warnf("ignoring palette entry: %s", err)
			return "", false
		}
		return c, true
	})

	saturation := mo.None[float64]()
	if s := viper.GetFloat64(key.GenerationSaturation); s >= 0 {
		saturation = mo.Some(s)
	}

	return highlight.Options{
		Policy: policy.Options{
			Enabled: viper.GetBool(key.HighlightEnableColors),
			Palette: palette,
			Generation: policy.Generation{
				LightnessStep: viper.GetFloat64(key.GenerationLightnessStep),
				MinLightness:  viper.GetFloat64(key.GenerationMinLightness),
				MaxLightness:  viper.GetFloat64(key.GenerationMaxLightness),
				Saturation:    saturation,
			},
		},
		Priority: viper.GetInt(key.HighlightPriority),
	}
}

// Delimiters returns the region delimiters used by the previewer.
func Delimiters() region.Delimiters {
	return region.Delimiters{
		Open:  viper.GetString(key.RegionOpen),
		Close: viper.GetString(key.RegionClose),
	}
}
