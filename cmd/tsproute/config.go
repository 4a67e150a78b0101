package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindConfig layers a "tsproute.yaml" config file (if present) and
// TSPROUTE_-prefixed environment variables beneath the explicit flag set.
// Absence of a config file is not an error — it is an added convenience
// layer, not a spec-mandated feature (SPEC_FULL.md §6).
func bindConfig(flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetConfigName("tsproute")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TSPROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		bindErr = flags.Set(f.Name, v.GetString(f.Name))
	})
	return bindErr
}
