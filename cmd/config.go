package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultAuditTimeoutSecs = 120
	defaultConcurrency      = 3
	defaultRateLimit        = 2
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Audit AuditRuntimeConfig
}

// AuditRuntimeConfig consolidates flag-driven settings for the audit command.
type AuditRuntimeConfig struct {
	Concurrency     int
	RateLimit       int
	TimeoutSecs     int
	Modules         string
	Format          string
	RenderJS        bool
	ProgressEnabled bool
	SaveResults     bool
}

type defaultOverrides struct {
	TimeoutSecs *int
	Concurrency *int
	RateLimit   *int
	Modules     string
	Format      string
	RenderJS    *bool
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Audit: AuditRuntimeConfig{
			Concurrency:     defaultConcurrency,
			RateLimit:       defaultRateLimit,
			TimeoutSecs:     defaultAuditTimeoutSecs,
			Modules:         "all",
			Format:          "text",
			ProgressEnabled: true,
			SaveResults:     true,
		},
	}
}

func loadDefaultOverrides() defaultOverrides {
	overrides := defaultOverrides{}

	if viper.IsSet("defaults.timeout_secs") {
		val := viper.GetInt("defaults.timeout_secs")
		overrides.TimeoutSecs = &val
	}
	if viper.IsSet("defaults.concurrency") {
		val := viper.GetInt("defaults.concurrency")
		overrides.Concurrency = &val
	}
	if viper.IsSet("defaults.rate_limit") {
		val := viper.GetInt("defaults.rate_limit")
		overrides.RateLimit = &val
	}
	if viper.IsSet("defaults.modules") {
		overrides.Modules = viper.GetString("defaults.modules")
	}
	if viper.IsSet("defaults.format") {
		overrides.Format = viper.GetString("defaults.format")
	}
	if viper.IsSet("defaults.render_js") {
		val := viper.GetBool("defaults.render_js")
		overrides.RenderJS = &val
	}

	return overrides
}

// applyConfigDefaults merges config file defaults into the runtime config when
// the user did not explicitly override the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command) {
	overrides := loadDefaultOverrides()

	if overrides.TimeoutSecs != nil {
		applyIntDefault(auditCmd.Flags(), "timeout", *overrides.TimeoutSecs, func(v int) {
			cliConfig.Audit.TimeoutSecs = v
		})
	}
	if overrides.Concurrency != nil {
		applyIntDefault(auditCmd.Flags(), "concurrency", *overrides.Concurrency, func(v int) {
			cliConfig.Audit.Concurrency = v
		})
	}
	if overrides.RateLimit != nil {
		applyIntDefault(auditCmd.Flags(), "rate", *overrides.RateLimit, func(v int) {
			cliConfig.Audit.RateLimit = v
		})
	}
	if overrides.Modules != "" {
		setStringFlagIfUnset(auditCmd.Flags(), "modules", overrides.Modules)
		if flag := auditCmd.Flags().Lookup("modules"); flag == nil || !flag.Changed {
			cliConfig.Audit.Modules = overrides.Modules
		}
	}
	if overrides.Format != "" {
		setStringFlagIfUnset(auditCmd.Flags(), "format", overrides.Format)
		if flag := auditCmd.Flags().Lookup("format"); flag == nil || !flag.Changed {
			cliConfig.Audit.Format = overrides.Format
		}
	}
	if overrides.RenderJS != nil {
		applyBoolDefault(auditCmd.Flags(), "render-js", *overrides.RenderJS, func(v bool) {
			cliConfig.Audit.RenderJS = v
		})
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func setStringFlagIfUnset(flags *pflag.FlagSet, name, value string) {
	if flags == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	_ = flag.Value.Set(value)
}
