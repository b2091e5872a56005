package main

import (
	"github.com/fatih/color"
	"github.com/nhdewitt/jwp-dispatch/internal/app"
	"github.com/nhdewitt/jwp-dispatch/internal/config"
	"github.com/nhdewitt/jwp-dispatch/internal/dispatch"
	"github.com/nhdewitt/jwp-dispatch/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	v       = viper.New()
	rootCmd = &cobra.Command{
		Use:          "httpserver",
		Short:        "Serve routed handlers and static files over raw TCP",
		SilenceUsage: true,
		RunE:         runServe,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults(v)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml if present)")
	addServerFlags(flags)

	rootCmd.AddCommand(serveCmd, routesCmd)
}

// addServerFlags defines the server flags and binds each to its config key.
func addServerFlags(flags *pflag.FlagSet) {
	flags.Int("port", 42069, "port to listen on")
	flags.String("static-dir", "./static", "directory served for unrouted paths")
	flags.Duration("read-timeout", 0, "per-connection read deadline, 0 for none")
	flags.Int("max-body-bytes", 1<<20, "largest accepted Content-Length, 0 for no limit")
	flags.Bool("strict-routes", false, "fail startup on duplicate routes")
	for key, flag := range map[string]string{
		config.KeyPort:         "port",
		config.KeyStaticDir:    "static-dir",
		config.KeyReadTimeout:  "read-timeout",
		config.KeyMaxBodyBytes: "max-body-bytes",
		config.KeyStrictRoutes: "strict-routes",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return
	}
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err == nil {
		color.New(color.FgHiBlack).Println("Using config file:", v.ConfigFileUsed())
	}
}

// buildTable registers the application controllers. Failure is fatal to
// startup.
func buildTable(cfg config.Config, users *app.Users, sessions *session.Store) (*dispatch.Table, error) {
	var opts []dispatch.Option
	if cfg.StrictRoutes {
		opts = append(opts, dispatch.WithStrictRoutes())
	}
	return dispatch.Build(app.Controllers(users, sessions), opts...)
}
