package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set via ldflags at build time.
var Version = "dev"

// cli holds what the subcommands share: configuration and the logger built from it.
type cli struct {
	v   *viper.Viper
	log zerolog.Logger

	cfgFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New(), log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "vrf",
		Short: "secp256k1 verifiable random function",
		Long: `vrf proves and verifies ECVRF outputs over secp256k1.

Use 'vrf keygen' to create a secret key.
Use 'vrf prove' to prove an input, as an ordinary or a contract proof.
Use 'vrf verify' to check a proof produced by 'vrf prove --format cbor'.
Use 'vrf demo' to combine the outputs of a quorum of key share holders.

Configuration is read from --config, then $HOME/.vrf/config.yaml or ./config.yaml.
Environment variables with the VRF_ prefix override the file.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default: $HOME/.vrf/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Int("workers", 0, "worker goroutines for threshold proving (0 = number of CPUs)")

	if err := c.v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(fmt.Sprintf("failed to bind log-level flag: %v", err))
	}
	if err := c.v.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers")); err != nil {
		panic(fmt.Sprintf("failed to bind workers flag: %v", err))
	}

	rootCmd.AddCommand(
		newKeygenCmd(c),
		newProveCmd(c),
		newVerifyCmd(c),
		newDemoCmd(c),
	)
	return rootCmd
}

func (c *cli) initConfig(cmd *cobra.Command) error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		c.v.AddConfigPath("$HOME/.vrf")
		c.v.AddConfigPath(".")
		c.v.SetConfigName("config")
		c.v.SetConfigType("yaml")
	}
	if err := c.v.ReadInConfig(); err != nil {
		// an explicit file must exist, the default locations are optional
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || c.cfgFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	c.v.SetEnvPrefix("VRF")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	c.v.AutomaticEnv()

	level, err := zerolog.ParseLevel(c.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	c.log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = cmd.ErrOrStderr()
	})).Level(level).With().Timestamp().Str("command", cmd.Name()).Logger()
	if used := c.v.ConfigFileUsed(); used != "" {
		c.log.Debug().Str("file", used).Msg("using config file")
	}
	return nil
}
