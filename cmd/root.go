package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	log "github.com/harlequix/hamming84/log"
)

type app struct {
	v          *viper.Viper
	configFile string
	config     Config
	logger     *log.Logger
}

// NewRootCmd builds the hamming84 command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	rootCmd := &cobra.Command{
		Use:   "hamming84",
		Short: "Extended Hamming(8,4) encoder and decoder",
		Long: `hamming84 encodes 4 data bits into an 8-bit codeword with three positional
parity bits and one overall parity bit. Decoding corrects any single flipped
bit and detects any two flipped bits.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("log-file", "", "mirror warnings and traces to <path>.warn and <path>.trace")
	_ = a.v.BindPFlag("LogLevel", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("LogFormat", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("LogFile", flags.Lookup("log-file"))

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newCheckCmd(a),
		newDemoCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := SetConfig(a.v, a.configFile); err != nil {
		return err
	}
	config, err := LoadConfig(a.v)
	if err != nil {
		return err
	}
	a.config = config

	if err := log.SetLevel(config.LogLevel); err != nil {
		return err
	}
	if err := log.SetFormat(config.LogFormat); err != nil {
		return err
	}
	if config.LogFile != "" {
		log.AddTracer(config.LogFile)
	}
	a.logger = log.NewLogger(cmd.Name())
	a.logger.WithField("config", a.v.ConfigFileUsed()).Debug("configured")
	return nil
}
