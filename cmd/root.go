// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/luxfi/stakecli/cmd/configcmd"
	"github.com/luxfi/stakecli/cmd/keycmd"
	"github.com/luxfi/stakecli/cmd/validatorcmd"
	"github.com/luxfi/stakecli/pkg/application"
	"github.com/luxfi/stakecli/pkg/config"
	"github.com/luxfi/stakecli/pkg/constants"
	"github.com/luxfi/stakecli/pkg/ux"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	app *application.StakeCLI
	v   *viper.Viper

	logLevel string
	Version  = "0.3.0"
	cfgFile  string
)

func NewRootCmd() *cobra.Command {
	app = application.New()
	v = viper.New()

	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "stakecli",
		Long: `stakecli prepares validator lifecycle transactions for the staking system contract.

Every command prints the receiver and data field of the transaction, and its gas
limit when --estimate-gas is given. Nonce, value, gas price and the signature are
left to the wallet that sends the transaction.

COMMAND OVERVIEW:

  validator   Prepare stake, unstake, unbond, unjail, change-reward-address and claim calls
  key         Create node keys and owner wallets
  config      Show the effective network parameters

QUICK START:

  # Create two node keys and list them in a validators file
  stakecli key create-bls ./node0.pem
  stakecli key create-bls ./node1.pem

  # Prepare the stake call for the owner wallet
  stakecli validator stake --validators-file ./validators.json --pem ./wallet.pem --estimate-gas`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stakecli/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level for the application")
	rootCmd.PersistentFlags().String(config.StakingContractKey, "", "staking system contract address")
	rootCmd.PersistentFlags().String(config.AddressHRPKey, "", "bech32 prefix of account addresses")
	_ = v.BindPFlag(config.StakingContractKey, rootCmd.PersistentFlags().Lookup(config.StakingContractKey))
	_ = v.BindPFlag(config.AddressHRPKey, rootCmd.PersistentFlags().Lookup(config.AddressHRPKey))

	// add validator command
	rootCmd.AddCommand(validatorcmd.NewCmd(app))

	// add key management command
	rootCmd.AddCommand(keycmd.NewCmd(app))

	// add config command
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := initConfig(baseDir, log); err != nil {
		return err
	}
	conf, err := config.Load(v)
	if err != nil {
		return err
	}
	app.Setup(baseDir, log, conf, afero.NewOsFs())
	app.Log.Debug("network parameters loaded",
		zap.String("stakingContract", conf.StakingContract),
		zap.String("addressHRP", conf.AddressHRP),
	)
	return nil
}

func setupEnv() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to find home directory: %w", err)
	}
	baseDir := filepath.Join(home, constants.BaseDirName)
	if err := os.MkdirAll(filepath.Join(baseDir, constants.LogDir), constants.DefaultPerms755); err != nil {
		return "", fmt.Errorf("failed creating the basedir %s: %w", baseDir, err)
	}
	return baseDir, nil
}

// setupLogging logs at --log-level to errWriter and at debug level to a file
// under the base dir.
func setupLogging(baseDir string, outWriter io.Writer, errWriter io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logFile, err := os.OpenFile(
		filepath.Join(baseDir, constants.LogDir, constants.LogFileName),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		constants.WriteReadReadPerms,
	)
	if err != nil {
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	consoleConfig := zap.NewDevelopmentEncoderConfig()
	if ux.IsTerminal(errWriter) {
		consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	consoleEncoder := zapcore.NewConsoleEncoder(consoleConfig)
	fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(errWriter), level),
		zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), zapcore.DebugLevel),
	)
	log := zap.New(core).Named("stakecli")
	// create the user facing logger as a global var
	ux.NewUserLog(log, outWriter, errWriter)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(baseDir string, log *zap.Logger) error {
	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(baseDir)
		v.SetConfigType(constants.DefaultConfigFileType)
		v.SetConfigName(constants.DefaultConfigFileName)
	}
	config.BindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		// No config file is normal, a broken or explicitly named one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	log.Debug("using config file", zap.String("config-file", v.ConfigFileUsed()))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError reports err through the user logger, falling back to stderr when
// the command failed before logging was set up.
func printError(err error) {
	if ux.Logger == nil {
		ux.NewUserLog(zap.NewNop(), os.Stdout, os.Stderr)
	}
	ux.Logger.PrintError("%s", err)
}
