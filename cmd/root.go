/*
Copyright © 2025 The Jumpstarter Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

// cSpell: words godotenv kubeconfig
// cSpell: disable
import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evakhoni/jumpstarter-controller/pkg/config"
	"github.com/evakhoni/jumpstarter-controller/pkg/server"
)

// cSpell: enable

// EnvFile is loaded into the environment before viper runs, when present.
const EnvFile = "/etc/jumpstarter/config.env"

var (
	cfgFile       string
	v             string
	jsonLogs      bool
	serviceConfig = &config.ServiceConfig{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jumpstarter-config",
	Short: "Jumpstarter appliance configuration UI",
	Long: `Serves the Jumpstarter configuration web UI.
Lets an operator set the appliance hostname, apply the Jumpstarter custom
resource and download the MicroShift kubeconfig.`,
	Example: `> jumpstarter-config --port 8080`,
	Version: "v0.2.1", // <---VERSION--->
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := SetUpLogs(os.Stderr, v, jsonLogs); err != nil {
			return err
		}
		config.ServePersistentPreRun(cmd, args)
		return nil
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/jumpstarter/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&v, "verbosity", "v", logrus.InfoLevel.String(), "Log level (debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Log messages in JSON")

	config.ConfigureServiceCommand(rootCmd.Flags(), serviceConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if _, err := os.Stat(EnvFile); err == nil {
		if err := godotenv.Load(EnvFile); err != nil {
			fmt.Fprintln(os.Stderr, "Cannot load env file:", err)
		}
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("/etc/jumpstarter")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvPrefix("jumpstarter")
	// The container contract names the listening port variable PORT.
	_ = viper.BindEnv(config.Port, "JUMPSTARTER_PORT", "PORT")

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func serve() error {
	if err := config.DecodeServiceConfig(serviceConfig); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(serviceConfig).Run(ctx)
}

func SetUpLogs(out io.Writer, level string, json bool) error {
	logrus.SetOutput(out)
	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logrus.SetLevel(lvl)
	return nil
}
