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
package config

// cSpell: disable
import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/evakhoni/jumpstarter-controller/pkg/k8s"
)

// cSpell: enable

const DefaultPort = 8080

// ServiceConfig holds the runtime configuration of the service. Values come
// from flags, environment variables (JUMPSTARTER_ prefix plus the plain PORT
// variable) and an optional config file, merged through viper.
type ServiceConfig struct {
	// Port is the HTTP listening port.
	Port int `mapstructure:"port"`
	// KubeconfigPath is the kubeconfig file served for download.
	KubeconfigPath string `mapstructure:"kubeconfig_path"`
	// Auth requires HTTP basic authentication against local OS accounts.
	Auth bool `mapstructure:"auth"`
	// RootPassword enables the root password field of the configuration
	// form and the password step of the configuration flow.
	RootPassword bool `mapstructure:"root_password"`
	// HostsFile overrides the hosts file updated on hostname changes.
	// Empty means /etc/hosts.
	HostsFile string `mapstructure:"hosts_file"`
}

func SetDefaults_ServiceConfig(config *ServiceConfig) {
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	if config.KubeconfigPath == "" {
		config.KubeconfigPath = k8s.DefaultKubeconfigPath
	}
}

// ConfigureServiceCommand registers the service flags on flagSet.
func ConfigureServiceCommand(flagSet *flag.FlagSet, config *ServiceConfig) {
	SetDefaults_ServiceConfig(config)

	flagSet.IntVarP(&config.Port, "port", "p", config.Port, "HTTP listening port")
	flagSet.StringVar(&config.KubeconfigPath, "kubeconfig", config.KubeconfigPath, "Kubeconfig file served for download")
	flagSet.BoolVar(&config.Auth, "auth", config.Auth, "Require basic authentication against OS accounts")
	flagSet.BoolVar(&config.RootPassword, "root-password", config.RootPassword, "Enable root password configuration")
	flagSet.StringVar(&config.HostsFile, "hosts-file", config.HostsFile, "Hosts file updated on hostname changes (default /etc/hosts)")
}

func ServePersistentPreRun(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	_ = viper.BindPFlag(Port, flags.Lookup("port"))
	_ = viper.BindPFlag(KubeconfigPath, flags.Lookup("kubeconfig"))
	_ = viper.BindPFlag(Auth, flags.Lookup("auth"))
	_ = viper.BindPFlag(RootPassword, flags.Lookup("root-password"))
	_ = viper.BindPFlag(HostsFile, flags.Lookup("hosts-file"))
}

// DecodeServiceConfig decodes the configuration from the viper settings.
// This allows providing configuration values as environment variables.
func DecodeServiceConfig(config *ServiceConfig) error {
	// Cannot use Unmarshal. Look here: https://github.com/spf13/viper/issues/368
	decoderConfig := mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           config,
		Metadata:         nil,
	}

	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return errors.Wrap(err, "While creating decoder")
	}

	if err := decoder.Decode(viper.AllSettings()["service"]); err != nil {
		return errors.Wrap(err, "While decoding service settings")
	}
	return nil
}
