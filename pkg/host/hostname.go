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

// Package host wraps the operating system facilities the service mutates:
// hostname, local account passwords, credentials and network routes. Every
// external program is invoked through utils.Exec so tests can substitute a
// mock executor.
package host

// cSpell: words chpasswd hostnamectl txeh
// cSpell: disable
import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/txn2/txeh"

	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

// cSpell: enable

// HostnameStore reads and mutates the system hostname.
type HostnameStore interface {
	Current() string
	Set(name string) error
}

// SystemHostname is the HostnameStore backed by hostnamectl.
type SystemHostname struct {
	// HostsConfig overrides the hosts file location. Nil means /etc/hosts.
	HostsConfig *txeh.HostsConfig
}

// Current returns the current system hostname, or "unknown" when it cannot
// be read.
func (s *SystemHostname) Current() string {
	name, err := os.Hostname()
	if err != nil {
		log.WithError(err).Warn("Cannot read current hostname")
		return "unknown"
	}
	return name
}

// Set changes the system hostname with hostnamectl. On success the new name
// is also mapped to the default route IP address in the hosts file so it
// resolves locally; that mapping is best-effort and never fails the call.
func (s *SystemHostname) Set(name string) error {
	out, err := utils.Exec.Run(true, "hostnamectl", "set-hostname", name)
	if err != nil {
		return errors.Wrap(err, strings.TrimSpace(string(out)))
	}

	log.WithField("hostname", name).Info("Hostname updated")

	if ip := DefaultRouteIP(); ip != "" {
		if err := s.mapHost(ip, name); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"ip":       ip,
				"hostname": name,
			}).Warn("Cannot map hostname in hosts file")
		}
	}
	return nil
}

func (s *SystemHostname) mapHost(ip, name string) error {
	var hosts *txeh.Hosts
	var err error
	if s.HostsConfig != nil {
		hosts, err = txeh.NewHosts(s.HostsConfig)
	} else {
		hosts, err = txeh.NewHostsDefault()
	}
	if err != nil {
		return errors.Wrap(err, "while opening hosts file")
	}

	hosts.AddHost(ip, name)
	if err = hosts.Save(); err != nil {
		return errors.Wrap(err, "while saving hosts file")
	}
	return nil
}
