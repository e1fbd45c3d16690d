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
package host

// cSpell: words iface
// cSpell: disable
import (
	"strings"

	"github.com/bitfield/script"
	log "github.com/sirupsen/logrus"

	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

// cSpell: enable

// FallbackDomain is suggested when no default route can be discovered.
const FallbackDomain = "jumpstarter.local"

// DefaultRouteIP returns the first IPv4 address of the interface carrying
// the default route. It returns the empty string when there is no default
// route, the address query fails, or the output cannot be parsed.
func DefaultRouteIP() string {
	out, err := utils.Exec.Run(false, "ip", "route", "show", "default")
	if err != nil {
		log.WithError(err).Debug("Cannot query default route")
		return ""
	}

	// "default via 192.168.1.1 dev eth0 proto dhcp ..."
	route, err := script.Echo(string(out)).First(1).String()
	if err != nil {
		log.WithError(err).Debug("Cannot read default route output")
		return ""
	}

	iface := ""
	fields := strings.Fields(route)
	for i, field := range fields {
		if field == "dev" && i+1 < len(fields) {
			iface = fields[i+1]
			break
		}
	}
	if iface == "" {
		log.WithField("route", route).Debug("No device in default route")
		return ""
	}

	out, err = utils.Exec.Run(false, "ip", "-4", "addr", "show", iface)
	if err != nil {
		log.WithError(err).WithField("iface", iface).Debug("Cannot query interface address")
		return ""
	}

	// "    inet 192.168.1.10/24 brd ..."
	address, err := script.Echo(string(out)).Match("inet ").Column(2).First(1).String()
	if err != nil {
		log.WithError(err).WithField("iface", iface).Debug("Cannot parse interface address")
		return ""
	}

	ip, _, _ := strings.Cut(strings.TrimSpace(address), "/")
	return ip
}

// SuggestedDomain returns a wildcard DNS name embedding the default route IP
// address, suitable as a default base domain. 192.168.1.10 becomes
// jumpstarter.192-168-1-10.nip.io. Falls back to FallbackDomain when the
// address cannot be discovered.
func SuggestedDomain() string {
	ip := DefaultRouteIP()
	if ip == "" {
		return FallbackDomain
	}
	return "jumpstarter." + strings.ReplaceAll(ip, ".", "-") + ".nip.io"
}
