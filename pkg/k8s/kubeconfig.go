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

// Package k8s talks to the MicroShift cluster: it applies the Jumpstarter
// manifest through kubectl and rewrites the admin kubeconfig for download.
package k8s

import (
	"regexp"
)

// DefaultKubeconfigPath is where MicroShift writes the admin kubeconfig.
const DefaultKubeconfigPath = "/var/lib/microshift/resources/kubeadmin/kubeconfig"

var (
	localhostServer = regexp.MustCompile(`server: https://localhost:(\d+)`)
	anyServer       = regexp.MustCompile(`(server: https://[^\n]+)`)
)

// RewriteKubeconfig points the localhost server entries of a kubeconfig
// document at hostname, keeping the port, and flags every cluster entry to
// skip TLS verification since the serving certificate does not cover the new
// name. The rewrite is textual on purpose: the document is only served for
// download and never written back to disk.
func RewriteKubeconfig(content, hostname string) string {
	content = localhostServer.ReplaceAllString(content, "server: https://"+hostname+":$1")
	content = anyServer.ReplaceAllString(content, "$1\n    insecure-skip-tls-verify: true")
	return content
}
