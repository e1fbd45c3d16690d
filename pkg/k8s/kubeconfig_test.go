package k8s

// cSpell: disable
import (
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
)

// cSpell: enable

func TestRewriteKubeconfig(t *testing.T) {
	input := dedent.Dedent(`
		apiVersion: v1
		clusters:
		- cluster:
		    certificate-authority-data: REDACTED
		    server: https://localhost:6443
		  name: microshift
		`)

	expected := dedent.Dedent(`
		apiVersion: v1
		clusters:
		- cluster:
		    certificate-authority-data: REDACTED
		    server: https://foo.example.com:6443
		    insecure-skip-tls-verify: true
		  name: microshift
		`)

	assert.Equal(t, expected, RewriteKubeconfig(input, "foo.example.com"))
}

func TestRewriteKubeconfigPreservesPort(t *testing.T) {
	out := RewriteKubeconfig("server: https://localhost:64443\n", "foo")
	assert.Equal(t, "server: https://foo:64443\n    insecure-skip-tls-verify: true\n", out)
}

// Every server line receives the insecure flag, including entries that were
// not pointing at localhost.
func TestRewriteKubeconfigMultipleClusters(t *testing.T) {
	input := dedent.Dedent(`
		- cluster:
		    server: https://localhost:6443
		  name: local
		- cluster:
		    server: https://other.example.com:8443
		  name: remote
		`)

	expected := dedent.Dedent(`
		- cluster:
		    server: https://foo.example.com:6443
		    insecure-skip-tls-verify: true
		  name: local
		- cluster:
		    server: https://other.example.com:8443
		    insecure-skip-tls-verify: true
		  name: remote
		`)

	assert.Equal(t, expected, RewriteKubeconfig(input, "foo.example.com"))
}

func TestRewriteKubeconfigNoServerLines(t *testing.T) {
	input := "apiVersion: v1\nkind: Config\n"
	assert.Equal(t, input, RewriteKubeconfig(input, "foo.example.com"))
}
