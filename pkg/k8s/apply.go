package k8s

// cSpell: disable
import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

// cSpell: enable

// Applier applies a serialized manifest to the cluster.
type Applier interface {
	Apply(manifest string) (string, error)
}

// KubectlApplier shells out to kubectl with a request-scoped temporary
// manifest file.
type KubectlApplier struct {
	// Dir is the directory for temporary manifest files. Empty means the
	// system temporary directory.
	Dir string
}

// Apply writes manifest to a temporary file, runs kubectl apply against it
// and returns the kubectl output. The temporary file is removed in all
// outcomes; removal failures are logged and swallowed.
func (a *KubectlApplier) Apply(manifest string) (string, error) {
	dir := a.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	file := filepath.Join(dir, fmt.Sprintf("jumpstarter-%s.yaml", uuid.NewString()))

	if err := utils.FS.WriteFile(file, []byte(manifest), 0o600); err != nil {
		return "", errors.Wrapf(err, "while writing manifest to %s", file)
	}
	defer func() {
		if err := utils.FS.Remove(file); err != nil {
			log.WithError(err).WithField("file", file).Debug("Cannot remove manifest file")
		}
	}()

	out, err := utils.Exec.Run(true, "kubectl", "apply", "-f", file)
	if err != nil {
		return "", errors.Wrap(err, strings.TrimSpace(string(out)))
	}

	result := strings.TrimSpace(string(out))
	log.WithField("output", result).Info("Manifest applied")
	return result, nil
}
