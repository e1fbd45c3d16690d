package host

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

// PasswordStore sets local account passwords.
type PasswordStore interface {
	SetRootPassword(password string) error
}

// ChpasswdStore is the PasswordStore backed by the chpasswd batch utility.
type ChpasswdStore struct {
}

// SetRootPassword pipes "root:<password>" to chpasswd.
func (c *ChpasswdStore) SetRootPassword(password string) error {
	stdin := strings.NewReader("root:" + password + "\n")
	out, err := utils.Exec.Pipe(stdin, true, "chpasswd")
	if err != nil {
		return errors.Wrap(err, strings.TrimSpace(string(out)))
	}

	log.Info("Root password updated")
	return nil
}
