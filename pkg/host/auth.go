package host

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

// CredentialChecker validates operating system account credentials.
type CredentialChecker interface {
	Check(username, password string) bool
}

// checkTimeout bounds the credential check. It is the only timeout applied
// to an external command in this service.
const checkTimeout = 3 * time.Second

// UnixChecker verifies credentials against the local account database by
// piping the password to su.
type UnixChecker struct {
}

func (u *UnixChecker) Check(username, password string) bool {
	if username == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	stdin := strings.NewReader(password + "\n")
	_, err := utils.Exec.PipeContext(ctx, stdin, true, "su", username, "-c", "true")
	if err != nil {
		log.WithError(err).WithField("username", username).Debug("Credential check failed")
		return false
	}
	return true
}
