package host

// cSpell: words chpasswd
// cSpell: disable
import (
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	tu "github.com/evakhoni/jumpstarter-controller/pkg/testutils"
	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

// cSpell: enable

type PasswordTestSuite struct {
	suite.Suite
	Executor    *tu.MockExecutor
	OldExecutor *utils.Executor
}

func (s *PasswordTestSuite) SetupTest() {
	s.Executor = &tu.MockExecutor{}
	s.OldExecutor = &utils.Exec
	utils.Exec = s.Executor
}

func (s *PasswordTestSuite) TearDownTest() {
	utils.Exec = *s.OldExecutor
}

func stdinMatching(expected string) any {
	return mock.MatchedBy(func(r io.Reader) bool {
		content, err := io.ReadAll(r)
		return err == nil && string(content) == expected
	})
}

func (s *PasswordTestSuite) TestSetRootPassword() {
	require := s.Require()

	s.Executor.On("Pipe", stdinMatching("root:correct horse\n"), true, "chpasswd").
		Return("", nil)

	store := &ChpasswdStore{}
	require.NoError(store.SetRootPassword("correct horse"))
	s.Executor.AssertExpectations(s.T())
}

func (s *PasswordTestSuite) TestSetRootPasswordFailure() {
	require := s.Require()

	s.Executor.On("Pipe", mock.Anything, true, "chpasswd").
		Return("chpasswd: (user root) pam_chauthtok() failed", new(exec.ExitError))

	store := &ChpasswdStore{}
	err := store.SetRootPassword("short")
	s.Executor.AssertExpectations(s.T())

	require.EqualError(err, "chpasswd: (user root) pam_chauthtok() failed: <nil>")
}

func TestPassword(t *testing.T) {
	suite.Run(t, new(PasswordTestSuite))
}
