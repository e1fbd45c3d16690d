package host

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	tu "github.com/evakhoni/jumpstarter-controller/pkg/testutils"
	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

type AuthTestSuite struct {
	suite.Suite
	Executor    *tu.MockExecutor
	OldExecutor *utils.Executor
}

func (s *AuthTestSuite) SetupTest() {
	s.Executor = &tu.MockExecutor{}
	s.OldExecutor = &utils.Exec
	utils.Exec = s.Executor
}

func (s *AuthTestSuite) TearDownTest() {
	utils.Exec = *s.OldExecutor
}

func (s *AuthTestSuite) TestCheck() {
	require := s.Require()

	s.Executor.On("PipeContext", mock.Anything, stdinMatching("secret123\n"), true, "su", "core", "-c", "true").
		Return("", nil)

	checker := &UnixChecker{}
	require.True(checker.Check("core", "secret123"))
	s.Executor.AssertExpectations(s.T())
}

func (s *AuthTestSuite) TestCheckBadPassword() {
	require := s.Require()

	s.Executor.On("PipeContext", mock.Anything, mock.Anything, true, "su", "core", "-c", "true").
		Return("su: Authentication failure", new(exec.ExitError))

	checker := &UnixChecker{}
	require.False(checker.Check("core", "wrong"))
}

func (s *AuthTestSuite) TestCheckEmptyUsername() {
	require := s.Require()

	checker := &UnixChecker{}
	require.False(checker.Check("", "secret123"))
	s.Executor.AssertNotCalled(s.T(), "PipeContext")
}

func TestAuth(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
