package k8s

// cSpell: disable
import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	tu "github.com/evakhoni/jumpstarter-controller/pkg/testutils"
	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

// cSpell: enable

type ApplyTestSuite struct {
	suite.Suite
	Executor    *tu.MockExecutor
	OldExecutor *utils.Executor
	OldFS       *utils.FileSystem
}

func (s *ApplyTestSuite) SetupTest() {
	s.Executor = &tu.MockExecutor{}
	s.OldExecutor = &utils.Exec
	utils.Exec = s.Executor
	s.OldFS = &utils.FS
	utils.FS = utils.NewMemMapFS()
}

func (s *ApplyTestSuite) TearDownTest() {
	utils.Exec = *s.OldExecutor
	utils.FS = *s.OldFS
}

const manifest = "apiVersion: jumpstarter.dev/v1alpha1\nkind: Jumpstarter\n"

func (s *ApplyTestSuite) TestApply() {
	require := s.Require()

	var written string
	s.Executor.On("Run", true, "kubectl", "apply", "-f", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			file := args.String(4)
			content, err := utils.FS.ReadFile(file)
			require.NoError(err)
			written = string(content)
		}).
		Return("jumpstarter.jumpstarter.dev/jumpstarter created\n", nil)

	applier := &KubectlApplier{Dir: "/tmp/manifests"}
	out, err := applier.Apply(manifest)

	require.NoError(err)
	require.Equal("jumpstarter.jumpstarter.dev/jumpstarter created", out)
	require.Equal(manifest, written)
	s.Executor.AssertExpectations(s.T())

	// The temporary file is gone afterwards.
	entries, err := utils.FS.ReadDir("/tmp/manifests")
	require.NoError(err)
	require.Empty(entries)
}

func (s *ApplyTestSuite) TestApplyFailure() {
	require := s.Require()

	s.Executor.On("Run", true, "kubectl", "apply", "-f", mock.AnythingOfType("string")).
		Return("error: unable to connect to the server", new(exec.ExitError))

	applier := &KubectlApplier{Dir: "/tmp/manifests"}
	_, err := applier.Apply(manifest)

	require.EqualError(err, "error: unable to connect to the server: <nil>")

	// The temporary file is removed even on failure.
	entries, err := utils.FS.ReadDir("/tmp/manifests")
	require.NoError(err)
	require.Empty(entries)
}

func TestApply(t *testing.T) {
	suite.Run(t, new(ApplyTestSuite))
}
