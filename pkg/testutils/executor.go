// cSpell: words testutils
package testutils

// cSpell: disable
import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// cSpell: enable

type MockExecutor struct {
	mock.Mock
}

// Run executes a command with the specified arguments and returns the output
// or an error.
//
// Parameters:
//   - combined: A boolean indicating whether to combine stdout and stderr.
//   - cmd: The command to be executed as a string.
//   - arguments: A variadic slice of strings representing the command arguments.
//
// Returns:
//   - A byte slice containing the command output.
//   - An error if the command execution fails.
func (m *MockExecutor) Run(combined bool, cmd string, arguments ...string) ([]byte, error) {
	items := append(make([]any, 0), combined, cmd)
	for _, arg := range arguments {
		items = append(items, arg)
	}
	args := m.Called(items...)
	return []byte(args.String(0)), args.Error(1)
}

// Pipe executes a command with the provided arguments, passing stdin as the
// command input.
func (m *MockExecutor) Pipe(stdin io.Reader, combined bool, cmd string, arguments ...string) ([]byte, error) {
	items := append(make([]any, 0), stdin, combined, cmd)
	for _, arg := range arguments {
		items = append(items, arg)
	}
	args := m.Called(items...)
	return []byte(args.String(0)), args.Error(1)
}

// PipeContext behaves like Pipe with a context attached to the command.
func (m *MockExecutor) PipeContext(
	ctx context.Context,
	stdin io.Reader,
	combined bool,
	cmd string,
	arguments ...string,
) ([]byte, error) {
	items := append(make([]any, 0), ctx, stdin, combined, cmd)
	for _, arg := range arguments {
		items = append(items, arg)
	}
	args := m.Called(items...)
	return []byte(args.String(0)), args.Error(1)
}
