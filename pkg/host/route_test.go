package host

// cSpell: disable
import (
	"os/exec"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/suite"

	tu "github.com/evakhoni/jumpstarter-controller/pkg/testutils"
	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

// cSpell: enable

type RouteTestSuite struct {
	suite.Suite
	Executor    *tu.MockExecutor
	OldExecutor *utils.Executor
}

func (s *RouteTestSuite) SetupTest() {
	s.Executor = &tu.MockExecutor{}
	s.OldExecutor = &utils.Exec
	utils.Exec = s.Executor
}

func (s *RouteTestSuite) TearDownTest() {
	utils.Exec = *s.OldExecutor
}

const addrShowOutput = `2: eth0: <BROADCAST,MULTICAST,UP,LOWER_UP> mtu 1500 qdisc fq_codel state UP group default qlen 1000
    inet 192.168.1.10/24 brd 192.168.1.255 scope global dynamic eth0
       valid_lft 85843sec preferred_lft 85843sec
    inet6 fe80::1/64 scope link
       valid_lft forever preferred_lft forever
`

func (s *RouteTestSuite) TestDefaultRouteIP() {
	require := s.Require()

	s.Executor.On("Run", false, "ip", "route", "show", "default").
		Return("default via 192.168.1.1 dev eth0 proto dhcp src 192.168.1.10 metric 100\n", nil)
	s.Executor.On("Run", false, "ip", "-4", "addr", "show", "eth0").
		Return(addrShowOutput, nil)

	require.Equal("192.168.1.10", DefaultRouteIP())
	s.Executor.AssertExpectations(s.T())
}

func (s *RouteTestSuite) TestDefaultRouteIPNoRoute() {
	require := s.Require()

	s.Executor.On("Run", false, "ip", "route", "show", "default").
		Return("", new(exec.ExitError))

	require.Equal("", DefaultRouteIP())
}

func (s *RouteTestSuite) TestDefaultRouteIPNoDevice() {
	require := s.Require()

	s.Executor.On("Run", false, "ip", "route", "show", "default").
		Return("default via 192.168.1.1\n", nil)

	require.Equal("", DefaultRouteIP())
}

func (s *RouteTestSuite) TestDefaultRouteIPNoAddress() {
	require := s.Require()

	s.Executor.On("Run", false, "ip", "route", "show", "default").
		Return("default via 192.168.1.1 dev eth0\n", nil)
	s.Executor.On("Run", false, "ip", "-4", "addr", "show", "eth0").
		Return(dedent.Dedent(`
			2: eth0: <BROADCAST,MULTICAST,UP,LOWER_UP> mtu 1500 state UP
			    inet6 fe80::1/64 scope link
			`), nil)

	require.Equal("", DefaultRouteIP())
}

func (s *RouteTestSuite) TestSuggestedDomain() {
	require := s.Require()

	s.Executor.On("Run", false, "ip", "route", "show", "default").
		Return("default via 192.168.1.1 dev eth0 proto dhcp\n", nil)
	s.Executor.On("Run", false, "ip", "-4", "addr", "show", "eth0").
		Return(addrShowOutput, nil)

	require.Equal("jumpstarter.192-168-1-10.nip.io", SuggestedDomain())
}

func (s *RouteTestSuite) TestSuggestedDomainFallback() {
	require := s.Require()

	s.Executor.On("Run", false, "ip", "route", "show", "default").
		Return("", new(exec.ExitError))

	require.Equal("jumpstarter.local", SuggestedDomain())
}

func TestRoute(t *testing.T) {
	suite.Run(t, new(RouteTestSuite))
}
