package cursor

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/MCPEngu/fileprovider"
)

type cursorSuite struct {
	suite.Suite
	tracker *Tracker[int]
}

func (s *cursorSuite) SetupTest() {
	s.tracker = &Tracker[int]{}
}

func (s *cursorSuite) TestRedeemOnce() {
	token := s.tracker.Issue(40)
	s.NotEmpty(token)

	state, err := s.tracker.Redeem(token)
	s.Require().NoError(err)
	s.Equal(40, state)

	_, err = s.tracker.Redeem(token)
	s.ErrorIs(err, fileprovider.ErrInvalidCursor, "second redeem must fail")
}

func (s *cursorSuite) TestUnknownToken() {
	s.tracker.Issue(1)
	_, err := s.tracker.Redeem("not-a-token")
	s.ErrorIs(err, fileprovider.ErrInvalidCursor)

	_, err = s.tracker.Redeem("")
	s.ErrorIs(err, fileprovider.ErrInvalidCursor)
}

func (s *cursorSuite) TestResetInvalidates() {
	token := s.tracker.Issue(20)
	s.tracker.Reset()

	_, err := s.tracker.Redeem(token)
	s.ErrorIs(err, fileprovider.ErrInvalidCursor)

	next := s.tracker.Issue(21)
	state, err := s.tracker.Redeem(next)
	s.Require().NoError(err)
	s.Equal(21, state)
}

func (s *cursorSuite) TestIssueReplaces() {
	first := s.tracker.Issue(1)
	second := s.tracker.Issue(2)
	s.NotEqual(first, second)

	_, err := s.tracker.Redeem(first)
	s.ErrorIs(err, fileprovider.ErrInvalidCursor)

	state, err := s.tracker.Redeem(second)
	s.Require().NoError(err)
	s.Equal(2, state)
}

func TestCursor(t *testing.T) {
	suite.Run(t, new(cursorSuite))
}
