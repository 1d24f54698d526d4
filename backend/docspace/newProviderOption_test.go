package docspace

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider/options"
)

type NewProviderOptionTestSuite struct {
	suite.Suite
}

func (s *NewProviderOptionTestSuite) TestOptions() {
	logger := zap.NewExample()
	client := resty.New()

	tests := []struct {
		name         string
		opt          options.NewProviderOption[Provider]
		expectedName string
		validate     func(*Provider)
	}{
		{
			name:         "WithClient",
			opt:          WithClient(client),
			expectedName: optionNameClient,
			validate: func(p *Provider) {
				c, err := p.Client()
				s.Require().NoError(err)
				s.Same(client, c)
			},
		},
		{
			name:         "WithURL",
			opt:          WithURL("https://docs.example.com"),
			expectedName: optionNameURL,
			validate: func(p *Provider) {
				s.Equal("https://docs.example.com", p.options.URL)
			},
		},
		{
			name:         "WithToken",
			opt:          WithToken("tok"),
			expectedName: optionNameToken,
			validate: func(p *Provider) {
				s.Equal("tok", p.options.Token)
			},
		},
		{
			name:         "WithRooms",
			opt:          WithRooms("rooms", true),
			expectedName: optionNameRooms,
			validate: func(p *Provider) {
				s.Equal("rooms", p.options.RoomsRootID)
				s.True(p.options.Archive)
			},
		},
		{
			name:         "WithOptions",
			opt:          WithOptions(Options{URL: "https://x", PageSize: 5}),
			expectedName: optionNameOptions,
			validate: func(p *Provider) {
				s.Equal(5, p.options.PageSize)
				s.Zero(p.options.Timeout)
			},
		},
		{
			name:         "WithLogger",
			opt:          WithLogger(logger),
			expectedName: optionNameLogger,
			validate: func(p *Provider) {
				s.Equal(logger, p.logger)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			p := &Provider{options: NewOptions(), logger: zap.NewNop()}

			tt.opt.Apply(p)
			tt.validate(p)

			s.Equal(tt.expectedName, tt.opt.NewProviderOptionName())
		})
	}
}

func (s *NewProviderOptionTestSuite) TestEnvDefaults() {
	s.T().Setenv("FP_DOCSPACE_URL", "https://env.example.com")
	s.T().Setenv("FP_DOCSPACE_TOKEN", "env-token")

	opts := NewOptions()
	s.Equal("https://env.example.com", opts.URL)
	s.Equal("env-token", opts.Token)
	s.Equal(30*time.Second, opts.Timeout)
	s.Equal(100, opts.PageSize)
	s.Empty(opts.RoomsRootID)
}

func (s *NewProviderOptionTestSuite) TestClientFromOptions() {
	p := NewProvider(WithURL("https://docs.example.com/"), WithToken("tok"))
	c, err := p.Client()
	s.Require().NoError(err)
	s.Equal("https://docs.example.com/api/2.0", c.BaseURL)
	s.Equal("tok", c.Token)
}

func TestNewProviderOptionTestSuite(t *testing.T) {
	suite.Run(t, new(NewProviderOptionTestSuite))
}
