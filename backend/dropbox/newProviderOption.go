package dropbox

import (
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/options"
)

const (
	optionNameAccessToken   = "accessToken"
	optionNameClient        = "client"
	optionNameContentClient = "contentClient"
	optionNameOptions       = "options"
	optionNameLogger        = "logger"
	optionNameUnmounter     = "unmounter"
)

// WithAccessToken sets the OAuth2 access token for Dropbox API authentication.
func WithAccessToken(token string) options.NewProviderOption[Provider] {
	return &accessTokenOpt{token: token}
}

type accessTokenOpt struct {
	token string
}

func (o *accessTokenOpt) Apply(p *Provider) {
	p.options.AccessToken = o.token
}

func (o *accessTokenOpt) NewProviderOptionName() string {
	return optionNameAccessToken
}

// WithClient sets a custom Dropbox client for both hosts. Useful for testing or when you need
// to provide a pre-configured client.
func WithClient(client Client) options.NewProviderOption[Provider] {
	return &clientOpt{client: client}
}

type clientOpt struct {
	client Client
}

func (o *clientOpt) Apply(p *Provider) {
	p.api = o.client
	p.content = o.client
}

func (o *clientOpt) NewProviderOptionName() string {
	return optionNameClient
}

// WithContentClient sets the client used for downloads only.
func WithContentClient(client Client) options.NewProviderOption[Provider] {
	return &contentClientOpt{client: client}
}

type contentClientOpt struct {
	client Client
}

func (o *contentClientOpt) Apply(p *Provider) {
	p.content = o.client
}

func (o *contentClientOpt) NewProviderOptionName() string {
	return optionNameContentClient
}

// WithOptions replaces every option at once.
func WithOptions(opts Options) options.NewProviderOption[Provider] {
	return &optionsOpt{options: opts}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(p *Provider) {
	p.options = o.options
}

func (o *optionsOpt) NewProviderOptionName() string {
	return optionNameOptions
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) options.NewProviderOption[Provider] {
	return &loggerOpt{logger: logger}
}

type loggerOpt struct {
	logger *zap.Logger
}

func (o *loggerOpt) Apply(p *Provider) {
	if o.logger != nil {
		p.logger = o.logger
	}
}

func (o *loggerOpt) NewProviderOptionName() string {
	return optionNameLogger
}

// WithUnmounter sets what Delete does with mount points.
func WithUnmounter(u fileprovider.Unmounter) options.NewProviderOption[Provider] {
	return &unmounterOpt{unmounter: u}
}

type unmounterOpt struct {
	unmounter fileprovider.Unmounter
}

func (o *unmounterOpt) Apply(p *Provider) {
	p.unmounter = o.unmounter
}

func (o *unmounterOpt) NewProviderOptionName() string {
	return optionNameUnmounter
}
