package googledrive

import (
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/options"
)

const (
	optionNameService     = "service"
	optionNameTokenSource = "tokenSource"
	optionNameAccessToken = "accessToken"
	optionNameEndpoint    = "endpoint"
	optionNameOptions     = "options"
	optionNameLogger      = "logger"
	optionNameUnmounter   = "unmounter"
)

// WithService returns serviceOpt implementation of NewProviderOption
//
// WithService is used to explicitly specify a Drive service to use for the provider.
func WithService(svc *drive.Service) options.NewProviderOption[Provider] {
	return &serviceOpt{service: svc}
}

type serviceOpt struct {
	service *drive.Service
}

func (o *serviceOpt) Apply(p *Provider) {
	p.service = o.service
}

func (o *serviceOpt) NewProviderOptionName() string {
	return optionNameService
}

// WithTokenSource sets the source of OAuth2 tokens. It takes precedence over the access token.
func WithTokenSource(ts oauth2.TokenSource) options.NewProviderOption[Provider] {
	return &tokenSourceOpt{tokens: ts}
}

type tokenSourceOpt struct {
	tokens oauth2.TokenSource
}

func (o *tokenSourceOpt) Apply(p *Provider) {
	p.tokens = o.tokens
}

func (o *tokenSourceOpt) NewProviderOptionName() string {
	return optionNameTokenSource
}

// WithAccessToken sets a static OAuth2 access token.
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

// WithEndpoint points the provider at another Drive API base URL.
func WithEndpoint(endpoint string) options.NewProviderOption[Provider] {
	return &endpointOpt{endpoint: endpoint}
}

type endpointOpt struct {
	endpoint string
}

func (o *endpointOpt) Apply(p *Provider) {
	p.options.Endpoint = o.endpoint
}

func (o *endpointOpt) NewProviderOptionName() string {
	return optionNameEndpoint
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

// WithLogger sets the logger. A nil logger is ignored.
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

// WithUnmounter sets what Delete does with mount points, ie shared drives attached by another service.
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
