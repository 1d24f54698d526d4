package webdav

import (
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/options"
)

const (
	optionNameClient      = "client"
	optionNameOptions     = "options"
	optionNameURL         = "url"
	optionNameCredentials = "credentials"
	optionNameLogger      = "logger"
	optionNameUnmounter   = "unmounter"
)

// WithClient returns clientOpt implementation of NewProviderOption
//
// WithClient is used to explicitly specify a Client to use for the provider.
func WithClient(c Client) options.NewProviderOption[Provider] {
	return &clientOpt{client: c}
}

type clientOpt struct {
	client Client
}

func (o *clientOpt) Apply(p *Provider) {
	p.client = o.client
}

func (o *clientOpt) NewProviderOptionName() string {
	return optionNameClient
}

// WithOptions returns optionsOpt implementation of NewProviderOption
//
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

// WithURL sets the server URL, including the path of the user's root collection.
func WithURL(url string) options.NewProviderOption[Provider] {
	return &urlOpt{url: url}
}

type urlOpt struct {
	url string
}

func (o *urlOpt) Apply(p *Provider) {
	p.options.URL = o.url
}

func (o *urlOpt) NewProviderOptionName() string {
	return optionNameURL
}

// WithCredentials sets the user name and password.
func WithCredentials(user, password string) options.NewProviderOption[Provider] {
	return &credentialsOpt{user: user, password: password}
}

type credentialsOpt struct {
	user     string
	password string
}

func (o *credentialsOpt) Apply(p *Provider) {
	p.options.User = o.user
	p.options.Password = o.password
}

func (o *credentialsOpt) NewProviderOptionName() string {
	return optionNameCredentials
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
