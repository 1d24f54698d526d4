package docspace

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider/options"
)

const (
	optionNameClient  = "client"
	optionNameOptions = "options"
	optionNameURL     = "url"
	optionNameToken   = "token"
	optionNameRooms   = "rooms"
	optionNameLogger  = "logger"
)

// WithClient returns clientOpt implementation of NewProviderOption
//
// WithClient is used to explicitly specify a resty client. Its base URL and auth token are used as they are.
func WithClient(c *resty.Client) options.NewProviderOption[Provider] {
	return &clientOpt{client: c}
}

type clientOpt struct {
	client *resty.Client
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

// WithURL sets the portal URL, without the API path.
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

// WithToken sets the session token.
func WithToken(token string) options.NewProviderOption[Provider] {
	return &tokenOpt{token: token}
}

type tokenOpt struct {
	token string
}

func (o *tokenOpt) Apply(p *Provider) {
	p.options.Token = o.token
}

func (o *tokenOpt) NewProviderOptionName() string {
	return optionNameToken
}

// WithRooms names the folder id that lists rooms, and whether archived rooms are the ones shown.
func WithRooms(rootID string, archive bool) options.NewProviderOption[Provider] {
	return &roomsOpt{rootID: rootID, archive: archive}
}

type roomsOpt struct {
	rootID  string
	archive bool
}

func (o *roomsOpt) Apply(p *Provider) {
	p.options.RoomsRootID = o.rootID
	p.options.Archive = o.archive
}

func (o *roomsOpt) NewProviderOptionName() string {
	return optionNameRooms
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
