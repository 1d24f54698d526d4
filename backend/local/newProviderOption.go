package local

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/options"
)

const (
	optionNameOptions   = "options"
	optionNameRoot      = "root"
	optionNamePageSize  = "pageSize"
	optionNameFs        = "fs"
	optionNameLogger    = "logger"
	optionNameUnmounter = "unmounter"
)

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

// WithRoot sets the directory the provider is confined to.
func WithRoot(root string) options.NewProviderOption[Provider] {
	return &rootOpt{root: root}
}

type rootOpt struct {
	root string
}

func (o *rootOpt) Apply(p *Provider) {
	p.options.Root = o.root
}

func (o *rootOpt) NewProviderOptionName() string {
	return optionNameRoot
}

// WithPageSize splits listings into pages of size items.
func WithPageSize(size int) options.NewProviderOption[Provider] {
	return &pageSizeOpt{size: size}
}

type pageSizeOpt struct {
	size int
}

func (o *pageSizeOpt) Apply(p *Provider) {
	p.options.PageSize = o.size
}

func (o *pageSizeOpt) NewProviderOptionName() string {
	return optionNamePageSize
}

// WithFs sets the filesystem used instead of the OS filesystem rooted at Options.Root. Paths handed to fs are
// already relative to the root.
func WithFs(fs afero.Fs) options.NewProviderOption[Provider] {
	return &fsOpt{fs: fs}
}

type fsOpt struct {
	fs afero.Fs
}

func (o *fsOpt) Apply(p *Provider) {
	p.fs = o.fs
}

func (o *fsOpt) NewProviderOptionName() string {
	return optionNameFs
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
