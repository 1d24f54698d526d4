package cli

import (
	"fmt"
	"strings"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/backend"
	"github.com/MCPEngu/fileprovider/backend/docspace"
	"github.com/MCPEngu/fileprovider/backend/dropbox"
	"github.com/MCPEngu/fileprovider/backend/googledrive"
	"github.com/MCPEngu/fileprovider/backend/local"
	"github.com/MCPEngu/fileprovider/backend/webdav"
	"github.com/MCPEngu/fileprovider/options"
)

var roots = map[string]string{
	docspace.Scheme:    docspace.RootID,
	dropbox.Scheme:     dropbox.RootID,
	googledrive.Scheme: googledrive.RootID,
	webdav.Scheme:      webdav.RootID,
	local.Scheme:       local.RootID,
}

// provider returns the backend selected by the "backend" setting, configured from viper.
func (a *app) provider() (fileprovider.FileProvider, error) {
	if a.p != nil {
		return a.p, nil
	}
	p, err := a.open(a.v.GetString("backend"))
	if err != nil {
		return nil, err
	}
	a.p = p
	return p, nil
}

func (a *app) open(scheme string) (fileprovider.FileProvider, error) {
	v := a.v
	switch scheme {
	case docspace.Scheme:
		opts := []options.NewProviderOption[docspace.Provider]{docspace.WithLogger(a.logger)}
		opts = with(opts, v.GetString("docspace.url"), docspace.WithURL)
		opts = with(opts, v.GetString("docspace.token"), docspace.WithToken)
		if id := v.GetString("docspace.rooms"); id != "" {
			opts = append(opts, docspace.WithRooms(id, v.GetBool("docspace.archive")))
		}
		return docspace.NewProvider(opts...), nil
	case dropbox.Scheme:
		opts := []options.NewProviderOption[dropbox.Provider]{dropbox.WithLogger(a.logger)}
		opts = with(opts, v.GetString("dropbox.access_token"), dropbox.WithAccessToken)
		return dropbox.NewProvider(opts...), nil
	case googledrive.Scheme:
		opts := []options.NewProviderOption[googledrive.Provider]{googledrive.WithLogger(a.logger)}
		opts = with(opts, v.GetString("gdrive.access_token"), googledrive.WithAccessToken)
		opts = with(opts, v.GetString("gdrive.endpoint"), googledrive.WithEndpoint)
		return googledrive.NewProvider(opts...), nil
	case webdav.Scheme:
		opts := []options.NewProviderOption[webdav.Provider]{webdav.WithLogger(a.logger)}
		opts = with(opts, v.GetString("webdav.url"), webdav.WithURL)
		if user := v.GetString("webdav.user"); user != "" {
			opts = append(opts, webdav.WithCredentials(user, v.GetString("webdav.password")))
		}
		return webdav.NewProvider(opts...), nil
	case local.Scheme:
		opts := []options.NewProviderOption[local.Provider]{local.WithLogger(a.logger)}
		opts = with(opts, v.GetString("local.root"), local.WithRoot)
		return local.NewProvider(opts...), nil
	}

	// backends registered by someone else come preconfigured
	if p := backend.Backend(scheme); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q, known: %s",
		errUsage, scheme, strings.Join(backend.RegisteredBackends(), ", "))
}

// with appends opt(value) unless value is empty, leaving the backend's environment default in place.
func with[P any](opts []options.NewProviderOption[P], value string, opt func(string) options.NewProviderOption[P]) []options.NewProviderOption[P] {
	if value == "" {
		return opts
	}
	return append(opts, opt(value))
}

// root returns the root folder id of the selected backend.
func (a *app) root(p fileprovider.FileProvider) string {
	if id, ok := roots[p.Scheme()]; ok {
		return id
	}
	return "/"
}
