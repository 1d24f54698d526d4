/*
Package googledrive implements fileprovider.FileProvider for Google Drive using the Drive v3 API.

# Usage

Rely on github.com/MCPEngu/fileprovider/backend

	import(
	    "github.com/MCPEngu/fileprovider/backend"
	    "github.com/MCPEngu/fileprovider/backend/googledrive"
	)

	func UseProvider() error {
	    p := backend.Backend(googledrive.Scheme)
	    ...
	}

Or call directly:

	p := googledrive.NewProvider(
	    googledrive.WithTokenSource(config.TokenSource(ctx, token)),
	    googledrive.WithLogger(logger),
	)

# Authentication

Requests carry an OAuth2 bearer token. Either hand the provider an oauth2.TokenSource, which refreshes tokens on its
own, or a plain access token through WithAccessToken or the FP_GDRIVE_ACCESS_TOKEN environment variable. Rejected
tokens surface as fileprovider.ErrUnauthorized.

# Identifiers

Items are addressed by Drive file ids. "root" (and the empty id) is the user's My Drive.

Drive allows several items with the same name in one folder; this provider does not. Create, rename and transfer
look for an existing item with the name first.

# Limitations

Folders cannot be copied. Link expiration and passwords are not supported by "anyone" permissions and are ignored.
Google Docs, Sheets and Slides cannot be downloaded as they have no binary content.
*/
package googledrive
