// Package dropbox implements fileprovider.FileProvider for Dropbox.
//
// # Usage
//
// Rely on github.com/MCPEngu/fileprovider/backend
//
//	import(
//	    "github.com/MCPEngu/fileprovider/backend"
//	    "github.com/MCPEngu/fileprovider/backend/dropbox"
//	)
//
//	func UseProvider() error {
//	    p := backend.Backend(dropbox.Scheme)
//	    ...
//	}
//
// Or call directly:
//
//	import "github.com/MCPEngu/fileprovider/backend/dropbox"
//
//	func DoSomething() {
//	    p := dropbox.NewProvider(
//	        dropbox.WithAccessToken("your-oauth-token"),
//	    )
//	    explorer, err := p.ListItems(ctx, "", fileprovider.Filter{})
//	    ...
//	}
//
// # Authentication
//
// The Dropbox backend requires an OAuth2 access token:
//
// 1. Create a Dropbox App at https://www.dropbox.com/developers/apps
// 2. Generate an access token from the app console (for testing)
// 3. Implement the OAuth2 flow for production use
//
// Set the access token via the WithAccessToken option, or the FP_DROPBOX_ACCESS_TOKEN environment variable. An
// expired or revoked token surfaces as fileprovider.ErrUnauthorized.
//
// # Identifiers
//
// Item ids are Dropbox file ids ("id:..."), so they survive renames and moves. Paths are accepted anywhere an id is.
// The root folder has the empty id.
//
// # Sessions
//
// Metadata calls go to the api host, downloads to the content host with a longer timeout. Each call records which
// host it used; the record is replaced, never edited, and carries the batch jobs still pending.
//
// # Limitations
//
// 1. Case Insensitive Paths: Dropbox paths are case-insensitive but case-preserving.
// /path/File.txt and /path/file.txt refer to the same file.
//
// 2. Temporary Links: Share hands out a four hour download link. Links cannot be revoked and folders have none.
//
// 3. Overwrite: batch copies cannot replace existing items, so Transfer deletes them first.
package dropbox
