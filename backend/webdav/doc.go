/*
Package webdav implements fileprovider.FileProvider for WebDAV servers (Nextcloud, ownCloud, Yandex Disk, kDrive
and the like) on top of github.com/studio-b12/gowebdav.

# Usage

Rely on github.com/MCPEngu/fileprovider/backend

	import(
	    "github.com/MCPEngu/fileprovider/backend"
	    "github.com/MCPEngu/fileprovider/backend/webdav"
	)

	func UseProvider() error {
	    p := backend.Backend(webdav.Scheme)
	    ...
	}

Or call directly:

	import "github.com/MCPEngu/fileprovider/backend/webdav"

	func DoSomething() {
	    p := webdav.NewProvider(
	        webdav.WithURL("https://cloud.example.com/remote.php/dav/files/me"),
	        webdav.WithCredentials("me", os.Getenv("DAV_PASSWORD")),
	    )
	    ...
	}

# Authentication

The server URL and credentials default to the FP_WEBDAV_URL, FP_WEBDAV_USER and FP_WEBDAV_PASSWORD environment
variables. Basic and digest authentication are negotiated by the client.

# Behaviour

Item ids are paths relative to the server URL, so renaming or moving an item changes its id. WebDAV has no batch
jobs: Delete and Transfer work item by item, stop at the first failure and return operations that are already
finished. There is no server side search; Search walks the tree below the root down to Options.SearchDepth. Share
answers fileprovider.ErrForbidden.
*/
package webdav
