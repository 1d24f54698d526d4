/*
Package docspace implements fileprovider.FileProvider for the document server REST API (version 2.0), on top of
github.com/go-resty/resty/v2.

# Usage

Rely on github.com/MCPEngu/fileprovider/backend

	import(
	    "github.com/MCPEngu/fileprovider/backend"
	    "github.com/MCPEngu/fileprovider/backend/docspace"
	)

	func UseProvider() error {
	    p := backend.Backend(docspace.Scheme)
	    ...
	}

Or call directly:

	import "github.com/MCPEngu/fileprovider/backend/docspace"

	func DoSomething() {
	    p := docspace.NewProvider(
	        docspace.WithURL("https://docs.example.com"),
	        docspace.WithToken(token),
	        docspace.WithRooms("rooms", false),
	    )
	    ...
	}

# Authentication

The portal URL and session token default to the FP_DOCSPACE_URL and FP_DOCSPACE_TOKEN environment variables. The
token is sent as a bearer token on API calls and as the auth cookie on downloads. A rejected token surfaces as
fileprovider.ErrUnauthorized.

# Batch operations

Delete, move and copy are server-side jobs. The returned operations are the server's view at submission time;
OperationStatus reads the current state of every job the session has running. Mount points of third party storage
are disconnected instead of being deleted, and that call's outcome is not reported.

# Rooms

When a listing targets the folder id configured with WithRooms, the rooms endpoint is used instead of the folder
endpoint. Rooms ignore type and subfolder filters, and archive mode lists archived rooms.
*/
package docspace
