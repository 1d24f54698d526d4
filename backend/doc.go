/*
Package backend provides a means of allowing providers to self-register on load via an init() call to
backend.Register("some scheme", fileprovider.FileProvider)

In this way, a caller can simply load the provider packages (and ONLY those needed) and begin using them:

	package main

	// import backend and each backend you intend to use
	import(
	    "github.com/MCPEngu/fileprovider/backend"
	    "github.com/MCPEngu/fileprovider/backend/dropbox"
	    "github.com/MCPEngu/fileprovider/backend/local"
	)

	func main() {
	    ctx := context.Background()

	    // THEN begin using the providers
	    explorer, err := backend.Backend(local.Scheme).ListItems(ctx, "/", fileprovider.Filter{})
	    if err != nil {
	        panic(err)
	    }

	    _, err = backend.Backend(dropbox.Scheme).ListItems(ctx, "", fileprovider.Filter{})
	    if err != nil {
	        panic(err)
	    }
	    ...
	}

The registered instances are built from environment variables only (FP_DROPBOX_ACCESS_TOKEN and friends). Construct
a provider directly with its NewProvider function when you need other options.

# Development

To create your own backend, you must create a package that implements fileprovider.FileProvider.
Then ensure it registers itself on load:

	package myexoticstorage

	import(
	    ...
	    "github.com/MCPEngu/fileprovider"
	    "github.com/MCPEngu/fileprovider/backend"
	)

	// IMPLEMENT fileprovider.FileProvider
	...

	// register backend
	func init() {
	    backend.Register("exotic", NewProvider())
	}

The helpers in this package cover the bits every backend needs: ValidateTransfer for the checks that never need a
round trip, Unmount for mount points on backends without a storage removal call, and Page for backends that list a
whole folder at once.
*/
package backend
