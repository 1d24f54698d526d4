/*
Package local implements fileprovider.FileProvider for a directory tree on the device, through an afero.Fs.

# Usage

Rely on github.com/MCPEngu/fileprovider/backend

	import(
	    "github.com/MCPEngu/fileprovider/backend"
	    "github.com/MCPEngu/fileprovider/backend/local"
	)

	func UseProvider() error {
	    p := backend.Backend(local.Scheme)
	    ...
	}

Or call directly:

	import "github.com/MCPEngu/fileprovider/backend/local"

	func DoSomething() {
	    p := local.NewProvider(local.WithRoot("~/Documents"))
	    ...
	}

# Identifiers

Item ids are slash separated paths relative to the root, always starting with "/". "" and "root" both name the root
folder. Since the id is the path, renaming or moving an item changes its id.

# Behaviour

Everything is synchronous: Delete and Transfer return operations that are already Done, and OperationStatus always
answers Done. Transfer refuses, before touching anything, any item whose destination resolves to the item itself or
to a folder inside it (fileprovider.ErrSamePath). Share is not supported and answers fileprovider.ErrForbidden.

The root defaults to FP_LOCAL_ROOT, then to the home directory of the current user. A leading "~" is expanded.
*/
package local
