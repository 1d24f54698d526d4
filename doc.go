/*
Package fileprovider provides a backend-independent set of document storage operations across a number of
storage services such as a document server, Dropbox, Google Drive, WebDAV servers and the local filesystem.

# Philosophy

A document client that talks to more than one storage service quickly grows code to the effect of

	if account.Type == "dropbox" {
	    // list with a cursor, poll a batch job id
	} else if account.Type == "webdav" {
	    // PROPFIND, then COPY each item one at a time
	} else {
	    // call the document server and wait for its operation
	}

The services disagree on nearly everything: ids are paths on one and opaque strings on another, batch jobs are
asynchronous on some and do not exist on others, pagination is a cursor here and an offset there. This package
hides those differences behind one interface so presenters and command line tools can be written once.

What the interface provides:
  - one FileProvider per backend, constructed with functional options and registered by scheme
  - a shared item model (CloudFile, CloudFolder, Explorer) that every backend maps its metadata into
  - a single Operation type for asynchronous batch jobs, synthesized as already finished on backends that work
    synchronously, so callers never ask which backend produced it
  - one-shot continuation cursors with the same semantics everywhere
  - a closed set of error sentinels (ErrNotFound, ErrUnauthorized, ...) matched with errors.Is

# Usage

Rely on the backend registry, which every backend package populates from init():

	import (
	    "github.com/MCPEngu/fileprovider/backend"
	    _ "github.com/MCPEngu/fileprovider/backend/all"
	)

	func ListRoot(ctx context.Context) error {
	    p := backend.Backend("dbx")
	    explorer, err := p.ListItems(ctx, "", fileprovider.Filter{SortBy: fileprovider.SortByTitle})
	    ...
	}

Or construct a provider directly:

	p := dropbox.NewProvider(dropbox.WithAccessToken(token), dropbox.WithLogger(logger))

Batch jobs are polled by the caller:

	ops, err := p.Transfer(ctx, items, dest, fileprovider.ConflictDuplicate, false)
	if err != nil {
	    return err
	}
	final, err := operation.Wait(ctx, p, time.Second)

# Errors

Every error returned by a provider wraps exactly one of the sentinels declared in errors.go:

	if errors.Is(err, fileprovider.ErrUnauthorized) {
	    // start the re-authentication flow
	}

Providers never retry. Transient failures surface immediately as ErrNetwork.
*/
package fileprovider
