// Package all imports all provider implementations.
package all

import (
	_ "github.com/MCPEngu/fileprovider/backend/docspace"    // register docspace backend
	_ "github.com/MCPEngu/fileprovider/backend/dropbox"     // register dropbox backend
	_ "github.com/MCPEngu/fileprovider/backend/googledrive" // register google drive backend
	_ "github.com/MCPEngu/fileprovider/backend/local"       // register local backend
	_ "github.com/MCPEngu/fileprovider/backend/webdav"      // register webdav backend
)
