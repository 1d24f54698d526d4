// fpctl is a command line client for the file provider backends.
package main

import (
	"os"

	_ "github.com/MCPEngu/fileprovider/backend/all"
	"github.com/MCPEngu/fileprovider/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
