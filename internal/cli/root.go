// Package cli implements fpctl, a command line client driving any registered file provider.
package cli

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/MCPEngu/fileprovider"
	"github.com/MCPEngu/fileprovider/backend/docspace"
)

// app is the state shared by every command of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	logger  *zap.Logger

	// fs receives downloaded files.
	fs afero.Fs
	p  fileprovider.FileProvider
}

func newApp() *app {
	return &app{
		v:      viper.New(),
		logger: zap.NewNop(),
		fs:     afero.NewOsFs(),
	}
}

// NewRootCommand builds the fpctl command tree.
func NewRootCommand() *cobra.Command {
	return newApp().command()
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "fpctl",
		Short: "Browse and manage files on cloud storage backends",
		Long: `fpctl lists, creates, renames, deletes, copies, moves and shares items on
any backend the file provider library knows: docspace (docs), Dropbox (dbx),
Google Drive (gdrive), WebDAV (webdav) and the local filesystem (file).

Settings are read from flags, then environment variables, then the config
file. If "config" is not set, a file called .fpctl.{json,toml,yaml,yml} is
looked up in the current directory and in $HOME. A .env file in the current
directory is loaded first.

Environment variables are prefixed by "FP_" followed by the key in caps with
dots replaced by underscores, ie: FP_DOCSPACE_URL, FP_DROPBOX_ACCESS_TOKEN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	persistent := root.PersistentFlags()
	persistent.StringVarP(&a.cfgFile, "config", "c", "", "config file path")
	persistent.StringP("backend", "b", docspace.Scheme, "backend scheme, see the backends command")
	persistent.BoolP("verbose", "v", false, "log debug output to stderr")
	persistent.Duration("timeout", 5*time.Minute, "give up after this long")
	for _, name := range []string{"backend", "verbose", "timeout"} {
		_ = a.v.BindPFlag(name, persistent.Lookup(name))
	}

	root.AddCommand(
		a.backendsCmd(),
		a.listCmd(),
		a.searchCmd(),
		a.mkdirCmd(),
		a.touchCmd(),
		a.renameCmd(),
		a.removeCmd(),
		a.transferCmd("cp", false),
		a.transferCmd("mv", true),
		a.shareCmd(),
		a.infoCmd(),
		a.getCmd(),
		a.statusCmd(),
		a.terminateCmd(),
		a.emptyTrashCmd(),
	)
	return root
}

// Execute runs fpctl with the process arguments and returns the exit code.
func Execute() int {
	err := NewRootCommand().Execute()
	if err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
	}
	return exitCode(err)
}

// Exit codes, so scripts can tell a missing item from a rejected session.
const (
	exitOK = iota
	exitFailure
	exitUsage
	exitUnauthorized
	exitNotFound
	exitConflict
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, fileprovider.ErrUnauthorized):
		return exitUnauthorized
	case errors.Is(err, fileprovider.ErrNotFound):
		return exitNotFound
	case errors.Is(err, fileprovider.ErrNameConflict), errors.Is(err, fileprovider.ErrSamePath):
		return exitConflict
	case errors.Is(err, errUsage):
		return exitUsage
	}
	return exitFailure
}

var errUsage = errors.New("usage")

// out is the writer command results go to.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
