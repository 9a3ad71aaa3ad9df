package backend

import (
	"context"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

// Run parses args and serves commands, or prints the stored session with --show
func Run(args []string) error {
	return run(context.Background(), args, os.Stdout)
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	service, err := New(ctx, options)
	if err != nil {
		return err
	}
	defer func() { _ = service.Logger.Sync() }()
	if options.Show {
		return service.Describe(ctx, stdout)
	}
	return service.Serve(ctx)
}
