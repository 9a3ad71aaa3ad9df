package widget

import (
	"context"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner/local"
)

// Runner runs a shell command, returning its output and exit code
type Runner interface {
	Run(ctx context.Context, command string) (string, int, error)
}

type shellRunner struct {
	service *gosh.Service
}

func (s *shellRunner) Run(ctx context.Context, command string) (string, int, error) {
	return s.service.Run(ctx, command)
}

func (s *shellRunner) Close() error {
	return s.service.Close()
}

// NewShellRunner starts a local shell session
func NewShellRunner(ctx context.Context) (Runner, error) {
	service, err := gosh.New(ctx, local.New())
	if err != nil {
		return nil, err
	}
	return &shellRunner{service: service}, nil
}
