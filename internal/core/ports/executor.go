package ports

import "context"

// CommandExecutor runs the consumer build step that reads the generated artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandExecutor interface {
	// Execute runs command in dir. It returns an error if the command exits unsuccessfully.
	Execute(ctx context.Context, command []string, dir string) error
}
