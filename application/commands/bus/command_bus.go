package bus

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// Command is a state-changing request. Validate reports problems with
// the command itself, before any handler runs.
type Command interface {
	Validate() error
}

// CommandHandler executes one command type
type CommandHandler interface {
	Handle(ctx context.Context, cmd Command) error
}

// CommandHandlerFunc adapts a function to the CommandHandler interface
type CommandHandlerFunc func(ctx context.Context, cmd Command) error

// Handle implements CommandHandler
func (f CommandHandlerFunc) Handle(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

// CommandBus routes commands to handlers by their concrete type
type CommandBus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]CommandHandler
}

// NewCommandBus creates an empty command bus
func NewCommandBus() *CommandBus {
	return &CommandBus{handlers: make(map[reflect.Type]CommandHandler)}
}

// Register binds a handler to the concrete type of cmdType. Each command
// type takes exactly one handler.
func (b *CommandBus) Register(cmdType Command, handler CommandHandler) error {
	t := reflect.TypeOf(cmdType)

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, taken := b.handlers[t]; taken {
		return fmt.Errorf("command type %s already registered", t.Name())
	}
	b.handlers[t] = handler
	return nil
}

// Send validates the command and runs its handler. Invalid commands
// never reach a handler; handler failures come back wrapped with the
// original error in the chain.
func (b *CommandBus) Send(ctx context.Context, cmd Command) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("command validation failed: %w", err)
	}

	b.mu.RLock()
	handler, ok := b.handlers[reflect.TypeOf(cmd)]
	b.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no handler registered for command type %T", cmd)
	}

	if err := handler.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("command handler failed: %w", err)
	}
	return nil
}

// Middleware wraps a command handler with cross-cutting behavior
type Middleware func(next CommandHandler) CommandHandler

// Pipeline is an ordered middleware chain. The first middleware passed
// to NewPipeline sees the command first.
type Pipeline struct {
	middlewares []Middleware
}

// NewPipeline creates a pipeline from outermost to innermost middleware
func NewPipeline(middlewares ...Middleware) *Pipeline {
	return &Pipeline{middlewares: middlewares}
}

// Execute wraps the handler with every middleware in the pipeline
func (p *Pipeline) Execute(handler CommandHandler) CommandHandler {
	wrapped := handler
	for i := len(p.middlewares) - 1; i >= 0; i-- {
		wrapped = p.middlewares[i](wrapped)
	}
	return wrapped
}

// Logger is the minimal logging surface the bus middleware needs
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// LoggingMiddleware logs every command with its outcome
func LoggingMiddleware(logger Logger) Middleware {
	return func(next CommandHandler) CommandHandler {
		return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
			name := reflect.TypeOf(cmd).Name()
			logger.Info("Executing command", "type", name)

			if err := next.Handle(ctx, cmd); err != nil {
				logger.Error("Command failed", "type", name, "error", err)
				return err
			}
			logger.Info("Command succeeded", "type", name)
			return nil
		})
	}
}

// ValidationMiddleware re-checks Validate for handlers invoked outside
// the bus, through a pipeline directly for example
func ValidationMiddleware() Middleware {
	return func(next CommandHandler) CommandHandler {
		return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
			if err := cmd.Validate(); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			return next.Handle(ctx, cmd)
		})
	}
}
