package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/logging"
)

// ExecutorOptions configures an Executor instance.
type ExecutorOptions struct {
	// PoolSize is the number of concurrent slots for parallel agents.
	PoolSize int
	// Timeout bounds each agent run. On expiry the agent's pending result
	// is abandoned; the underlying call completes or errors on its own.
	Timeout time.Duration
	Logger  logging.Logger
}

// Executor runs the enabled subset of registered agents against a fixed
// conversation history. Parallel agents share a bounded worker pool;
// sequential agents run one after another in registry order. Failures and
// timeouts are isolated per agent and recorded in that agent's Result.
type Executor struct {
	registry *Registry
	pool     *Pool
	timeout  time.Duration
	logger   logging.Logger
}

// NewExecutor constructs an Executor over the given registry.
func NewExecutor(registry *Registry, optFns ...func(o *ExecutorOptions)) *Executor {
	opts := ExecutorOptions{
		PoolSize: 5,
		Timeout:  10 * time.Second,
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Executor{
		registry: registry,
		pool:     NewPool(opts.PoolSize),
		timeout:  opts.Timeout,
		logger:   opts.Logger,
	}
}

// Run executes the working set and returns one Result per agent, keyed by
// agent id. The working set is requested intersected with the enabled
// catalog; a nil requested slice selects all enabled agents. Run returns
// only after every submitted agent has settled (success, failure or timeout);
// a nil map means no agent ran.
func (e *Executor) Run(ctx context.Context, history []core.Message, pack *core.ContextPack, requested []string) map[string]Result {
	ids := e.workingSet(requested)
	if len(ids) == 0 {
		return nil
	}

	var parallel, sequential []string
	for _, id := range ids {
		if def, _ := e.registry.Get(id); def.Mode == ModeSequential {
			sequential = append(sequential, id)
		} else {
			parallel = append(parallel, id)
		}
	}

	results := make(map[string]Result, len(ids))

	// Dispatch the parallel group first so it makes progress while the
	// sequential chain runs. The result channel is buffered so a worker
	// whose result was abandoned on timeout never blocks.
	type pendingRun struct {
		id string
		ch chan Result
	}
	pending := make([]pendingRun, 0, len(parallel))
	for _, id := range parallel {
		id := id
		ch := make(chan Result, 1)
		e.pool.Submit(func() {
			ch <- e.runOne(ctx, id, history, pack)
		})
		pending = append(pending, pendingRun{id: id, ch: ch})
	}

	// Sequential agents run in registry order, each awaited before the next
	// starts. A failure does not halt the remainder of the chain.
	for _, id := range sequential {
		id := id
		ch := make(chan Result, 1)
		go func() {
			ch <- e.runOne(ctx, id, history, pack)
		}()
		results[id] = e.await(ctx, id, ch)
	}

	for _, p := range pending {
		results[p.id] = e.await(ctx, p.id, p.ch)
	}

	return results
}

// Close shuts down the worker pool, waiting for in-flight tasks.
func (e *Executor) Close() {
	e.pool.Close()
}

// workingSet resolves the requested ids against the enabled catalog,
// preserving registry order. A nil request selects every enabled agent; an
// explicit empty request selects none.
func (e *Executor) workingSet(requested []string) []string {
	enabled := e.registry.Enabled()
	if requested == nil {
		return enabled
	}

	want := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		want[id] = struct{}{}
	}

	var ids []string
	for _, id := range enabled {
		if _, ok := want[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// await blocks until the agent settles or its timeout expires. On timeout
// the result is discarded, not the task: the goroutine finishes into the
// buffered channel and is garbage collected.
func (e *Executor) await(ctx context.Context, id string, ch <-chan Result) Result {
	timer := time.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res
	case <-timer.C:
		e.logger.Warn("agent timed out", "agent", id, "timeout", e.timeout)
		return failureResult(id, fmt.Sprintf("timed out after %s", e.timeout))
	case <-ctx.Done():
		return failureResult(id, ctx.Err().Error())
	}
}

// runOne executes a single agent, converting errors and panics into failure
// results so no agent can affect its peers or the primary response.
func (e *Executor) runOne(ctx context.Context, id string, history []core.Message, pack *core.ContextPack) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("agent panicked", "agent", id, "panic", r)
			res = failureResult(id, fmt.Sprintf("agent panicked: %v", r))
		}
	}()

	impl, ok := e.registry.Implementation(id)
	if !ok {
		return failureResult(id, "no implementation registered")
	}

	start := time.Now()
	ideas, err := impl.Run(ctx, history, pack)
	if err != nil {
		e.logger.Warn("agent failed", "agent", id, "error", err, "duration", time.Since(start))
		return failureResult(id, err.Error())
	}

	e.logger.Debug("agent completed", "agent", id, "ideas", len(ideas), "duration", time.Since(start))
	return successResult(id, ideas)
}
