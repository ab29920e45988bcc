// Package operations orchestrates the pipeline run: an ordered registry of
// steps executed strictly in sequence by a manager, with per-step state and
// timing. Each step consumes the complete in-memory output of the prior
// step through the shared run state; there is no streaming and no partial
// result. The run stops at the first failing step.
package operations
