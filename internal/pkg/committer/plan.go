// Package committer collects Spanner mutations into commit plans and
// applies them atomically.
//
// Repositories build mutations without applying them; usecases collect
// the mutations for one logical operation into a CommitPlan and apply
// the plan at the end. Either every mutation in a plan commits or none
// does, which is what keeps the multi-entity invariants (one open cart
// per user, one purchase per cart) intact under partial failure.
//
// Usecases whose preconditions must hold at commit time run their reads
// and their plan inside ReadWrite, so a concurrent writer cannot slip
// between the check and the write.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is an ordered collection of Spanner mutations that must
// commit as a unit.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically.
// Use this for operations whose preconditions were checked against
// already-committed state and need no read-your-check guarantee.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil // Nothing to commit
	}

	_, err := c.client.Apply(ctx, plan.Mutations())
	if err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}

// Single returns a single-use read-only snapshot for usecases that
// need exactly one read outside a read-write transaction. Spanner
// allows one read call per Single, so callers needing several reads
// belong in ReadWrite.
func (c *Committer) Single() Reader {
	return c.client.Single()
}

// ReadWrite runs fn inside a read-write transaction. Reads performed
// through the transaction observe a consistent snapshot, and mutations
// buffered via BufferWrite commit atomically with it. Errors returned
// by fn abort the transaction and propagate to the caller unchanged,
// so sentinel domain errors survive errors.Is checks.
func (c *Committer) ReadWrite(ctx context.Context, fn func(ctx context.Context, txn *spanner.ReadWriteTransaction) error) error {
	_, err := c.client.ReadWriteTransaction(ctx, fn)
	return err
}
