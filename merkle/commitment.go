package merkle

// Commitment is the published summary of the tree built over a batch's orders.
type Commitment struct {
	BatchID uint32 `json:"batch_id"`
	Root    Hash   `json:"root"`
}

// NewCommitment summarises tree as the commitment of batchID.
func NewCommitment(batchID uint32, tree *Tree) Commitment {
	return Commitment{BatchID: batchID, Root: tree.Root()}
}
