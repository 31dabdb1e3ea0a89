// Package discover partitions raw training data into sheaf patches via
// conditioning functions and searches over candidate conditionings using the
// obstruction as the selection metric.
//
// A Conditioning maps each (sample, target) pair to an opaque patch key.
// Partition groups the data by key in first-seen order, resolves each
// patch's position count from its first sample, and produces a
// sheaf.Problem ready for fitting. Search fits one problem per candidate
// strategy and returns every result plus the strategy with the lowest
// obstruction: lower obstruction means the partition captures more of the
// data's algebraic structure.
//
// Conditioning functions are pure: they see one sample and its target,
// never solver internals.
//
// Errors (sentinel):
//
//	– ErrLengthMismatch  if samples and targets differ in length.
//	– ErrNoSamples       if there is no data to partition.
//	– ErrNilConditioning if the conditioning function is nil.
//	– ErrNoStrategies    if Search is given nothing to try.
//
// Example usage:
//
//	best, all, err := discover.Search(samples, targets,
//	    sheaf.Config{NumCharacters: 4},
//	    []discover.Strategy{
//	        {Name: "single", Fn: discover.SinglePatch},
//	        {Name: "lead-mod-3", Fn: discover.LeadTokenMod(3)},
//	    })
package discover
