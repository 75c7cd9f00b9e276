// Package tree grows randomized binary decision trees.
//
// A Grower repeatedly asks a domain Generator for atomic predicates,
// composes them into single, "and" or "or" tests (Compose), partitions the
// node's examples with each candidate and commits the split with the highest
// information gain. Growth is bounded by depth, node entropy and a minimum
// gain. Leaves predict the median of their labels.
package tree
