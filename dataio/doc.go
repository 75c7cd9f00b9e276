// Package dataio reads the movie catalog, the training ratings and the
// rating tasks from headerless ';'-delimited tables, and writes the
// completed tasks either as a table of the same shape or into SQLite.
package dataio
