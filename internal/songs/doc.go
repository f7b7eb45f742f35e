// Package songs owns the favorite-songs data set and the query contract a list view renders from.
//
// A [Provider] holds the ordered song titles. It is constructed empty, populated with [Provider.Initialize]
// when a screen becomes active, and then answers three pull queries defined by [DataSource]:
//   - [DataSource.SectionCount] : always one section
//   - [DataSource.RowCount] : number of titles in section 0, zero for any other section
//   - [DataSource.Title] : the title at a zero-based row index
//
// Title fails with an error wrapping [shared.ErrIndexOutOfRange] for indices outside [0, RowCount(0)),
// including every index before Initialize has run.
//
// A Provider is owned by a single rendering loop and is not safe for concurrent use.
package songs
