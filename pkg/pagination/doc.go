// Package pagination builds the metadata envelope around paginated query
// results.
//
// The envelope carries the total record count, the 0-indexed current page,
// the page size, derived neighbor pages and the records themselves. Neighbor
// pages serialize as null when there is no previous or next page, so clients
// can follow them without arithmetic of their own.
//
// # Usage
//
//	page := pagination.New(plans, total, req.Page, req.Limit)
//	respond.JSON(w, http.StatusOK, page)
package pagination
