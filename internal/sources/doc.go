// Package sources fetches every content category shown in the documents.
//
// Two fetchers talk to remote services (the arXiv Atom API and the GitHub
// search API); four loaders read local files from the data directory. All of
// them share one contract: they never return an error. Any failure is logged
// and reduced to an empty list by Collect.
package sources
