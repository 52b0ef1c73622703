// Package processor contains the run logic of dailyread. It builds the
// fetchers, translator and annotator from the configuration, collects every
// content category in turn, and hands the assembled context to the renderer.
// This package is the coordinator between all other components.
package processor
