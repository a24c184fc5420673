// Package mediawiki renders parsed card fields as MediaWiki markup.
//
// Colors are tracked across a whole document by a ColorState: text starts
// black, a black span after black text is written without a wrapper, and
// adjacent top-level spans of the same color share one <span> wrapper.
package mediawiki
