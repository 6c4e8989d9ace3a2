// Package selection holds the interactive state of one rendered page: the
// about carousel position, the active services tab and the mobile menu flag.
//
// Every transition is a total function over valid state. Values are owned by
// a single page instance and are not safe for concurrent use; handlers build a
// fresh State per request from the parameters the page sends back.
package selection
