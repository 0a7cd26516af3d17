// Package scaffold generates the boilerplate files for one resolved target:
// the component stub, the barrel index file, and the CSS module. It powers the
// "uigen new" command. Contents come from embedded templates; the barrel file
// is written idempotently so re-scaffolding into a shared directory never
// clobbers re-exports added by hand.
package scaffold
