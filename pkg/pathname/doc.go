// Package pathname defines the public types of the pathname module.
//
// Path is an immutable, normalized filesystem path with a small algebra
// (Join, Parent, Base, Ext, Components, Traverse). Tree operations built on
// top of it are described by the Walker, Remover and Creator interfaces and
// consume single-node primitives through a Probe.
//
// Every tree operation comes in two forms: a blocking method that returns
// its result directly, and an Async method that returns a channel which
// receives exactly one Outcome.
//
//	root := pathname.New("/tmp/project")
//	paths, err := walker.Walk(ctx, root, pathname.Unbounded)
//
//	out := <-walker.WalkAsync(ctx, root, pathname.MaxDepth(2))
//	if out.Err != nil {
//	    return out.Err
//	}
//
// Errors are *Error values carrying a Kind; match them with errors.Is
// against ErrNotFound, ErrPermissionDenied, ErrNotADirectory,
// ErrDirectoryNotEmpty and ErrIO.
package pathname
