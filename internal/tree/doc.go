// Package tree implements the recursive operations layered on a pathname.Probe:
// the depth-bounded Walker, the bottom-up Remover and the prefix-by-prefix Creator.
//
// Every operation has a blocking form and a non-blocking form returning a
// channel that receives exactly one pathname.Outcome. Only WalkAsync performs
// I/O in parallel; RemoveAsync and CreateAsync run their sequential loop on a
// single goroutine.
//
// # Usage
//
//	probe := filesystem.NewOSProbe()
//	walker := tree.NewWalker(probe, logger, tree.Options{})
//
//	paths, err := walker.Walk(ctx, pathname.New("/tmp/build"), pathname.MaxDepth(2))
//
//	out := <-walker.WalkAsync(ctx, pathname.New("/tmp/build"), pathname.Unbounded)
//	if out.Err != nil {
//	    return out.Err
//	}
package tree
