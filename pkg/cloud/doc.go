// Package cloud implements the circular tag cloud layouter.
//
// A [Layouter] owns a fixed center and a [Cloud] of already placed
// rectangles. Each call to [Layouter.PlaceNext] finds a spot for one more
// rectangle that overlaps nothing in the cloud and sits as close to the
// center as the search allows, so repeated calls grow a dense, roughly
// circular cluster.
//
// # Algorithm
//
// The first rectangle is centered exactly on the center point. Every later
// rectangle is searched for on circles of growing integer radius:
//
//  1. Sample lattice points on the circle of the current radius, stepping the
//     angle by 1/r radians so samples stay about one unit apart.
//  2. Treat each sample as the rectangle corner nearest the center and build
//     the candidate with [geometry.Anchor].
//  3. Accept the first candidate that intersects nothing already placed.
//  4. When a whole turn yields nothing, move to radius r+1.
//
// The search radius never shrinks, and the sampling angle carries over
// between calls and radii, so later rectangles start where the cloud is
// already dense and do not all begin at angle zero.
//
// # Limits
//
// The search is unbounded by default. [WithMaxRadius] caps it, in which case
// PlaceNext fails with PLACEMENT_EXHAUSTED instead of searching further.
//
// A Layouter is not safe for concurrent use. Its [Cloud] must not be read
// while a PlaceNext call is in flight; copy it with [Cloud.Rectangles] first.
package cloud
