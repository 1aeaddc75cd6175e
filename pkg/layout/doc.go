// Package layout provides the serialization format for computed tag clouds.
//
// A [Layout] is the wire representation of a finished cloud: the center, the
// placed rectangles in placement order and the parameters that produced them.
// It is used for JSON files, HTTP responses, cache entries and as the input
// to every renderer.
//
// # Format
//
//	{
//	  "id": "8f0c8c5e-...",
//	  "center": {"x": 512, "y": 512},
//	  "radius": 37,
//	  "rectangles": [
//	    {"min": {"x": 462, "y": 492}, "size": {"width": 99, "height": 40}}
//	  ]
//	}
//
// [UnmarshalLayout] rejects layouts whose rectangles overlap or have negative
// sizes, so a decoded Layout always satisfies the cloud invariants.
//
// # Sizes
//
// [ReadSizes] decodes the input format of `tagcloud layout --sizes`: a JSON
// array of {"width", "height"} objects.
package layout
