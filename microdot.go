// Package microdot decodes the absolute position of a camera sensor
// against a printed Anoto-style microdot pattern from a single 36x36
// grayscale snapshot. It wires together, in order, a fixed-threshold
// binarizer, a connected-component blob labeler and splitter, a carrier
// grid estimator, a direction classifier, and a codec adapter that hands a
// complete 4x4 symbol block to an externally supplied PositionCodec.
//
// The pipeline is a pure, single-threaded, synchronous transformation: one
// Image in, one Result (or a typed error) out. Nothing persists across
// calls to Decode.
package microdot

import (
	"github.com/anoto-go/microdot/binarizer"
	"github.com/anoto-go/microdot/blob"
	"github.com/anoto-go/microdot/classify"
	"github.com/anoto-go/microdot/codec"
	"github.com/anoto-go/microdot/geom"
	"github.com/anoto-go/microdot/grid"
)

// Image is a fixed-size grayscale camera snapshot.
type Image = geom.Image

// SymbolGrid is the classified, trimmed grid the codec adapter scans.
type SymbolGrid = classify.SymbolGrid

// Position, Section, Result, and PositionCodec are the external codec's
// vocabulary, re-exported so callers never need to import the codec
// package directly.
type (
	Position      = codec.Position
	Section       = codec.Section
	Result        = codec.Result
	PositionCodec = codec.PositionCodec
)

// Decode runs the full pipeline against a captured frame, using pc as the
// external position codec. It returns ErrInsufficientGeometry if too few
// dots (or grid-aligned pairs between them) survive to infer the carrier
// grid, ErrNoDecodableRegion if the classified grid has no clean 4x4
// block, or ErrCodecRejected if pc refuses the block it is handed. All
// three are terminal for the frame.
func Decode(frame *Image, pc PositionCodec) (Result, error) {
	symbols, err := ClassifyFrame(frame)
	if err != nil {
		return Result{}, err
	}
	return codec.Decode(symbols, pc)
}

// ClassifyFrame runs the pipeline as far as it can go without a
// PositionCodec: binarize, label and split blobs, estimate the carrier
// grid, classify, and trim. It returns ErrInsufficientGeometry under the
// same conditions as Decode. This is split out for tooling that wants to
// inspect the symbol grid directly, since the codec is an external
// collaborator this package does not implement.
func ClassifyFrame(frame *Image) (*SymbolGrid, error) {
	mask, err := binarizer.NewFixedThreshold(frame).BlackMatrix()
	if err != nil {
		return nil, err
	}

	blobs := blob.SplitOversized(blob.Label(mask))
	centroids := blob.Centroids(blobs)

	model, err := grid.Estimate(centroids)
	if err != nil {
		return nil, err
	}

	rotated := make([]geom.Point, len(centroids))
	for i, c := range centroids {
		rotated[i] = c.Rotate(-model.Rotation)
	}

	intersections, rows, cols := model.Intersections(rotated)
	return classify.Trim(classify.Classify(intersections, rows, cols, rotated)), nil
}
