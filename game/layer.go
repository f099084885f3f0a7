package game

// Layer is a bitmask of collision layers. A query only considers surfaces whose layer shares at least one bit
// with the query mask.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerGround
	LayerCameraBlocking

	LayerAll Layer = ^Layer(0)
)

// Matches returns true if the two masks share a layer.
func (l Layer) Matches(mask Layer) bool {
	return l&mask != 0
}
