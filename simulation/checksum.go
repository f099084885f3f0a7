package simulation

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// Checksum returns a hash of the state of every character and of the camera. Two simulations that were fed
// the same settings, world and events produce the same checksum.
func (s *Simulation) Checksum() uint64 {
	buf := make([]byte, 0, 64*(s.characters.Len()+1))
	buf = binary.LittleEndian.AppendUint64(buf, s.tick)

	for el := s.characters.Front(); el != nil; el = el.Next() {
		st := el.Value.State()
		buf = append(buf, el.Key...)
		buf = appendVec3(buf, st.Position)
		buf = appendFloat(buf, st.Yaw)
		buf = appendFloat(buf, st.VerticalVelocity)
		buf = appendVec3(buf, st.Move)
		buf = append(buf, byte(st.Ground))
	}

	cam := s.rig.State()
	buf = append(buf, byte(s.rig.Binding()))
	buf = appendFloat(buf, cam.Yaw)
	buf = appendFloat(buf, cam.Pitch)
	buf = appendFloat(buf, cam.TargetDistance)
	buf = appendFloat(buf, cam.EffectiveDistance)
	buf = appendVec3(buf, cam.CameraPosition)
	return xxh3.Hash(buf)
}

func appendFloat(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}

func appendVec3(buf []byte, v mgl32.Vec3) []byte {
	for _, f := range v {
		buf = appendFloat(buf, f)
	}
	return buf
}
