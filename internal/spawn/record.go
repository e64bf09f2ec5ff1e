// Package spawn carries vehicle-spawn records from a producer to the
// simulation: the fixed-layout wire codec, a non-blocking stream reader, an
// in-process generator and the TCP producer that serves generated records.
package spawn

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// RecordSize is the encoded size of one Record.
//
// Layout (little-endian, C struct alignment):
//
//	0  int32 vehicle id
//	4  byte  road ('A'..'D'), 3 bytes padding
//	8  int32 lane
//	12 int32 speed
//	16 int32 width
//	20 int32 height
//	24 byte  target road, 3 bytes padding
//	28 int32 target lane
const RecordSize = 32

// ErrInvalidRecord marks a record that decodes but violates the domain.
var ErrInvalidRecord = errors.New("spawn: invalid record")

// Record is one vehicle-spawn request as sent by the producer.
type Record struct {
	VehicleID  int32
	Road       byte
	Lane       int32
	Speed      int32
	Width      int32
	Height     int32
	TargetRoad byte
	TargetLane int32
}

// MarshalBinary encodes r into RecordSize bytes.
func (r Record) MarshalBinary() ([]byte, error) {
	buf := make([]byte, RecordSize)
	r.put(buf)
	return buf, nil
}

func (r Record) put(buf []byte) {
	le := binary.LittleEndian
	le.PutUint32(buf[0:], uint32(r.VehicleID))
	buf[4] = r.Road
	le.PutUint32(buf[8:], uint32(r.Lane))
	le.PutUint32(buf[12:], uint32(r.Speed))
	le.PutUint32(buf[16:], uint32(r.Width))
	le.PutUint32(buf[20:], uint32(r.Height))
	buf[24] = r.TargetRoad
	le.PutUint32(buf[28:], uint32(r.TargetLane))
}

// UnmarshalBinary decodes exactly RecordSize bytes. Padding is ignored.
func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("spawn: record is %d bytes, expected %d", len(data), RecordSize)
	}
	le := binary.LittleEndian
	r.VehicleID = int32(le.Uint32(data[0:]))
	r.Road = data[4]
	r.Lane = int32(le.Uint32(data[8:]))
	r.Speed = int32(le.Uint32(data[12:]))
	r.Width = int32(le.Uint32(data[16:]))
	r.Height = int32(le.Uint32(data[20:]))
	r.TargetRoad = data[24]
	r.TargetLane = int32(le.Uint32(data[28:]))
	return nil
}

// Validate checks that r names real roads and lanes, a different target road,
// a positive speed and a positive footprint.
func (r Record) Validate() error {
	switch {
	case r.VehicleID < 0:
		return fmt.Errorf("%w: negative vehicle id %d", ErrInvalidRecord, r.VehicleID)
	case !validRoad(r.Road):
		return fmt.Errorf("%w: vehicle %d: road %q", ErrInvalidRecord, r.VehicleID, r.Road)
	case !validRoad(r.TargetRoad):
		return fmt.Errorf("%w: vehicle %d: target road %q", ErrInvalidRecord, r.VehicleID, r.TargetRoad)
	case r.Road == r.TargetRoad:
		return fmt.Errorf("%w: vehicle %d: target road equals origin %q", ErrInvalidRecord, r.VehicleID, r.Road)
	case !validLane(r.Lane):
		return fmt.Errorf("%w: vehicle %d: lane %d", ErrInvalidRecord, r.VehicleID, r.Lane)
	case !validLane(r.TargetLane):
		return fmt.Errorf("%w: vehicle %d: target lane %d", ErrInvalidRecord, r.VehicleID, r.TargetLane)
	case r.Speed <= 0:
		return fmt.Errorf("%w: vehicle %d: speed %d", ErrInvalidRecord, r.VehicleID, r.Speed)
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: vehicle %d: footprint %dx%d", ErrInvalidRecord, r.VehicleID, r.Width, r.Height)
	}
	return nil
}

// String is used in log lines.
func (r Record) String() string {
	return fmt.Sprintf("#%d %c%d->%c%d", r.VehicleID, r.Road, r.Lane, r.TargetRoad, r.TargetLane)
}

func validRoad(b byte) bool {
	return b >= 'A' && b <= 'D'
}

func validLane(l int32) bool {
	return l >= 1 && l <= 3
}
