package spacedlist

import (
	"github.com/tinylib/msgp/msgp"

	"github.com/Workiva/spaced-list/position"
)

// Int64Snapshot is a serializable capture of a SpacedList[int64]'s shallow
// state: its size, length, and packed link-length array. It exists because
// msgp's code generator does not support generic types, so SpacedList[S]
// itself is never msgp-encoded, only this concrete projection of it.
// Sublists are not part of the snapshot; callers that need to persist a
// full tree walk it themselves and snapshot each level.
type Int64Snapshot struct {
	Size        int     `msg:"size"`
	Length      int64   `msg:"length"`
	LinkLengths []int64 `msg:"linklengths"`
}

// SnapshotOf captures sl's shallow state (excluding sublists) as an
// Int64Snapshot.
func SnapshotOf(sl *SpacedList[position.Int64]) Int64Snapshot {
	return Int64Snapshot{
		Size:        sl.size,
		Length:      int64(sl.length),
		LinkLengths: toRawInt64s(sl.linkLengths),
	}
}

// Restore reconstructs a standalone SpacedList[int64] from a snapshot. The
// returned list has no sublists; Insert and AppendNode on it behave
// normally from that point on.
func Restore(snap Int64Snapshot) *SpacedList[position.Int64] {
	sl := New[position.Int64]()
	sl.size = snap.Size
	sl.length = position.Int64(snap.Length)
	sl.linkLengths = fromRawInt64s(snap.LinkLengths)
	sl.sublists = make([]*SpacedList[position.Int64], max(snap.Size-1, 0))
	return sl
}

func toRawInt64s(s []position.Int64) []int64 {
	out := make([]int64, len(s))
	for i, v := range s {
		out[i] = int64(v)
	}
	return out
}

func fromRawInt64s(s []int64) []position.Int64 {
	out := make([]position.Int64, len(s))
	for i, v := range s {
		out[i] = position.Int64(v)
	}
	return out
}

// MarshalMsg implements msgp.Marshaler by hand, in the shape msgp's code
// generator produces for a 3-field struct.
func (z *Int64Snapshot) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.AppendMapHeader(b, 3)
	o = msgp.AppendString(o, "size")
	o = msgp.AppendInt(o, z.Size)
	o = msgp.AppendString(o, "length")
	o = msgp.AppendInt64(o, z.Length)
	o = msgp.AppendString(o, "linklengths")
	o = msgp.AppendArrayHeader(o, uint32(len(z.LinkLengths)))
	for _, v := range z.LinkLengths {
		o = msgp.AppendInt64(o, v)
	}
	return o, nil
}

// UnmarshalMsg implements msgp.Unmarshaler.
func (z *Int64Snapshot) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var n uint32
	n, o, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return o, err
	}
	for i := uint32(0); i < n; i++ {
		field, o, err = msgp.ReadMapKeyZC(o)
		if err != nil {
			return o, err
		}
		switch string(field) {
		case "size":
			z.Size, o, err = msgp.ReadIntBytes(o)
		case "length":
			z.Length, o, err = msgp.ReadInt64Bytes(o)
		case "linklengths":
			var count uint32
			count, o, err = msgp.ReadArrayHeaderBytes(o)
			if err != nil {
				return o, err
			}
			z.LinkLengths = make([]int64, count)
			for j := range z.LinkLengths {
				z.LinkLengths[j], o, err = msgp.ReadInt64Bytes(o)
				if err != nil {
					return o, err
				}
			}
		default:
			o, err = msgp.Skip(o)
		}
		if err != nil {
			return o, err
		}
	}
	return o, nil
}

// Msgsize returns an upper bound on the encoded size in bytes.
func (z *Int64Snapshot) Msgsize() int {
	s := msgp.MapHeaderSize
	s += msgp.StringPrefixSize + len("size") + msgp.IntSize
	s += msgp.StringPrefixSize + len("length") + msgp.Int64Size
	s += msgp.StringPrefixSize + len("linklengths") + msgp.ArrayHeaderSize
	s += len(z.LinkLengths) * msgp.Int64Size
	return s
}
