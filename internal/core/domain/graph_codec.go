package domain

import (
	"errors"

	"go.trai.ch/rmake/internal/codec"
	"go.trai.ch/zerr"
)

// GraphCacheVersion is the current on-disk cache format version.
const GraphCacheVersion uint32 = 1

func encodeStringSeq(w *codec.Writer, v []string) error {
	return codec.EncodeSeq(w, v, codec.EncodeString)
}

func decodeStringSeq(r *codec.Reader) ([]string, error) {
	return codec.DecodeSeq(r, codec.DecodeString)
}

func encodeU32(w *codec.Writer, v NodeID) error {
	codec.EncodeU32(w, uint32(v))
	return nil
}

func decodeU32AsNodeID(r *codec.Reader) (NodeID, error) {
	v, err := codec.DecodeU32(r)
	return NodeID(v), err
}

func encodeU32Seq(w *codec.Writer, v []NodeID) error {
	return codec.EncodeSeq(w, v, encodeU32)
}

func decodeU32Seq(r *codec.Reader) ([]NodeID, error) {
	return codec.DecodeSeq(r, decodeU32AsNodeID)
}

// Encode serializes the graph into the versioned binary cache format described
// in the on-disk cache layout: a version header followed by the command
// table, both adjacency tables, the name index, the flattened phony set, and
// the name table.
func (g *Graph) Encode() ([]byte, error) {
	w := codec.NewWriter(4096)
	codec.EncodeU32(w, GraphCacheVersion)

	if err := codec.EncodeSeq(w, g.commands, encodeStringSeq); err != nil {
		return nil, wrapEncode(err)
	}
	if err := codec.EncodeSeq(w, g.children, encodeU32Seq); err != nil {
		return nil, wrapEncode(err)
	}
	if err := codec.EncodeSeq(w, g.parents, encodeU32Seq); err != nil {
		return nil, wrapEncode(err)
	}

	idEntries := make([]codec.Entry[string, NodeID], g.Size())
	for id := 0; id < g.Size(); id++ {
		idEntries[id] = codec.Entry[string, NodeID]{Key: g.names[id], Val: NodeID(id)}
	}
	if err := codec.EncodeMap(w, idEntries, codec.EncodeString, encodeU32); err != nil {
		return nil, wrapEncode(err)
	}

	phonyList := make([]NodeID, 0, len(g.phony))
	for id := range g.phony {
		phonyList = append(phonyList, id)
	}
	if err := codec.EncodeSeq(w, phonyList, encodeU32); err != nil {
		return nil, wrapEncode(err)
	}

	if err := encodeStringSeq(w, g.names); err != nil {
		return nil, wrapEncode(err)
	}

	return w.Bytes(), nil
}

// wrapEncode translates a codec-level overflow into the domain's own
// ErrEncodeOverflow sentinel at the graph boundary, the same way wrapCorrupt
// translates every codec read failure into ErrCacheCorrupt.
func wrapEncode(err error) error {
	if errors.Is(err, codec.ErrOverflow) {
		return zerr.With(zerr.Wrap(ErrEncodeOverflow, "encode graph"), "cause", err.Error())
	}
	return err
}

// DecodeGraph reconstructs a Graph from the cache format Encode produces. It
// rejects a version mismatch, a size mismatch between the per-node arrays,
// and any trailing bytes left after the payload.
func DecodeGraph(buf []byte) (*Graph, error) {
	if len(buf) == 0 {
		return nil, ErrCacheEmpty
	}

	r := codec.NewReader(buf)

	version, err := codec.DecodeU32(r)
	if err != nil {
		return nil, wrapCorrupt(err)
	}
	if version != GraphCacheVersion {
		return nil, ErrCacheVersionMismatch
	}

	commands, err := codec.DecodeSeq(r, decodeStringSeq)
	if err != nil {
		return nil, wrapCorrupt(err)
	}
	children, err := codec.DecodeSeq(r, decodeU32Seq)
	if err != nil {
		return nil, wrapCorrupt(err)
	}
	parents, err := codec.DecodeSeq(r, decodeU32Seq)
	if err != nil {
		return nil, wrapCorrupt(err)
	}
	idOf, err := codec.DecodeMap(r, codec.DecodeString, decodeU32AsNodeID)
	if err != nil {
		return nil, wrapCorrupt(err)
	}
	phonyList, err := decodeU32Seq(r)
	if err != nil {
		return nil, wrapCorrupt(err)
	}
	names, err := decodeStringSeq(r)
	if err != nil {
		return nil, wrapCorrupt(err)
	}

	if !r.Done() {
		return nil, ErrCacheCorrupt
	}

	n := len(commands)
	if len(children) != n || len(parents) != n || len(names) != n || len(idOf) != n {
		return nil, ErrSizeMismatch
	}

	phony := make(map[NodeID]struct{}, len(phonyList))
	for _, id := range phonyList {
		phony[id] = struct{}{}
	}

	return &Graph{
		commands: commands,
		children: children,
		parents:  parents,
		idOf:     idOf,
		names:    names,
		phony:    phony,
	}, nil
}

func wrapCorrupt(_ error) error {
	return ErrCacheCorrupt
}
