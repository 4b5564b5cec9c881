// Package pool implements the process-pool worker protocol: a fixed set of
// self-reexecuted worker subprocesses, each reachable over a pair of
// unidirectional pipes (the child's stdin and stdout), framed with the
// length-prefixed encoding from the codec package.
package pool

import (
	"encoding/binary"
	"io"

	"go.trai.ch/rmake/internal/codec"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// resultFrameSize is the fixed wire size of a result frame: u32 node id
// followed by i32 exit code.
const resultFrameSize = 8

// ErrShortFrame is returned when a frame read hits EOF mid-frame.
var ErrShortFrame = zerr.New("short result frame")

// task is one parent-to-child task frame. A Commands-less task with
// NodeID == 0 sent through writeShutdown is the shutdown sentinel; the
// distinguishing property the worker loop actually checks is an empty
// Commands slice, matching the wire rule "command_count == 0".
type task struct {
	NodeID   domain.NodeID
	Commands []string
}

// writeTask writes one task frame to w in a single Write call: u32 node_id,
// u32 command_count, then for each command a u32 byte_length followed by its
// raw bytes. A single contiguous write keeps the frame from interleaving
// with any other writer on the same pipe, though in practice each pipe has
// exactly one writer for its lifetime.
func writeTask(w io.Writer, t task) error {
	cw := codec.NewWriter(64)
	codec.EncodeU32(cw, uint32(t.NodeID))
	if err := codec.EncodeSeq(cw, t.Commands, codec.EncodeString); err != nil {
		return err
	}
	_, err := w.Write(cw.Bytes())
	return err
}

// writeShutdown writes the shutdown sentinel: a task frame with
// command_count == 0.
func writeShutdown(w io.Writer) error {
	return writeTask(w, task{})
}

func readU32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// readTask reads one task frame from r, streaming each field since the
// frame's total length is not known until the command count has been read.
// io.EOF from the very first read is returned unmodified so callers can
// distinguish "pipe closed before next task" from a malformed frame.
func readTask(r io.Reader) (task, error) {
	nodeID, err := readU32(r)
	if err != nil {
		return task{}, err
	}
	count, err := readU32(r)
	if err != nil {
		return task{}, ErrShortFrame
	}

	commands := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		n, err := readU32(r)
		if err != nil {
			return task{}, ErrShortFrame
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return task{}, ErrShortFrame
		}
		commands = append(commands, string(buf))
	}

	return task{NodeID: domain.NodeID(nodeID), Commands: commands}, nil
}

// readResult reads one fixed-size result frame from r.
func readResult(r io.Reader) (domain.NodeID, int32, error) {
	var buf [resultFrameSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if n == 0 {
			return 0, 0, io.EOF
		}
		return 0, 0, ErrShortFrame
	}
	rd := codec.NewReader(buf[:])
	nodeID, err := codec.DecodeU32(rd)
	if err != nil {
		return 0, 0, ErrShortFrame
	}
	exitCode, err := codec.DecodeI32(rd)
	if err != nil {
		return 0, 0, ErrShortFrame
	}
	return domain.NodeID(nodeID), exitCode, nil
}

// writeResult writes one fixed-size result frame to w.
func writeResult(w io.Writer, id domain.NodeID, exitCode int32) error {
	cw := codec.NewWriter(resultFrameSize)
	codec.EncodeU32(cw, uint32(id))
	codec.EncodeI32(cw, exitCode)
	_, err := w.Write(cw.Bytes())
	return err
}
