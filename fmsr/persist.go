package fmsr

import (
	"fmt"
	"strconv"

	"github.com/nccloud/fmsr/matrix"
)

// MarshalState serializes em and hints into the layout external storage
// adapters expect: the raw nc*nn encoding-matrix bytes, followed by the
// decimal ASCII chunk size, followed by a 4-digit zero-padded decimal
// hint field encoding last_repaired*10 + last_used. This package never
// reads or writes storage itself; MarshalState exists so a caller that
// wants this exact wire format doesn't have to hand-roll it.
func MarshalState(em *matrix.Dense, chunkSize int, hints RepairHints) []byte {
	hintField := int(hints.LastRepaired)*10 + int(hints.LastUsed)

	out := make([]byte, 0, len(em.Data)+20)
	out = append(out, em.Data...)
	out = append(out, strconv.Itoa(chunkSize)...)
	out = append(out, fmt.Sprintf("%04d", hintField)...)

	return out
}

// UnmarshalState is the inverse of MarshalState. nc and nn must be the
// caller's NC(k,n) and NN(k,n) for the encoding matrix embedded in buf.
func UnmarshalState(buf []byte, nc, nn int) (em *matrix.Dense, chunkSize int, hints RepairHints, err error) {
	matrixLen := nc * nn
	if len(buf) < matrixLen+4 {
		return nil, 0, RepairHints{}, fmt.Errorf("fmsr: UnmarshalState: buffer too short: have %d bytes, need at least %d", len(buf), matrixLen+4)
	}

	hintField := buf[len(buf)-4:]
	rest := buf[matrixLen : len(buf)-4]

	em, err = matrix.NewDense(nc, nn)
	if err != nil {
		return nil, 0, RepairHints{}, err
	}
	copy(em.Data, buf[:matrixLen])

	chunkSize, err = strconv.Atoi(string(rest))
	if err != nil {
		return nil, 0, RepairHints{}, fmt.Errorf("fmsr: UnmarshalState: bad chunk size field %q: %w", rest, err)
	}

	hintValue, err := strconv.Atoi(string(hintField))
	if err != nil {
		return nil, 0, RepairHints{}, fmt.Errorf("fmsr: UnmarshalState: bad hint field %q: %w", hintField, err)
	}
	hints = RepairHints{LastRepaired: byte(hintValue / 10), LastUsed: byte(hintValue % 10)}

	return em, chunkSize, hints, nil
}
