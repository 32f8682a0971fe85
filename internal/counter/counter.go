// Package counter implements the account layout and instruction encoding of the on-chain
// counter program. Both are borsh encoded: the account holds a single u32, an instruction
// is a one byte variant tag followed by a u32 operand.
package counter

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// CounterSize is the space in bytes a counter account is created with.
const CounterSize = 4

// InstructionSize is the length of an encoded instruction.
const InstructionSize = 5

var (
	ErrInvalidAccountData = errors.New("invalid counter account data")
	ErrInvalidInstruction = errors.New("invalid counter instruction")
	ErrOverflow           = errors.New("counter overflow")
	ErrUnderflow          = errors.New("counter underflow")
)

// Counter is the state stored in a counter account
type Counter struct {
	Count uint32
}

// Kind is the variant tag of an instruction.
type Kind uint8

const (
	Increment Kind = iota
	Decrement
)

func (k Kind) String() string {
	switch k {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind accepts "increment"/"inc" and "decrement"/"dec".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increment", "inc":
		return Increment, nil
	case "decrement", "dec":
		return Decrement, nil
	}
	return 0, errors.Wrapf(ErrInvalidInstruction, "unknown kind %q", s)
}

// Instruction changes the count by Value.
type Instruction struct {
	Kind  Kind
	Value uint32
}

// Encode serializes the counter into its CounterSize byte account layout.
func Encode(c Counter) ([]byte, error) {
	data, err := bin.MarshalBorsh(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode counter")
	}
	return data, nil
}

// Decode parses account data. A freshly created, zero-initialised account decodes to count 0.
// Trailing bytes are rejected.
func Decode(data []byte) (Counter, error) {
	if len(data) != CounterSize {
		return Counter{}, errors.Wrapf(ErrInvalidAccountData, "expected %d bytes, got %d", CounterSize, len(data))
	}

	var c Counter
	if err := bin.UnmarshalBorsh(&c, data); err != nil {
		return Counter{}, errors.Wrap(ErrInvalidAccountData, err.Error())
	}
	return c, nil
}

// EncodeInstruction serializes an instruction as program input data.
func EncodeInstruction(ix Instruction) ([]byte, error) {
	if ix.Kind != Increment && ix.Kind != Decrement {
		return nil, errors.Wrapf(ErrInvalidInstruction, "unknown kind %d", uint8(ix.Kind))
	}

	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteUint8(uint8(ix.Kind)); err != nil {
		return nil, errors.Wrap(err, "failed to encode instruction kind")
	}
	if err := enc.WriteUint32(ix.Value, binary.LittleEndian); err != nil {
		return nil, errors.Wrap(err, "failed to encode instruction value")
	}

	return buf.Bytes(), nil
}

// DecodeInstruction parses program input data.
func DecodeInstruction(data []byte) (Instruction, error) {
	if len(data) != InstructionSize {
		return Instruction{}, errors.Wrapf(ErrInvalidInstruction, "expected %d bytes, got %d", InstructionSize, len(data))
	}

	dec := bin.NewBorshDecoder(data)
	tag, err := dec.ReadUint8()
	if err != nil {
		return Instruction{}, errors.Wrap(ErrInvalidInstruction, err.Error())
	}
	kind := Kind(tag)
	if kind != Increment && kind != Decrement {
		return Instruction{}, errors.Wrapf(ErrInvalidInstruction, "unknown variant %d", tag)
	}

	value, err := dec.ReadUint32(binary.LittleEndian)
	if err != nil {
		return Instruction{}, errors.Wrap(ErrInvalidInstruction, err.Error())
	}

	return Instruction{Kind: kind, Value: value}, nil
}

// Apply executes ix against c with checked arithmetic.
func Apply(c Counter, ix Instruction) (Counter, error) {
	switch ix.Kind {
	case Increment:
		if ix.Value > math.MaxUint32-c.Count {
			return c, errors.Wrapf(ErrOverflow, "%d + %d", c.Count, ix.Value)
		}
		return Counter{Count: c.Count + ix.Value}, nil
	case Decrement:
		if ix.Value > c.Count {
			return c, errors.Wrapf(ErrUnderflow, "%d - %d", c.Count, ix.Value)
		}
		return Counter{Count: c.Count - ix.Value}, nil
	}

	return c, errors.Wrapf(ErrInvalidInstruction, "unknown kind %d", uint8(ix.Kind))
}

// AccountReader reads the raw data of a Solana account
type AccountReader interface {
	GetAccountData(ctx context.Context, account solana.PublicKey) ([]byte, error)
}

// Fetch reads and decodes the counter stored in account.
func Fetch(ctx context.Context, reader AccountReader, account solana.PublicKey) (Counter, error) {
	data, err := reader.GetAccountData(ctx, account)
	if err != nil {
		return Counter{}, err
	}

	return Decode(data)
}
