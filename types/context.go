package types

import (
	"fmt"
	"os"
)

// DataSource is the addressable byte source a script inspects.
// Addresses are logical offsets in [0, Size); the base address only
// records where the host has mapped the data.
type DataSource interface {
	// ReadData copies len(buf) bytes starting at address into buf.
	// Reads beyond the end of the source fail.
	ReadData(address uint64, buf []byte) error
	BaseAddress() uint64
	Size() uint64
}

// MemSource is an in-memory DataSource
type MemSource struct {
	Base uint64
	Data []byte
}

// NewMemSource creates a DataSource backed by the given bytes
func NewMemSource(data []byte) *MemSource {
	return &MemSource{Data: data}
}

// ReadData copies len(buf) bytes starting at address into buf
func (m *MemSource) ReadData(address uint64, buf []byte) error {
	end := address + uint64(len(buf))
	if end < address || end > uint64(len(m.Data)) {
		return fmt.Errorf("read out of range: address 0x%X, size %d, data size %d", address, len(buf), len(m.Data))
	}
	copy(buf, m.Data[address:end])
	return nil
}

// BaseAddress returns where the host has mapped the data
func (m *MemSource) BaseAddress() uint64 {
	return m.Base
}

// Size returns the number of addressable bytes
func (m *MemSource) Size() uint64 {
	return uint64(len(m.Data))
}

// EvalContext holds the state of one in-progress script evaluation.
// It is bound to exactly one data source and owned by the evaluator
// for the duration of that run; primitives never retain it.
type EvalContext struct {
	Data    DataSource
	Console *Console

	// Env resolves environment variables for std.env.
	// Defaults to os.LookupEnv; hosts override it to sandbox lookups.
	Env func(name string) (string, bool)

	// AllowDangerous permits primitives that touch the filesystem or
	// network. The trust decision itself is made by the host.
	AllowDangerous bool
}

// NewEvalContext creates a context bound to the given data source,
// logging through the standard logger
func NewEvalContext(data DataSource) *EvalContext {
	return &EvalContext{
		Data:    data,
		Console: NewConsole(nil),
		Env:     os.LookupEnv,
	}
}

// ReadData copies len(buf) bytes starting at address into buf
func (ctx *EvalContext) ReadData(address uint64, buf []byte) error {
	return ctx.Data.ReadData(address, buf)
}

// BaseAddress returns the data source's base address
func (ctx *EvalContext) BaseAddress() uint64 {
	return ctx.Data.BaseAddress()
}

// DataSize returns the data source's size in bytes
func (ctx *EvalContext) DataSize() uint64 {
	return ctx.Data.Size()
}

// EnvVariable looks up an environment variable
func (ctx *EvalContext) EnvVariable(name string) (string, bool) {
	if ctx.Env == nil {
		return "", false
	}
	return ctx.Env(name)
}
