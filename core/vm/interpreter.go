// Copyright 2024 The boringevm Authors
// This file is part of the boringevm library.
//
// The boringevm library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The boringevm library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the boringevm library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"golang.org/x/crypto/sha3"
)

// Executor runs a single bytecode program to completion against a fixed
// ExecutionEnvironment and AmbientContext. It holds no gas meter and makes
// no sub-calls: every CALL-family and CREATE-family opcode is simply absent
// from the dispatch table, by design, not by omission.
type Executor struct {
	code     []byte
	env      ExecutionEnvironment
	ambient  AmbientContext
	machine  *MachineState
	jumpdest map[int]bool
}

// NewExecutor returns an Executor ready to run code once. Jump destinations
// are validated once up front by scanning the whole program, skipping over
// PUSH immediate bytes so a byte that merely looks like 0x5b inside a
// PUSH's payload is never mistaken for a JUMPDEST.
func NewExecutor(code []byte, env ExecutionEnvironment, ambient AmbientContext) *Executor {
	return &Executor{
		code:     code,
		env:      env,
		ambient:  ambient,
		machine:  NewMachineState(),
		jumpdest: scanJumpdests(code),
	}
}

func scanJumpdests(code []byte) map[int]bool {
	dests := make(map[int]bool)
	for i := 0; i < len(code); {
		op := Decode(code[i])
		if op.Kind == KindJumpDest {
			dests[i] = true
		}
		if op.Kind == KindPush {
			i += 1 + op.N
			continue
		}
		i++
	}
	return dests
}

// Machine exposes the Executor's MachineState for inspection after Run
// returns, success or failure — the CLI dumps it either way.
func (ex *Executor) Machine() *MachineState {
	return ex.machine
}

// Run executes the program from offset 0 until STOP, RETURN, running off
// the end of the code (treated as an implicit STOP), or the first error.
func (ex *Executor) Run() (*Result, error) {
	result := &Result{}
	for {
		pc := ex.machine.PC.Get()
		if pc >= len(ex.code) {
			return result, nil
		}

		op := Decode(ex.code[pc])
		halted, err := ex.dispatch(op, result)
		if err != nil {
			return nil, err
		}
		if halted {
			return result, nil
		}
	}
}

// dispatch executes one decoded Operation against the machine state. It
// returns halted=true when the program should stop (STOP/RETURN), and
// otherwise advances the program counter itself — either past the
// instruction's width, or to a JUMP/JUMPI target.
func (ex *Executor) dispatch(op Operation, result *Result) (halted bool, err error) {
	st := ex.machine.Stack
	mem := ex.machine.Mem
	pc := &ex.machine.PC

	switch op.Kind {
	case KindStop:
		return true, nil

	case KindAdd:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.Add(a, b) })
	case KindMul:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.Mul(a, b) })
	case KindSub:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.Sub(a, b) })
	case KindDiv, KindSDiv:
		// SDIV is aliased to unsigned division; this spec does not give
		// the stack signed-integer interpretation (open question, decided).
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.Div(a, b) })
	case KindMod, KindSMod:
		// SMOD likewise aliased to unsigned MOD; mod-by-zero is zero,
		// which uint256.Int.Mod already returns on its own.
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.Mod(a, b) })
	case KindAddMod:
		return false, ex.addMod(st, pc)
	case KindMulMod:
		return false, ex.mulMod(st, pc)
	case KindExp:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.Exp(a, b) })

	case KindLt, KindSlt:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.SetBool(a.Lt(b)) })
	case KindGt, KindSgt:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.SetBool(a.Gt(b)) })
	case KindEq:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.SetBool(a.Eq(b)) })
	case KindIsZero:
		return false, ex.unaryOp(st, pc, func(z, a *Word) { z.SetBool(a.IsZero()) })
	case KindAnd:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.And(a, b) })
	case KindOr:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.Or(a, b) })
	case KindXor:
		return false, ex.binaryOp(st, pc, func(z, a, b *Word) { z.Xor(a, b) })
	case KindNot:
		return false, ex.unaryOp(st, pc, func(z, a *Word) { z.Not(a) })
	case KindByte:
		return false, ex.byteOp(st, pc)
	case KindShl:
		// Transposed by design: the byte named SHL performs a logical
		// right shift (spec.md §4.5's documented, intentional quirk).
		return false, ex.shiftOp(st, pc, func(z, val *Word, n uint) { z.Rsh(val, n) })
	case KindShr:
		return false, ex.shiftOp(st, pc, func(z, val *Word, n uint) { z.Lsh(val, n) })

	case KindSha3:
		return false, ex.sha3Op(st, mem, pc)

	case KindAddress:
		return false, ex.pushWord(st, pc, WordFromAddress(ex.env.ContractAddress))
	case KindBalance:
		return false, ex.balanceOp(st, pc)
	case KindCaller:
		return false, ex.pushWord(st, pc, WordFromAddress(ex.env.Caller))
	case KindCallValue:
		return false, ex.pushWord(st, pc, ex.env.Value)
	case KindCallDataLoad:
		return false, ex.callDataLoadOp(st, pc)
	case KindCallDataSize:
		var w Word
		w.SetUint64(uint64(len(ex.env.Calldata)))
		return false, ex.pushWord(st, pc, w)
	case KindCodeSize:
		var w Word
		w.SetUint64(uint64(len(ex.code)))
		return false, ex.pushWord(st, pc, w)
	case KindCodeCopy:
		return false, ex.codeCopyOp(st, mem, pc)

	case KindSelfBalance:
		// Deliberate divergence: reads the caller's balance, not the
		// executing contract's (spec.md §4.5, decided open question).
		return false, ex.selfBalanceOp(st, pc)

	case KindPop:
		if _, err := st.Pop(); err != nil {
			return false, err
		}
		pc.IncrementBy(1)
		return false, nil
	case KindMLoad:
		return false, ex.mloadOp(st, mem, pc)
	case KindMStore:
		return false, ex.mstoreOp(st, mem, pc)
	case KindMStore8:
		return false, ex.mstore8Op(st, mem, pc)
	case KindJump:
		return false, ex.jumpOp(st, pc)
	case KindJumpI:
		return false, ex.jumpIOp(st, pc)
	case KindPC:
		var w Word
		w.SetUint64(uint64(pc.Get()))
		return false, ex.pushWord(st, pc, w)
	case KindMSize:
		var w Word
		w.SetUint64(uint64(mem.Len()))
		return false, ex.pushWord(st, pc, w)
	case KindJumpDest:
		pc.IncrementBy(1)
		return false, nil

	case KindPush:
		return false, ex.pushImmediate(st, pc, op.N)
	case KindDup:
		return false, ex.dupOp(st, pc, op.N)
	case KindSwap:
		return false, ex.swapOp(st, pc, op.N)
	case KindLog:
		return false, ex.logOp(st, mem, pc, op.N, result)

	case KindReturn:
		return ex.returnOp(st, mem, result)

	default:
		return false, &InvalidOpcodeError{Opcode: byte(op.Raw)}
	}
}

func (ex *Executor) pushWord(st *Stack, pc *ProgramCounter, w Word) error {
	if err := st.Push(w); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) unaryOp(st *Stack, pc *ProgramCounter, f func(z, a *Word)) error {
	if err := st.requireHeight(1); err != nil {
		return err
	}
	a, _ := st.Pop()
	var z Word
	f(&z, &a)
	if err := st.Push(z); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) binaryOp(st *Stack, pc *ProgramCounter, f func(z, a, b *Word)) error {
	if err := st.requireHeight(2); err != nil {
		return err
	}
	a, _ := st.Pop()
	b, _ := st.Pop()
	var z Word
	f(&z, &a, &b)
	if err := st.Push(z); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) addMod(st *Stack, pc *ProgramCounter) error {
	if err := st.requireHeight(3); err != nil {
		return err
	}
	a, _ := st.Pop()
	b, _ := st.Pop()
	n, _ := st.Pop()
	// Wrapped-intermediate by design: Add wraps at 256 bits before the
	// outer Mod, deliberately not using uint256.Int's own AddMod (which
	// computes the unbounded canonical-EVM result instead).
	var sum, z Word
	sum.Add(&a, &b)
	z.Mod(&sum, &n)
	if err := st.Push(z); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) mulMod(st *Stack, pc *ProgramCounter) error {
	if err := st.requireHeight(3); err != nil {
		return err
	}
	a, _ := st.Pop()
	b, _ := st.Pop()
	n, _ := st.Pop()
	var prod, z Word
	prod.Mul(&a, &b)
	z.Mod(&prod, &n)
	if err := st.Push(z); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) byteOp(st *Stack, pc *ProgramCounter) error {
	if err := st.requireHeight(2); err != nil {
		return err
	}
	i, _ := st.Pop()
	val, _ := st.Pop()
	idx := 32 // out of range by default; ByteAt returns 0 for i>=32
	if i.IsUint64() && i.Uint64() < 32 {
		idx = int(i.Uint64())
	}
	var z Word
	z.SetUint64(uint64(ByteAt(&val, idx)))
	if err := st.Push(z); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) shiftOp(st *Stack, pc *ProgramCounter, f func(z, val *Word, n uint)) error {
	if err := st.requireHeight(2); err != nil {
		return err
	}
	shift, _ := st.Pop()
	val, _ := st.Pop()
	var z Word
	n := uint(256)
	if shift.IsUint64() && shift.Uint64() < 256 {
		n = uint(shift.Uint64())
	}
	f(&z, &val, n)
	if err := st.Push(z); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) sha3Op(st *Stack, mem *Memory, pc *ProgramCounter) error {
	if err := st.requireHeight(2); err != nil {
		return err
	}
	offsetW, _ := st.Pop()
	lengthW, _ := st.Pop()
	offset, err := ToIndex(&offsetW)
	if err != nil {
		return err
	}
	length, err := ToIndex(&lengthW)
	if err != nil {
		return err
	}
	data := mem.Read(offset, length)
	digest := sha3.Sum256(data)
	var z Word
	z.SetBytes(digest[:])
	if err := st.Push(z); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) balanceOp(st *Stack, pc *ProgramCounter) error {
	if err := st.requireHeight(1); err != nil {
		return err
	}
	addrW, _ := st.Pop()
	addr := ToAddress(&addrW)
	var z Word
	if ex.ambient.Accounts != nil {
		if acc, ok := ex.ambient.Accounts.AccountAt(addr); ok {
			z = acc.Balance
		}
	}
	if err := st.Push(z); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) selfBalanceOp(st *Stack, pc *ProgramCounter) error {
	var z Word
	if ex.ambient.Accounts != nil {
		if acc, ok := ex.ambient.Accounts.AccountAt(ex.env.Caller); ok {
			z = acc.Balance
		}
	}
	return ex.pushWord(st, pc, z)
}

func (ex *Executor) callDataLoadOp(st *Stack, pc *ProgramCounter) error {
	if err := st.requireHeight(1); err != nil {
		return err
	}
	offsetW, _ := st.Pop()
	offset, err := ToIndex(&offsetW)
	if err != nil {
		return err
	}
	buf := make([]byte, 32)
	if offset < len(ex.env.Calldata) {
		copy(buf, ex.env.Calldata[offset:])
	}
	var z Word
	z.SetBytes(buf)
	return ex.pushWord(st, pc, z)
}

func (ex *Executor) codeCopyOp(st *Stack, mem *Memory, pc *ProgramCounter) error {
	if err := st.requireHeight(3); err != nil {
		return err
	}
	destW, _ := st.Pop()
	offsetW, _ := st.Pop()
	lengthW, _ := st.Pop()
	dest, err := ToIndex(&destW)
	if err != nil {
		return err
	}
	offset, err := ToIndex(&offsetW)
	if err != nil {
		return err
	}
	length, err := ToIndex(&lengthW)
	if err != nil {
		return err
	}
	buf := make([]byte, length)
	if offset < len(ex.code) {
		end := offset + length
		if end > len(ex.code) {
			end = len(ex.code)
		}
		copy(buf, ex.code[offset:end])
	}
	mem.Write(dest, buf)
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) mloadOp(st *Stack, mem *Memory, pc *ProgramCounter) error {
	if err := st.requireHeight(1); err != nil {
		return err
	}
	offsetW, _ := st.Pop()
	offset, err := ToIndex(&offsetW)
	if err != nil {
		return err
	}
	var z Word
	z.SetBytes(mem.Read(offset, 32))
	return ex.pushWord(st, pc, z)
}

func (ex *Executor) mstoreOp(st *Stack, mem *Memory, pc *ProgramCounter) error {
	if err := st.requireHeight(2); err != nil {
		return err
	}
	offsetW, _ := st.Pop()
	val, _ := st.Pop()
	offset, err := ToIndex(&offsetW)
	if err != nil {
		return err
	}
	b := val.Bytes32()
	mem.Write(offset, b[:])
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) mstore8Op(st *Stack, mem *Memory, pc *ProgramCounter) error {
	if err := st.requireHeight(2); err != nil {
		return err
	}
	offsetW, _ := st.Pop()
	val, _ := st.Pop()
	offset, err := ToIndex(&offsetW)
	if err != nil {
		return err
	}
	mem.Write(offset, []byte{ByteAt(&val, 31)})
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) jumpOp(st *Stack, pc *ProgramCounter) error {
	if err := st.requireHeight(1); err != nil {
		return err
	}
	destW, _ := st.Pop()
	dest, err := ToIndex(&destW)
	if err != nil {
		return err
	}
	if !ex.jumpdest[dest] {
		return ErrJumpDestExpected
	}
	pc.SetExact(dest)
	return nil
}

func (ex *Executor) jumpIOp(st *Stack, pc *ProgramCounter) error {
	if err := st.requireHeight(2); err != nil {
		return err
	}
	destW, _ := st.Pop()
	cond, _ := st.Pop()
	if cond.IsZero() {
		pc.IncrementBy(1)
		return nil
	}
	dest, err := ToIndex(&destW)
	if err != nil {
		return err
	}
	if !ex.jumpdest[dest] {
		return ErrJumpDestExpected
	}
	pc.SetExact(dest)
	return nil
}

func (ex *Executor) pushImmediate(st *Stack, pc *ProgramCounter, n int) error {
	off := pc.Get()
	start := off + 1
	end := start + n
	if end > len(ex.code) {
		return ErrTruncatedPush
	}
	var z Word
	z.SetBytes(ex.code[start:end])
	if err := st.Push(z); err != nil {
		return err
	}
	pc.IncrementBy(1 + n)
	return nil
}

func (ex *Executor) dupOp(st *Stack, pc *ProgramCounter, n int) error {
	w, err := st.Peek(n - 1)
	if err != nil {
		return err
	}
	if err := st.Push(w); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) swapOp(st *Stack, pc *ProgramCounter, n int) error {
	top, err := st.Peek(0)
	if err != nil {
		return err
	}
	deep, err := st.Peek(n)
	if err != nil {
		return err
	}
	if err := st.Set(0, deep); err != nil {
		return err
	}
	if err := st.Set(n, top); err != nil {
		return err
	}
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) logOp(st *Stack, mem *Memory, pc *ProgramCounter, topicCount int, result *Result) error {
	if err := st.requireHeight(2 + topicCount); err != nil {
		return err
	}
	offsetW, _ := st.Pop()
	lengthW, _ := st.Pop()
	offset, err := ToIndex(&offsetW)
	if err != nil {
		return err
	}
	length, err := ToIndex(&lengthW)
	if err != nil {
		return err
	}
	topics := make([]Word, topicCount)
	for i := 0; i < topicCount; i++ {
		topics[i], _ = st.Pop()
	}
	data := mem.Read(offset, length)
	result.Logs = append(result.Logs, LogRecord{Topics: topics, Data: data})
	pc.IncrementBy(1)
	return nil
}

func (ex *Executor) returnOp(st *Stack, mem *Memory, result *Result) (bool, error) {
	if err := st.requireHeight(2); err != nil {
		return false, err
	}
	offsetW, _ := st.Pop()
	lengthW, _ := st.Pop()
	offset, err := ToIndex(&offsetW)
	if err != nil {
		return false, err
	}
	length, err := ToIndex(&lengthW)
	if err != nil {
		return false, err
	}
	result.Output = mem.Read(offset, length)
	return true, nil
}
