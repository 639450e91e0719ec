package script

import (
	lua "github.com/yuin/gopher-lua"
)

// register installs the ts module into the Lua state.
func (r *Runner) register() {
	L := r.state
	mod := L.NewTable()

	// Buffer and state
	L.SetField(mod, "set_text", L.NewFunction(r.setText))
	L.SetField(mod, "text", L.NewFunction(r.text))
	L.SetField(mod, "clear", L.NewFunction(r.clear))
	L.SetField(mod, "reset", L.NewFunction(r.reset))
	L.SetField(mod, "offset", L.NewFunction(r.offset))
	L.SetField(mod, "len", L.NewFunction(r.textLen))
	L.SetField(mod, "result", L.NewFunction(r.result))
	L.SetField(mod, "complete", L.NewFunction(r.complete))

	// Cursor movement
	L.SetField(mod, "forward", L.NewFunction(r.forward))
	L.SetField(mod, "backward", L.NewFunction(r.backward))
	L.SetField(mod, "undo", L.NewFunction(r.undo))

	// Extraction
	L.SetField(mod, "token", L.NewFunction(r.token))
	L.SetField(mod, "field", L.NewFunction(r.field))
	L.SetField(mod, "line", L.NewFunction(r.line))
	L.SetField(mod, "remainder", L.NewFunction(r.remainder))
	L.SetField(mod, "block", L.NewFunction(r.block))
	L.SetField(mod, "block_after", L.NewFunction(r.blockAfter))
	L.SetField(mod, "back_block", L.NewFunction(r.backBlock))
	L.SetField(mod, "parsed_text", L.NewFunction(r.parsedText))
	L.SetField(mod, "not_parsed_text", L.NewFunction(r.notParsedText))
	L.SetField(mod, "selection", L.NewFunction(r.selection))

	// Search
	L.SetField(mod, "reach", L.NewFunction(r.reach))
	L.SetField(mod, "go_beyond", L.NewFunction(r.goBeyond))
	L.SetField(mod, "reach_first_of", L.NewFunction(r.reachFirstOf))
	L.SetField(mod, "reach_last_of", L.NewFunction(r.reachLastOf))
	L.SetField(mod, "skip", L.NewFunction(r.skip))
	L.SetField(mod, "skip_spaces", L.NewFunction(r.skipSpaces))

	// Comparison
	L.SetField(mod, "compare", L.NewFunction(r.compare))
	L.SetField(mod, "compare_at", L.NewFunction(r.compareAt))
	L.SetField(mod, "result_is", L.NewFunction(r.resultIs))

	// Bookmarks
	L.SetField(mod, "set_bookmark", L.NewFunction(r.setBookmark))
	L.SetField(mod, "move_to_bookmark", L.NewFunction(r.moveToBookmark))
	L.SetField(mod, "delete_bookmark", L.NewFunction(r.deleteBookmark))
	L.SetField(mod, "selection_between", L.NewFunction(r.selectionBetween))

	// Settings
	L.SetField(mod, "set_separators", L.NewFunction(r.setSeparators))
	L.SetField(mod, "set_case_insensitive", L.NewFunction(r.setCaseInsensitive))
	L.SetField(mod, "set_ignore_quoted", L.NewFunction(r.setIgnoreQuoted))
	L.SetField(mod, "set_ignore_comments", L.NewFunction(r.setIgnoreComments))

	// File I/O
	L.SetField(mod, "load", L.NewFunction(r.loadFile))
	L.SetField(mod, "save", L.NewFunction(r.saveFile))

	L.SetGlobal("ts", mod)
}

// pushOp converts an operation outcome into Lua return values: on
// success the scanner result and nil, on failure nil and the error
// message.
func (r *Runner) pushOp(L *lua.LState, err error) int {
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(r.scanner.Result()))
	L.Push(lua.LNil)
	return 2
}

// set_text(s)
func (r *Runner) setText(L *lua.LState) int {
	r.scanner.SetText(L.CheckString(1))
	return 0
}

// text() -> string
func (r *Runner) text(L *lua.LState) int {
	L.Push(lua.LString(r.scanner.Text()))
	return 1
}

// clear()
func (r *Runner) clear(L *lua.LState) int {
	r.scanner.Clear()
	return 0
}

// reset()
func (r *Runner) reset(L *lua.LState) int {
	r.scanner.Reset()
	return 0
}

// offset() -> number
func (r *Runner) offset(L *lua.LState) int {
	L.Push(lua.LNumber(r.scanner.Offset()))
	return 1
}

// len() -> number
func (r *Runner) textLen(L *lua.LState) int {
	L.Push(lua.LNumber(r.scanner.Len()))
	return 1
}

// result() -> string
func (r *Runner) result(L *lua.LState) int {
	L.Push(lua.LString(r.scanner.Result()))
	return 1
}

// complete() -> bool
func (r *Runner) complete(L *lua.LState) int {
	L.Push(lua.LBool(r.scanner.Complete()))
	return 1
}

// forward(n) -> result|nil, err
func (r *Runner) forward(L *lua.LState) int {
	return r.pushOp(L, r.scanner.Forward(L.CheckInt(1)))
}

// backward(n) -> result|nil, err
func (r *Runner) backward(L *lua.LState) int {
	return r.pushOp(L, r.scanner.Backward(L.CheckInt(1)))
}

// undo([n]) -> result|nil, err
func (r *Runner) undo(L *lua.LState) int {
	n := L.OptInt(1, 1)
	return r.pushOp(L, r.scanner.Undo(n))
}

// token([separators]) -> token|nil, err
func (r *Runner) token(L *lua.LState) int {
	if L.GetTop() >= 1 {
		return r.pushOp(L, r.scanner.TokenAny(L.CheckString(1)))
	}
	return r.pushOp(L, r.scanner.Token())
}

// field(separator) -> field|nil, err
func (r *Runner) field(L *lua.LState) int {
	return r.pushOp(L, r.scanner.Field(L.CheckString(1)))
}

// line() -> line|nil, err
func (r *Runner) line(L *lua.LState) int {
	return r.pushOp(L, r.scanner.Line())
}

// remainder() -> text|nil, err
func (r *Runner) remainder(L *lua.LState) int {
	return r.pushOp(L, r.scanner.Remainder())
}

// block(open, close [, n]) -> content|nil, err
func (r *Runner) block(L *lua.LState) int {
	open := L.CheckString(1)
	close := L.CheckString(2)
	n := L.OptInt(3, 1)
	return r.pushOp(L, r.scanner.BlockN(open, close, n))
}

// block_after(anchor, open, close) -> content|nil, err
func (r *Runner) blockAfter(L *lua.LState) int {
	return r.pushOp(L, r.scanner.BlockAfter(L.CheckString(1), L.CheckString(2), L.CheckString(3)))
}

// back_block(open, close [, n]) -> content|nil, err
func (r *Runner) backBlock(L *lua.LState) int {
	open := L.CheckString(1)
	close := L.CheckString(2)
	n := L.OptInt(3, 1)
	return r.pushOp(L, r.scanner.BackBlockN(open, close, n))
}

// parsed_text() -> string
func (r *Runner) parsedText(L *lua.LState) int {
	L.Push(lua.LString(r.scanner.ParsedText()))
	return 1
}

// not_parsed_text() -> string
func (r *Runner) notParsedText(L *lua.LState) int {
	L.Push(lua.LString(r.scanner.NotParsedText()))
	return 1
}

// selection(start, end) -> text|nil, err
func (r *Runner) selection(L *lua.LState) int {
	text, err := r.scanner.Selection(L.CheckInt(1), L.CheckInt(2))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(text))
	L.Push(lua.LNil)
	return 2
}

// reach(literal) -> passed|nil, err
func (r *Runner) reach(L *lua.LState) int {
	return r.pushOp(L, r.scanner.Reach(L.CheckString(1)))
}

// go_beyond(literal) -> passed|nil, err
func (r *Runner) goBeyond(L *lua.LState) int {
	return r.pushOp(L, r.scanner.GoBeyond(L.CheckString(1)))
}

// reach_first_of(set) -> passed|nil, err
func (r *Runner) reachFirstOf(L *lua.LState) int {
	return r.pushOp(L, r.scanner.ReachFirstOf(L.CheckString(1)))
}

// reach_last_of(set) -> passed|nil, err
func (r *Runner) reachLastOf(L *lua.LState) int {
	return r.pushOp(L, r.scanner.ReachLastOf(L.CheckString(1)))
}

// skip(set) -> skipped|nil, err
func (r *Runner) skip(L *lua.LState) int {
	return r.pushOp(L, r.scanner.Skip(L.CheckString(1)))
}

// skip_spaces() -> skipped|nil, err
func (r *Runner) skipSpaces(L *lua.LState) int {
	return r.pushOp(L, r.scanner.SkipSpaces())
}

// compare(literal) -> bool
func (r *Runner) compare(L *lua.LState) int {
	L.Push(lua.LBool(r.scanner.Compare(L.CheckString(1))))
	return 1
}

// compare_at(literal, offset) -> bool
func (r *Runner) compareAt(L *lua.LState) int {
	L.Push(lua.LBool(r.scanner.CompareAt(L.CheckString(1), L.CheckInt(2))))
	return 1
}

// result_is(literal) -> bool
func (r *Runner) resultIs(L *lua.LState) int {
	L.Push(lua.LBool(r.scanner.ResultIs(L.CheckString(1))))
	return 1
}

// set_bookmark(name)
func (r *Runner) setBookmark(L *lua.LState) int {
	r.scanner.SetBookmark(L.CheckString(1))
	return 0
}

// move_to_bookmark(name) -> true|nil, err
func (r *Runner) moveToBookmark(L *lua.LState) int {
	if err := r.scanner.MoveToBookmark(L.CheckString(1)); err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	L.Push(lua.LNil)
	return 2
}

// delete_bookmark(name) -> bool
func (r *Runner) deleteBookmark(L *lua.LState) int {
	L.Push(lua.LBool(r.scanner.DeleteBookmark(L.CheckString(1))))
	return 1
}

// selection_between(a, b) -> text|nil, err
func (r *Runner) selectionBetween(L *lua.LState) int {
	text, err := r.scanner.SelectionBetween(L.CheckString(1), L.CheckString(2))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(text))
	L.Push(lua.LNil)
	return 2
}

// set_separators(s)
func (r *Runner) setSeparators(L *lua.LState) int {
	r.scanner.SetSeparators(L.CheckString(1))
	return 0
}

// set_case_insensitive(bool)
func (r *Runner) setCaseInsensitive(L *lua.LState) int {
	r.scanner.SetCaseInsensitive(L.CheckBool(1))
	return 0
}

// set_ignore_quoted(bool)
func (r *Runner) setIgnoreQuoted(L *lua.LState) int {
	r.scanner.SetIgnoreQuoted(L.CheckBool(1))
	return 0
}

// set_ignore_comments(bool)
func (r *Runner) setIgnoreComments(L *lua.LState) int {
	r.scanner.SetIgnoreComments(L.CheckBool(1))
	return 0
}

// load(path) -> true|nil, err
func (r *Runner) loadFile(L *lua.LState) int {
	if err := r.scanner.LoadFile(L.CheckString(1)); err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	L.Push(lua.LNil)
	return 2
}

// save(path) -> true|nil, err
func (r *Runner) saveFile(L *lua.LState) int {
	if err := r.scanner.SaveFile(L.CheckString(1)); err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	L.Push(lua.LNil)
	return 2
}
