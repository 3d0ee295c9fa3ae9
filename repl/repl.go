// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl implements the interactive query shell: a persistent
// session (current architecture, current instruction, current
// modifiers) driven by a beevik/cmd command tree, one query-facade
// call per line.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/term"

	micalc "github.com/ROCm/amd-matrix-instruction-calculator"
	"github.com/ROCm/amd-matrix-instruction-calculator/format"
	"github.com/ROCm/amd-matrix-instruction-calculator/query"
)

// Session holds the state an interactive shell accumulates across
// lines: the chosen architecture and instruction persist so a user can
// issue several get_register/matrix_entry calls in a row without
// repeating them.
type Session struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection

	arch          micalc.ArchitectureID
	hasArch       bool
	instruction   string
	sink          format.Sink
	transpose     bool
	quitRequested bool
}

// New creates an interactive session reading from r and writing to w.
// interactive controls whether a prompt is displayed before each line,
// mirroring the batch-vs-shell distinction of spec section 6.
func New(r io.Reader, w io.Writer, interactive bool) *Session {
	return &Session{
		input:       bufio.NewScanner(r),
		output:      bufio.NewWriter(w),
		interactive: interactive,
		sink:        format.SinkASCII,
	}
}

// Run reads and dispatches lines until EOF or a quit command.
func (s *Session) Run() {
	if s.interactive && term.IsTerminal(int(os.Stdin.Fd())) {
		s.println("amd-matrix-instruction-calculator interactive shell. Type 'help' for commands, 'quit' to exit.")
	}
	for {
		s.prompt()
		line, err := s.getLine()
		if err != nil {
			break
		}
		if s.dispatch(line) {
			break
		}
	}
}

func (s *Session) getLine() (string, error) {
	if s.input.Scan() {
		return s.input.Text(), nil
	}
	if s.input.Err() != nil {
		return "", s.input.Err()
	}
	return "", io.EOF
}

func (s *Session) prompt() {
	if !s.interactive {
		return
	}
	if s.hasArch {
		s.printf("[%s] * ", s.arch)
	} else {
		s.printf("* ")
	}
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.output, format, args...)
	s.output.Flush()
}

func (s *Session) println(args ...interface{}) {
	fmt.Fprintln(s.output, args...)
	s.output.Flush()
}

// dispatch resolves and runs one line; the bool return reports whether
// the session should stop (set by the quit command; EOF is handled by Run).
func (s *Session) dispatch(line string) (quit bool) {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = shellCommands.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			s.println("Command not found.")
			return false
		case err == cmd.ErrAmbiguous:
			s.println("Command is ambiguous.")
			return false
		case err != nil:
			s.printf("ERROR: %v\n", err)
			return false
		}
	} else if s.lastCmd != nil {
		c = *s.lastCmd
	}

	if c.Command == nil {
		return false
	}
	if c.Command.Data == nil && c.Command.Subtree != nil {
		s.displayCommands(c.Command.Subtree)
		return false
	}
	s.lastCmd = &c

	handler := c.Command.Data.(func(*Session, cmd.Selection) error)
	if err := handler(s, c); err != nil {
		s.printf("ERROR: %v\n", err)
	}
	return s.quitRequested
}

func (s *Session) displayCommands(t *cmd.Tree) {
	s.printf("%s commands:\n", t.Title)
	for _, c := range t.Commands {
		if c.Brief != "" {
			s.printf("    %-18s  %s\n", c.Name, c.Brief)
		}
	}
	s.println()
}

var shellCommands *cmd.Tree

func init() {
	root := cmd.NewTree("mficalc")
	root.AddCommand(cmd.Command{
		Name:        "help",
		Brief:       "Display help for a command",
		Usage:       "help [<command>]",
		Data:        (*Session).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Exit the shell",
		Usage:       "quit",
		Shortcuts:   []string{"exit"},
		Data:        (*Session).cmdQuit,
	})
	root.AddCommand(cmd.Command{
		Name:        "arch",
		Brief:       "Select the current architecture",
		Usage:       "arch <name>",
		Description: "Select the architecture every subsequent command resolves instruction names against.",
		Data:        (*Session).cmdArch,
	})
	root.AddCommand(cmd.Command{
		Name:        "list",
		Brief:       "List every instruction defined for the current architecture",
		Usage:       "list",
		Data:        (*Session).cmdList,
	})
	root.AddCommand(cmd.Command{
		Name:        "use",
		Brief:       "Select the current instruction",
		Usage:       "use <mnemonic>",
		Data:        (*Session).cmdUse,
	})
	root.AddCommand(cmd.Command{
		Name:        "detail",
		Brief:       "Report the current instruction's static metadata",
		Usage:       "detail",
		Data:        (*Session).cmdDetail,
	})
	root.AddCommand(cmd.Command{
		Name:  "get-register",
		Brief: "Map a matrix coordinate to its register location",
		Usage: "get-register <matrix> i=<i> [j=<j>] [k=<k>] [block=<b>] [mods...] [formula]",
		Description: "matrix is one of a/b/c/d/compression. mods are " +
			"cbsz=/abid=/blgp=/opsel=/neg=/neghi=; formula additionally " +
			"prints the accumulation formula for a c/d coordinate.",
		Data: (*Session).cmdGetRegister,
	})
	root.AddCommand(cmd.Command{
		Name:        "matrix-entry",
		Brief:       "Map a register/lane back to its matrix coordinates",
		Usage:       "matrix-entry <matrix> r=<gpr> l=<lane> [mods...]",
		Data:        (*Session).cmdMatrixEntry,
	})
	root.AddCommand(cmd.Command{
		Name:        "layout",
		Brief:       "Print the full register layout of a matrix",
		Usage:       "layout <matrix> [mods...]",
		Shortcuts:   []string{"register-layout", "matrix-layout"},
		Data:        (*Session).cmdLayout,
	})
	root.AddCommand(cmd.Command{
		Name:        "format",
		Brief:       "Select the output sink (ascii, csv, markdown, asciidoc)",
		Usage:       "format <name>",
		Data:        (*Session).cmdFormat,
	})
	root.AddCommand(cmd.Command{
		Name:        "transpose",
		Brief:       "Toggle row/column transpose for layout output",
		Usage:       "transpose",
		Data:        (*Session).cmdTranspose,
	})
	shellCommands = root
}

func (s *Session) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		s.displayCommands(shellCommands)
		return nil
	}
	sel, err := shellCommands.Lookup(strings.Join(c.Args, " "))
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	if sel.Command.Usage != "" {
		s.printf("Usage: %s\n", sel.Command.Usage)
	}
	if sel.Command.Description != "" {
		s.printf("%s\n", sel.Command.Description)
	} else if sel.Command.Brief != "" {
		s.printf("%s.\n", sel.Command.Brief)
	}
	return nil
}

func (s *Session) cmdQuit(c cmd.Selection) error {
	s.quitRequested = true
	return nil
}

func (s *Session) cmdArch(c cmd.Selection) error {
	if len(c.Args) != 1 {
		return micalc.NewBadUsage("arch", "expected exactly one architecture name")
	}
	a, err := micalc.Resolve(c.Args[0])
	if err != nil {
		return err
	}
	s.arch, s.hasArch = a, true
	s.printf("Architecture set to %s.\n", a)
	return nil
}

func (s *Session) cmdList(c cmd.Selection) error {
	if err := s.requireArch(); err != nil {
		return err
	}
	for _, name := range query.ListInstructions(s.arch) {
		s.println(name)
	}
	return nil
}

func (s *Session) cmdUse(c cmd.Selection) error {
	if err := s.requireArch(); err != nil {
		return err
	}
	if len(c.Args) != 1 {
		return micalc.NewBadUsage("use", "expected exactly one mnemonic")
	}
	if _, err := micalc.LookupInstruction(s.arch, c.Args[0]); err != nil {
		return err
	}
	s.instruction = c.Args[0]
	s.printf("Instruction set to %s.\n", s.instruction)
	return nil
}

func (s *Session) cmdDetail(c cmd.Selection) error {
	if err := s.requireInstruction(); err != nil {
		return err
	}
	res, err := query.Detail(query.Args{Arch: s.arch, Instruction: s.instruction})
	if err != nil {
		return err
	}
	return format.Write(s.output, s.sink, format.DetailTable(res.Descriptor))
}

func (s *Session) cmdGetRegister(c cmd.Selection) error {
	if err := s.requireInstruction(); err != nil {
		return err
	}
	if len(c.Args) == 0 {
		return micalc.NewBadUsage("get-register", "missing matrix argument")
	}
	a := query.Args{Arch: s.arch, Instruction: s.instruction}
	if err := parseMatrix(c.Args[0], &a); err != nil {
		return err
	}
	for _, tok := range c.Args[1:] {
		if tok == "formula" {
			a.Formula = true
			continue
		}
		if err := parseAssignment(tok, &a); err != nil {
			return err
		}
	}
	res, err := query.GetRegister(a)
	if err != nil {
		return err
	}
	if res.Formula != "" {
		s.printf("%s = %s\n", res.Coord.String(), res.Formula)
	} else {
		s.printf("%s -> %s\n", res.Coord.String(), res.Location.String())
	}
	for _, w := range res.Warnings {
		s.printf("warning: %s\n", w.Msg)
	}
	return nil
}

func (s *Session) cmdMatrixEntry(c cmd.Selection) error {
	if err := s.requireInstruction(); err != nil {
		return err
	}
	if len(c.Args) == 0 {
		return micalc.NewBadUsage("matrix-entry", "missing matrix argument")
	}
	a := query.Args{Arch: s.arch, Instruction: s.instruction}
	if err := parseMatrix(c.Args[0], &a); err != nil {
		return err
	}
	for _, tok := range c.Args[1:] {
		if err := parseAssignment(tok, &a); err != nil {
			return err
		}
	}
	res, err := query.MatrixEntry(a)
	if err != nil {
		return err
	}
	for _, e := range res.Entries {
		s.println(e.Coord.String())
	}
	for _, w := range res.Warnings {
		s.printf("warning: %s\n", w.Msg)
	}
	return nil
}

func (s *Session) cmdLayout(c cmd.Selection) error {
	if err := s.requireInstruction(); err != nil {
		return err
	}
	if len(c.Args) == 0 {
		return micalc.NewBadUsage("layout", "missing matrix argument")
	}
	a := query.Args{Arch: s.arch, Instruction: s.instruction}
	if err := parseMatrix(c.Args[0], &a); err != nil {
		return err
	}
	for _, tok := range c.Args[1:] {
		if err := parseAssignment(tok, &a); err != nil {
			return err
		}
	}
	res, err := query.RegisterLayout(a)
	if err != nil {
		return err
	}
	d, err := micalc.LookupInstruction(s.arch, s.instruction)
	if err != nil {
		return err
	}
	return format.Write(s.output, s.sink, format.LayoutTable(res, d.WaveSize, s.transpose))
}

func (s *Session) cmdFormat(c cmd.Selection) error {
	if len(c.Args) != 1 {
		return micalc.NewBadUsage("format", "expected exactly one sink name")
	}
	sink, err := format.ParseSink(c.Args[0])
	if err != nil {
		return err
	}
	s.sink = sink
	return nil
}

func (s *Session) cmdTranspose(c cmd.Selection) error {
	s.transpose = !s.transpose
	s.printf("Transpose is now %v.\n", s.transpose)
	return nil
}

func (s *Session) requireArch() error {
	if !s.hasArch {
		return micalc.NewBadUsage("arch", "no architecture selected; run 'arch <name>' first")
	}
	return nil
}

func (s *Session) requireInstruction() error {
	if err := s.requireArch(); err != nil {
		return err
	}
	if s.instruction == "" {
		return micalc.NewBadUsage("use", "no instruction selected; run 'use <mnemonic>' first")
	}
	return nil
}

func parseMatrix(tok string, a *query.Args) error {
	switch strings.ToLower(tok) {
	case "a":
		a.Matrix, a.HasMatrix = micalc.MatrixA, true
	case "b":
		a.Matrix, a.HasMatrix = micalc.MatrixB, true
	case "c":
		a.Matrix, a.HasMatrix = micalc.MatrixC, true
	case "d":
		a.Matrix, a.HasMatrix = micalc.MatrixD, true
	case "k", "compression":
		a.Compression = true
	default:
		return micalc.NewBadUsage("matrix", "unrecognized matrix %q", tok)
	}
	return nil
}

// parseAssignment handles the shell's key=value coordinate/modifier
// tokens, e.g. "i=3", "cbsz=2", "r=1", "l=17".
func parseAssignment(tok string, a *query.Args) error {
	kv := strings.SplitN(tok, "=", 2)
	if len(kv) != 2 {
		return micalc.NewBadUsage("args", "expected key=value, got %q", tok)
	}
	n, err := strconv.Atoi(kv[1])
	if err != nil {
		return micalc.NewBadUsage(kv[0], "expected an integer, got %q", kv[1])
	}
	switch strings.ToLower(kv[0]) {
	case "i":
		a.I, a.HasI = n, true
	case "j":
		a.J, a.HasJ = n, true
	case "k":
		a.K, a.HasK = n, true
	case "block", "b":
		a.Block, a.HasBlock = n, true
	case "r", "gpr", "register":
		a.Register, a.HasReg = n, true
	case "l", "lane":
		a.Lane, a.HasLane = n, true
	case "cbsz":
		a.Mods.CBSZ = n
	case "abid":
		a.Mods.ABID = n
	case "blgp":
		a.Mods.BLGP = n
	case "opsel":
		a.Mods.OPSEL = n
	case "neg":
		a.Mods.NEG = n
	case "neghi":
		a.Mods.NEGHI = n
	default:
		return micalc.NewBadUsage(kv[0], "unrecognized key")
	}
	return nil
}
