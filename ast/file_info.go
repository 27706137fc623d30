package ast

import (
	"fmt"
	"sort"
)

// FileInfo contains information about the contents of a parsed formula,
// including details about its tokens. The lexer accumulates these details as
// it scans the input. This allows AST nodes to have a compact representation
// (a Token is just an index) while still supporting detailed position
// lookups.
type FileInfo struct {
	// The name of the source, as supplied to the parser. This need not be an
	// actual file name; callers parsing in-memory formulas typically supply a
	// placeholder.
	name string
	// The raw contents of the source.
	data []byte
	// The offsets for each line in the input. The value is the zero-based
	// byte offset for a given line. The line is given by its index. So the
	// value at index 0 is the offset for the first line (which is always
	// zero).
	lines []int
	// The span for every token in the input, in order. The last item in the
	// slice corresponds to the EOF, so every input (even an empty one) has at
	// least one element once lexing completes.
	tokens []tokenSpan
}

type tokenSpan struct {
	// the offset into the input of the first character of a token.
	offset int
	// the length of the token
	length int
}

// NewFileInfo creates a new instance for the given input.
func NewFileInfo(filename string, contents []byte) *FileInfo {
	return &FileInfo{
		name:  filename,
		data:  contents,
		lines: []int{0},
	}
}

func (f *FileInfo) Name() string {
	return f.name
}

// AddLine adds the offset representing the beginning of the "next" line in
// the input. The first line always starts at offset 0, the second line starts
// at offset-of-newline-char+1.
func (f *FileInfo) AddLine(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("invalid offset: %d must not be negative", offset))
	}
	if offset > len(f.data) {
		panic(fmt.Sprintf("invalid offset: %d is greater than input size %d", offset, len(f.data)))
	}

	if len(f.lines) > 0 {
		lastOffset := f.lines[len(f.lines)-1]
		if offset <= lastOffset {
			panic(fmt.Sprintf("invalid offset: %d is not greater than previously observed line offset %d", offset, lastOffset))
		}
	}

	f.lines = append(f.lines, offset)
}

// AddToken adds info about a token at the given location to this input. It
// returns a value that allows access to all of the token's details.
func (f *FileInfo) AddToken(offset, length int) Token {
	if offset < 0 {
		panic(fmt.Sprintf("invalid offset: %d must not be negative", offset))
	}
	if length < 0 {
		panic(fmt.Sprintf("invalid length: %d must not be negative", length))
	}
	if offset+length > len(f.data) {
		panic(fmt.Sprintf("invalid offset+length: %d is greater than input size %d", offset+length, len(f.data)))
	}

	tokenID := len(f.tokens)
	if len(f.tokens) > 0 {
		lastToken := f.tokens[tokenID-1]
		lastEnd := lastToken.offset + lastToken.length - 1
		if offset <= lastEnd {
			panic(fmt.Sprintf("invalid offset: %d is not greater than previously observed token end %d", offset, lastEnd))
		}
	}

	f.tokens = append(f.tokens, tokenSpan{offset: offset, length: length})
	return Token(tokenID)
}

func (f *FileInfo) NodeInfo(n Formula) NodeInfo {
	return NodeInfo{fileInfo: f, startIndex: int(n.Start()), endIndex: int(n.End())}
}

func (f *FileInfo) TokenInfo(t Token) NodeInfo {
	return NodeInfo{fileInfo: f, startIndex: int(t), endIndex: int(t)}
}

func (f *FileInfo) SourcePos(offset int) SourcePos {
	lineNumber := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	})

	// If it weren't for tabs, we could trivially compute the column just
	// based on offset and the starting offset of lineNumber.
	col := 0
	for i := f.lines[lineNumber-1]; i < offset; i++ {
		if f.data[i] == '\t' {
			nextTabStop := 8 - (col % 8)
			col += nextTabStop
		} else {
			col++
		}
	}

	return SourcePos{
		Filename: f.name,
		Offset:   offset,
		Line:     lineNumber,
		// Columns are 1-indexed in this AST
		Col: col + 1,
	}
}

// Token represents a single lexed token. It is an index into the FileInfo
// that produced it.
type Token int

// NoToken is the value used for nodes that were synthesized by an AST
// transformation (such as ToNNF) instead of produced by the parser. Position
// queries for such nodes report an unknown position.
const NoToken = Token(-1)

// NodeInfo represents the details for a node in the parsed formula's AST.
type NodeInfo struct {
	fileInfo             *FileInfo
	startIndex, endIndex int
}

func (n NodeInfo) Start() SourcePos {
	if n.startIndex < 0 || n.startIndex >= len(n.fileInfo.tokens) {
		return UnknownPos(n.fileInfo.name)
	}

	tok := n.fileInfo.tokens[n.startIndex]
	return n.fileInfo.SourcePos(tok.offset)
}

func (n NodeInfo) End() SourcePos {
	if n.endIndex < 0 || n.endIndex >= len(n.fileInfo.tokens) {
		return UnknownPos(n.fileInfo.name)
	}

	tok := n.fileInfo.tokens[n.endIndex]
	// find offset of last character in the span
	offset := tok.offset
	if tok.length > 0 {
		offset += tok.length - 1
	}
	pos := n.fileInfo.SourcePos(offset)
	if tok.length > 0 {
		// We return "open range", so end is the position *after* the last
		// character in the span. So we adjust
		pos.Col = pos.Col + 1
	}
	return pos
}

func (n NodeInfo) RawText() string {
	if n.startIndex < 0 || n.endIndex < 0 ||
		n.startIndex >= len(n.fileInfo.tokens) || n.endIndex >= len(n.fileInfo.tokens) {
		return ""
	}
	startTok := n.fileInfo.tokens[n.startIndex]
	endTok := n.fileInfo.tokens[n.endIndex]
	return string(n.fileInfo.data[startTok.offset : endTok.offset+endTok.length])
}

// SourcePos identifies a location in a parsed formula.
type SourcePos struct {
	Filename  string
	Line, Col int
	Offset    int
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}

// UnknownPos is a placeholder position when only the source name is known.
func UnknownPos(filename string) SourcePos {
	return SourcePos{Filename: filename}
}
