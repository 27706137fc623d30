package ast

// File is the root of a parsed formula. It pairs the root Formula node with
// the FileInfo produced while lexing, so that callers holding any node of the
// tree can resolve its tokens back to source positions.
type File struct {
	fileInfo *FileInfo

	// Root is the outermost formula of the input.
	Root Formula
}

// NewFile creates a new *File for the given lexed input and root formula. It
// panics if either argument is nil.
func NewFile(info *FileInfo, root Formula) *File {
	if info == nil {
		panic("info is nil")
	}
	if root == nil {
		panic("root is nil")
	}
	return &File{fileInfo: info, Root: root}
}

// Name returns the name of the source, as supplied to the parser.
func (f *File) Name() string {
	return f.fileInfo.Name()
}

// NodeInfo returns details about the given node's location in the source.
// The node must have been created as part of this file's parse; position
// queries for foreign or synthesized nodes report an unknown position.
func (f *File) NodeInfo(n Formula) NodeInfo {
	return f.fileInfo.NodeInfo(n)
}

// TokenInfo returns details about the given token's location in the source.
func (f *File) TokenInfo(t Token) NodeInfo {
	return f.fileInfo.TokenInfo(t)
}
