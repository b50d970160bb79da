// Package loc counts physical and logical lines of code in Go source.
//
// Physical LOC counts every non-blank line that is not wholly a comment.
// Logical LOC counts statements and declarations, attributed to a tree of
// file, struct, method, and function nodes so reports can break a module
// down by element.
package loc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies a node in a count tree.
type Kind int

const (
	KindFile Kind = iota
	KindStruct
	KindMethod
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindStruct:
		return "struct"
	case KindMethod:
		return "method"
	case KindFunction:
		return "function"
	}
	return "unknown"
}

// CountTree stores logical LOC counts for one file hierarchically, so that
// struct and function structure is preserved for reporting.
type CountTree struct {
	Name     string
	Kind     Kind
	Logical  int // statements belonging to this node alone
	Children []*CountTree
}

// TotalLogical returns the logical LOC of this node and all its children.
func (t *CountTree) TotalLogical() int {
	total := t.Logical
	for _, kid := range t.Children {
		total += kid.TotalLogical()
	}
	return total
}

// NumOfKind returns how many nodes of the given kind the tree contains,
// including this node.
func (t *CountTree) NumOfKind(kind Kind) int {
	n := 0
	if t.Kind == kind {
		n++
	}
	for _, kid := range t.Children {
		n += kid.NumOfKind(kind)
	}
	return n
}

// LogicalOfKind returns the total logical LOC within nodes of the given
// kind, children included.
func (t *CountTree) LogicalOfKind(kind Kind) int {
	if t.Kind == kind {
		return t.TotalLogical()
	}
	total := 0
	for _, kid := range t.Children {
		total += kid.LogicalOfKind(kind)
	}
	return total
}

// FileCount holds both counts for a single file.
type FileCount struct {
	Path     string
	Physical int
	Tree     *CountTree
}

// CountFile counts physical and logical LOC in the given Go source file.
func CountFile(path string) (*FileCount, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loc: %w", err)
	}

	physical := countPhysical(string(src))

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("loc: parse %s: %w", path, err)
	}

	return &FileCount{
		Path:     path,
		Physical: physical,
		Tree:     buildTree(moduleName(path), file),
	}, nil
}

// moduleName strips the directory and extension from a source path.
func moduleName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".go")
}

// countPhysical counts non-blank, non-comment lines.
func countPhysical(src string) int {
	count := 0
	inBlock := false
	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if inBlock {
			if idx := strings.Index(line, "*/"); idx >= 0 {
				rest := strings.TrimSpace(line[idx+2:])
				inBlock = false
				if rest != "" && !strings.HasPrefix(rest, "//") {
					count++
				}
			}
			continue
		}
		if strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "/*") {
			if !strings.Contains(line, "*/") {
				inBlock = true
			}
			continue
		}
		count++
	}
	return count
}

// buildTree walks the file's declarations into a count tree. Struct types
// become struct nodes, their methods attach beneath them, and everything
// else hangs off the file node.
func buildTree(name string, file *ast.File) *CountTree {
	root := &CountTree{Name: name, Kind: KindFile}
	structs := make(map[string]*CountTree)

	// First pass: file-level declarations and struct definitions.
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok {
				if st, ok := ts.Type.(*ast.StructType); ok {
					node := &CountTree{
						Name:    ts.Name.Name,
						Kind:    KindStruct,
						Logical: st.Fields.NumFields() + 1, // fields plus the type line
					}
					structs[ts.Name.Name] = node
					root.Children = append(root.Children, node)
					continue
				}
			}
			// Imports, constants, variables, and non-struct types count
			// against the file itself.
			root.Logical++
		}
	}

	// Second pass: functions and methods.
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		node := &CountTree{
			Name:    fn.Name.Name,
			Kind:    KindFunction,
			Logical: countStatements(fn.Body) + 1, // statements plus the signature
		}
		if recv := receiverType(fn); recv != "" {
			node.Kind = KindMethod
			if owner, ok := structs[recv]; ok {
				owner.Children = append(owner.Children, node)
				continue
			}
		}
		root.Children = append(root.Children, node)
	}

	return root
}

// receiverType returns the name of a method's receiver type, or "".
func receiverType(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}
	expr := fn.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// countStatements counts every statement in the block, treating blocks as
// structure rather than statements themselves.
func countStatements(body *ast.BlockStmt) int {
	if body == nil {
		return 0
	}
	count := 0
	ast.Inspect(body, func(n ast.Node) bool {
		switch n.(type) {
		case nil:
			return false
		case *ast.BlockStmt:
			return true
		case ast.Stmt:
			count++
		}
		return true
	})
	return count
}
