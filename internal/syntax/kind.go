package syntax

// NodeKind enumerates the closed set of node tags. Rules and printers
// dispatch on it; adding a kind means teaching both.
type NodeKind uint8

const (
	// KindError marks a region the parser could not interpret. Trees
	// containing it are rejected by Validate and never reach the lint
	// or layout passes.
	KindError NodeKind = iota

	KindFile

	// объявления
	KindImport
	KindFnDecl
	KindParamList
	KindParam
	KindLetDecl
	KindTypeDecl

	// операторы
	KindBlock
	KindIfStmt
	KindWhileStmt
	KindReturnStmt
	KindBreakStmt
	KindContinueStmt
	KindExprStmt

	// выражения
	KindBinaryExpr
	KindUnaryExpr
	KindCallExpr
	KindArgList
	KindIndexExpr
	KindFieldExpr
	KindArrayExpr
	KindGroupExpr
	KindPath
	KindTypeRef

	// листья
	KindName
	KindLiteral

	kindCount // keep last
)

var kindNames = [kindCount]string{
	KindError:        "error",
	KindFile:         "file",
	KindImport:       "import",
	KindFnDecl:       "fn",
	KindParamList:    "params",
	KindParam:        "param",
	KindLetDecl:      "let",
	KindTypeDecl:     "type",
	KindBlock:        "block",
	KindIfStmt:       "if",
	KindWhileStmt:    "while",
	KindReturnStmt:   "return",
	KindBreakStmt:    "break",
	KindContinueStmt: "continue",
	KindExprStmt:     "expr-stmt",
	KindBinaryExpr:   "binary",
	KindUnaryExpr:    "unary",
	KindCallExpr:     "call",
	KindArgList:      "args",
	KindIndexExpr:    "index",
	KindFieldExpr:    "field",
	KindArrayExpr:    "array",
	KindGroupExpr:    "group",
	KindPath:         "path",
	KindTypeRef:      "type-ref",
	KindName:         "name",
	KindLiteral:      "literal",
}

func (k NodeKind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// NumKinds is the size of the closed kind set; dispatch tables are
// sized by it.
const NumKinds = int(kindCount)

// IsDecl reports whether the kind is a top-level declaration.
func (k NodeKind) IsDecl() bool {
	return k >= KindImport && k <= KindTypeDecl
}

// IsLeaf reports whether nodes of this kind never have children.
func (k NodeKind) IsLeaf() bool {
	return k == KindName || k == KindLiteral
}
