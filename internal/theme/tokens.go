package theme

import "github.com/alecthomas/chroma/v2"

// CodeRole maps a chroma token type onto the closed code-token role
// set. Specific well-known types are matched first, then the token's
// sub-category and category. Anything unrecognized falls back to
// CodeText so highlighting stays total over whatever a lexer emits.
func CodeRole(tt chroma.TokenType) Role {
	switch tt {
	case chroma.Error:
		return CodeError
	case chroma.KeywordType:
		return CodeType
	case chroma.KeywordConstant:
		return CodeConstant
	case chroma.NameFunction, chroma.NameFunctionMagic:
		return CodeFunction
	case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
		return CodeBuiltin
	case chroma.NameClass, chroma.NameNamespace:
		return CodeType
	case chroma.NameConstant:
		return CodeConstant
	case chroma.NameAttribute, chroma.NameProperty:
		return CodeAttribute
	case chroma.NameTag, chroma.NameDecorator:
		return CodeTag
	case chroma.NameVariable, chroma.NameVariableClass,
		chroma.NameVariableGlobal, chroma.NameVariableInstance,
		chroma.NameVariableMagic:
		return CodeVariable
	}

	switch {
	case tt.InSubCategory(chroma.LiteralString):
		return CodeString
	case tt.InSubCategory(chroma.LiteralNumber):
		return CodeNumber
	}

	switch tt.Category() {
	case chroma.Keyword:
		return CodeKeyword
	case chroma.Comment:
		return CodeComment
	case chroma.Operator:
		return CodeOperator
	case chroma.Punctuation:
		return CodePunctuation
	}

	return CodeText
}
