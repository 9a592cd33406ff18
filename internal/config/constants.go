package config

const SourceFileExt = ".sl"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".sl", ".slither"}

// TraceEnvVar enables per-statement execution tracing when set to any value.
const TraceEnvVar = "TRACE"

// Built-in function names
const (
	PrintFuncName = "print"
	StrFuncName   = "str"
	ReprFuncName  = "repr"
	LenFuncName   = "len"
	PowFuncName   = "pow"
	TypeFuncName  = "type"
)

// Exception class names. Every one of these resolves to a class value in the
// builtin scope so user code can catch them by name.
const (
	BaseExceptionClass       = "BaseException"
	ExceptionClass           = "Exception"
	TypeErrorClass           = "TypeError"
	NameErrorClass           = "NameError"
	AttributeErrorClass      = "AttributeError"
	SyntaxErrorClass         = "SyntaxError"
	RuntimeErrorClass        = "RuntimeError"
	AssertionErrorClass      = "AssertionError"
	NotImplementedErrorClass = "NotImplementedError"
	SystemErrorClass         = "SystemError"
	IndexErrorClass          = "IndexError"
)

// InitMethodName is looked up through the class chain when a class is called.
const InitMethodName = "__init__"

// MessageAttrName is where exception instances keep their message.
const MessageAttrName = "message"

// Virtual module names resolved by the loader without touching disk.
const (
	UuidModuleName   = "uuid"
	SqliteModuleName = "sqlite3"
)
