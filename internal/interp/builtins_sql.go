package interp

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/slitherlang/slither/internal/config"
)

// Open databases live in a process-wide registry keyed by integer handles,
// so connections travel through the interpreter as plain ints.
var (
	sqlDBRegistry         = make(map[int64]*sql.DB)
	sqlDBNextID     int64 = 1
	sqlDBRegistryMu sync.Mutex
)

func registerSqlDB(db *sql.DB) int64 {
	sqlDBRegistryMu.Lock()
	defer sqlDBRegistryMu.Unlock()
	id := sqlDBNextID
	sqlDBNextID++
	sqlDBRegistry[id] = db
	return id
}

func lookupSqlDB(handle Object) (*sql.DB, bool) {
	h, ok := handle.(*Integer)
	if !ok || !h.Value.IsInt64() {
		return nil, false
	}
	sqlDBRegistryMu.Lock()
	defer sqlDBRegistryMu.Unlock()
	db, ok := sqlDBRegistry[h.Value.Int64()]
	return db, ok
}

func dropSqlDB(handle Object) (*sql.DB, bool) {
	h, ok := handle.(*Integer)
	if !ok || !h.Value.IsInt64() {
		return nil, false
	}
	sqlDBRegistryMu.Lock()
	defer sqlDBRegistryMu.Unlock()
	db, ok := sqlDBRegistry[h.Value.Int64()]
	if ok {
		delete(sqlDBRegistry, h.Value.Int64())
	}
	return db, ok
}

// sqliteModuleDict backs the builtin sqlite3 module.
func sqliteModuleDict() *AttrDict {
	d := NewAttrDict()
	d.Set("connect", &Builtin{Name: "sqlite3.connect", Fn: builtinSqliteConnect})
	d.Set("execute", &Builtin{Name: "sqlite3.execute", Fn: builtinSqliteExecute})
	d.Set("query", &Builtin{Name: "sqlite3.query", Fn: builtinSqliteQuery})
	d.Set("close", &Builtin{Name: "sqlite3.close", Fn: builtinSqliteClose})
	return d
}

func builtinSqliteConnect(in *Interp, args []Object) Object {
	if len(args) != 1 {
		return in.raiseError(config.TypeErrorClass, "connect() takes exactly 1 arguments (%d given)", len(args))
	}
	path, ok := args[0].(*String)
	if !ok {
		return in.raiseError(config.TypeErrorClass, "connect() argument must be a string")
	}
	db, err := sql.Open("sqlite", path.Value)
	if err != nil {
		return in.raiseError(config.RuntimeErrorClass, "sqlite3: %s", err.Error())
	}
	return NewInt(registerSqlDB(db))
}

func builtinSqliteExecute(in *Interp, args []Object) Object {
	if len(args) < 2 {
		return in.raiseError(config.TypeErrorClass, "execute() takes at least 2 arguments (%d given)", len(args))
	}
	db, ok := lookupSqlDB(args[0])
	if !ok {
		return in.raiseError(config.RuntimeErrorClass, "sqlite3: invalid database handle")
	}
	stmt, ok := args[1].(*String)
	if !ok {
		return in.raiseError(config.TypeErrorClass, "execute() statement must be a string")
	}
	params, sig := in.sqlParams(args[2:])
	if sig != nil {
		return sig
	}
	res, err := db.Exec(stmt.Value, params...)
	if err != nil {
		return in.raiseError(config.RuntimeErrorClass, "sqlite3: %s", err.Error())
	}
	affected, err := res.RowsAffected()
	if err != nil {
		affected = 0
	}
	return NewInt(affected)
}

func builtinSqliteQuery(in *Interp, args []Object) Object {
	if len(args) < 2 {
		return in.raiseError(config.TypeErrorClass, "query() takes at least 2 arguments (%d given)", len(args))
	}
	db, ok := lookupSqlDB(args[0])
	if !ok {
		return in.raiseError(config.RuntimeErrorClass, "sqlite3: invalid database handle")
	}
	stmt, ok := args[1].(*String)
	if !ok {
		return in.raiseError(config.TypeErrorClass, "query() statement must be a string")
	}
	params, sig := in.sqlParams(args[2:])
	if sig != nil {
		return sig
	}
	rows, err := db.Query(stmt.Value, params...)
	if err != nil {
		return in.raiseError(config.RuntimeErrorClass, "sqlite3: %s", err.Error())
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return in.raiseError(config.RuntimeErrorClass, "sqlite3: %s", err.Error())
	}
	out := &List{}
	for rows.Next() {
		raw := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return in.raiseError(config.RuntimeErrorClass, "sqlite3: %s", err.Error())
		}
		tuple := &Tuple{Elements: make([]Object, len(cols))}
		for i, v := range raw {
			tuple.Elements[i] = sqlValueToObject(v)
		}
		out.Elements = append(out.Elements, tuple)
	}
	if err := rows.Err(); err != nil {
		return in.raiseError(config.RuntimeErrorClass, "sqlite3: %s", err.Error())
	}
	return out
}

func builtinSqliteClose(in *Interp, args []Object) Object {
	if len(args) != 1 {
		return in.raiseError(config.TypeErrorClass, "close() takes exactly 1 arguments (%d given)", len(args))
	}
	db, ok := dropSqlDB(args[0])
	if !ok {
		return in.raiseError(config.RuntimeErrorClass, "sqlite3: invalid database handle")
	}
	if err := db.Close(); err != nil {
		return in.raiseError(config.RuntimeErrorClass, "sqlite3: %s", err.Error())
	}
	return NONE
}

// sqlParams converts interpreter values to driver arguments.
func (in *Interp) sqlParams(args []Object) ([]interface{}, Object) {
	params := make([]interface{}, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case *Integer:
			if v.Value.IsInt64() {
				params = append(params, v.Value.Int64())
			} else {
				params = append(params, v.Value.String())
			}
		case *Float:
			params = append(params, v.Value)
		case *String:
			params = append(params, v.Value)
		case *Boolean:
			params = append(params, v.Value)
		case *None:
			params = append(params, nil)
		default:
			return nil, in.raiseError(config.TypeErrorClass,
				"unsupported parameter type '%s'", typeName(a))
		}
	}
	return params, nil
}

// sqlValueToObject maps a scanned column back into the value model.
func sqlValueToObject(v interface{}) Object {
	switch val := v.(type) {
	case nil:
		return NONE
	case int64:
		return NewInt(val)
	case float64:
		return &Float{Value: val}
	case bool:
		return nativeBoolToBooleanObject(val)
	case string:
		return &String{Value: val}
	case []byte:
		return &String{Value: string(val)}
	}
	return &String{Value: fmt.Sprintf("%v", v)}
}
