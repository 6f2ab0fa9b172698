/*
Package rowshape decodes tabular query results into caller-chosen Go types.
You pick the target type at the call site; rowshape classifies it as one of
four shapes and maps rows onto it with a single, predictable procedure.

# Shapes

  - Scalar: a primitive, []byte, time.Time, or sql.Scanner target against a
    one-column row.
  - Enum: a named string or integer type implementing [Enum]; values parse
    case-insensitively against the member names.
  - Tuple: a positional struct ([T2] through [T8], or any struct embedding
    [Positional]) with up to eight slots, matched to columns strictly by
    position.
  - Record: any other struct with settable fields, matched to columns by
    name, independent of column order.

# Mapping rules

Record fields bind by `db:"name"` first, otherwise by case-insensitive field
name. Unmatched columns are ignored; unmatched fields keep their zero value.
A null column value is never an error: pointer fields stay nil, everything
else keeps its zero value. Integer columns widen into larger integer and
float fields; []byte widens into string. Anything without a defined
conversion fails with a [TypeMismatchError] naming the column and both types.

# Sources

A [RowSource] is the boundary to the driver. [SQLRows] adapts *sql.Rows and
[PgxRows] adapts pgx.Rows; [Collect] drains a source eagerly and [Iter]
yields decoded values one pull at a time. The source belongs to exactly one
collection call, which closes it on every exit path.
*/
package rowshape
