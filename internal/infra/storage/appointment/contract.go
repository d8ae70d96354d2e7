package appointment

import "github.com/tyrehub/appointment-service/pkg/txmanager"

// DBExecutor is the query surface the repository runs on. Satisfied by
// *sql.DB and the metrics-wrapped DB; inside a transaction the
// executor is swapped through the context.
type DBExecutor = txmanager.DBExecutor
