// Package result defines the single outcome shape returned by every solver
// operation.
//
// [Result] is a closed sum type with four variants:
//
//   - [*Success]: computed quantities plus diagnostics
//   - [*Warning]: a complete [Payload] carrying caveats
//   - [*MissingInputs]: required fields that were absent
//   - [*NoSolution]: a reason code, detail text and optional partial values
//
// Callers branch with a type switch before reading any payload:
//
//	switch r := res.(type) {
//	case *result.Success:
//	    q := r.Values[result.Q]
//	case *result.NoSolution:
//	    log.Println(r.Reason)
//	}
package result
