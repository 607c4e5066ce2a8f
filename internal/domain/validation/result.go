package validation

// FieldResult is the outcome of one field check. Validators never return
// errors for absent optional values; a warning (Valid with a Message) is
// non-blocking and only surfaced informationally.
type FieldResult struct {
	Valid   bool
	Message string
}

func ok() FieldResult {
	return FieldResult{Valid: true}
}

func fail(msg string) FieldResult {
	return FieldResult{Message: msg}
}

func warn(msg string) FieldResult {
	return FieldResult{Valid: true, Message: msg}
}

// Result collects every failing message of an aggregate pass. All rules
// run before reporting; the caller sees everything wrong at once, in the
// order the checks were declared.
type Result struct {
	Errors   []string
	Warnings []string
}

func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Result) add(fr FieldResult) {
	if !fr.Valid {
		r.Errors = append(r.Errors, fr.Message)
		return
	}
	if fr.Message != "" {
		r.Warnings = append(r.Warnings, fr.Message)
	}
}
