package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Application holds the applicant fields submitted to the review service.
type Application struct {
	Name           string
	Email          string
	ResumeLink     string
	RepositoryLink string
	ActionRunLink  string
}

// MarshalCanonical serializes the application to the canonical wire form:
// keys sorted ascending, no whitespace after ':' or ',', non-ASCII text kept
// as-is. The HMAC signature is computed over these exact bytes and the
// receiving service re-derives the same form to verify it, so any deviation
// here invalidates the submission.
//
// timestamp is now converted to UTC, RFC 3339 with a literal Z suffix.
func (a Application) MarshalCanonical(now time.Time) ([]byte, error) {
	doc := map[string]string{
		"action_run_link": a.ActionRunLink,
		"email":           a.Email,
		"name":            a.Name,
		"repository_link": a.RepositoryLink,
		"resume_link":     a.ResumeLink,
		"timestamp":       now.UTC().Format(time.RFC3339),
	}

	// json.Encoder over a map gives sorted keys and compact separators;
	// SetEscapeHTML(false) keeps URLs with &, <, > byte-identical.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Response is the decoded body returned by the submission endpoint.
type Response map[string]any

// Accepted reports whether the service confirmed the submission. The field is
// boolean-like on the wire: absent, null, false, 0 and "" all mean rejected.
func (r Response) Accepted() bool {
	switch v := r["success"].(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

// Receipt returns the confirmation token, or "" when the service sent none.
func (r Response) Receipt() string {
	switch v := r["receipt"].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
