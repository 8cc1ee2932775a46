// Package resp provides the JSON response helpers used by every handler.
//
// Success bodies are written as-is; failures share one shape:
//
//	{
//	  "code": -401,            // Business error code
//	  "message": "...",        // Human-readable message
//	  "errors": {...}          // Error details
//	}
//
//	resp.Success(w, habit)
//	resp.WithStatusCode(w, http.StatusCreated, habit)
//	resp.WithContentType(w, hateoas.MediaType, http.StatusOK, envelope)
//	resp.Fail(w, resp.InvalidFields("invalid fields", map[string]string{"fields": "id,foo"}))
//
// Error codes come from the ecode package.
package resp
