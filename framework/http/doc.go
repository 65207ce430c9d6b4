// Package http holds the JSON response helpers used by the inspector.
//
//	res := gohttp.NewResponse(w)
//	res.Success(registry.Registrations())   // 200 {"data": [...]}
//	res.NotFound("no such contract")        // 404 {"message": "..."}
package http
