// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method and path patterns on http.ServeMux. Public
reads (poll list/detail, results, categories) carry only logging; poll
detail additionally runs OptionalAuth so authenticated callers see their
own vote. All mutating routes and caller-scoped reads run RequireAuth;
admin routes additionally enforce the admin policy inside the handler.
*/
package router
