package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/eriju-studio/storefront-service/pkg/utils"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminKey gates the admin routes behind the shared console key. This is a
// deterrent, not an access-control boundary: there is no session, no expiry,
// just a header compare on every request.
func AdminKey(key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
