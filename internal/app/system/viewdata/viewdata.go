// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/campusconnect/mentorlink/internal/app/system/auth"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

// NewBaseVM fills the common view-model fields from the request.
func NewBaseVM(r *http.Request, title, backURL string) BaseVM {
	vm := BaseVM{
		SiteName:    "MentorLink",
		Title:       title,
		BackURL:     backURL,
		CurrentPath: r.URL.Path,
	}
	if u, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.Role = u.Role
		vm.UserName = u.Name
	}
	return vm
}
