package router

import (
	"net/http"
	"strings"

	"estudio-luma-me/app/controller"
	"estudio-luma-me/service"
)

type Controllers struct {
	Catalog *controller.CatalogController
	Project *controller.ProjectController
	Logo    *controller.LogoController
	Site    *controller.SiteController
	Auth    *controller.AuthController
	Upload  *controller.UploadController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// requireSession gates a handler behind a live admin session.
func requireSession(authService service.AuthServiceInterface, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := authService.GetSession(r.Context(), controller.BearerToken(r))
		if err != nil {
			http.Error(w, "Failed to check session", http.StatusInternalServerError)
			return
		}
		if session == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func SetupRoutes(controllers *Controllers, authService service.AuthServiceInterface) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Public catalog routes
	http.HandleFunc("/api/catalog", controllers.Catalog.GetCatalog)
	http.HandleFunc("/api/catalog/latest", controllers.Catalog.GetLatest)
	http.HandleFunc("/api/catalog/item", controllers.Catalog.GetItem)
	http.HandleFunc("/api/logos", controllers.Catalog.GetLogoGallery)

	// Public site routes
	http.HandleFunc("/api/site/images", controllers.Site.GetImages)
	http.HandleFunc("/api/site/settings", controllers.Site.GetSettings)

	// Auth routes
	http.HandleFunc("/auth/login", controllers.Auth.Login)
	http.HandleFunc("/auth/logout", controllers.Auth.Logout)
	http.HandleFunc("/auth/session", controllers.Auth.Session)

	// Project admin routes
	http.HandleFunc("/admin/projects", requireSession(authService, controllers.Project.CreateProject))
	http.HandleFunc("/admin/projects/", requireSession(authService, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			controllers.Project.UpdateProject(w, r)
		case http.MethodDelete:
			controllers.Project.DeleteProject(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Logo admin routes
	http.HandleFunc("/admin/logos", requireSession(authService, controllers.Logo.CreateLogo))
	http.HandleFunc("/admin/logos/", requireSession(authService, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			controllers.Logo.UpdateLogo(w, r)
		case http.MethodDelete:
			controllers.Logo.DeleteLogo(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Site imagery and settings admin routes
	http.HandleFunc("/admin/site-images", requireSession(authService, controllers.Site.UpsertImage))
	http.HandleFunc("/admin/site-images/", requireSession(authService, func(w http.ResponseWriter, r *http.Request) {
		// Only DELETE carries a key in the path
		if strings.TrimPrefix(r.URL.Path, "/admin/site-images/") == "" {
			http.Error(w, "key parameter is required", http.StatusBadRequest)
			return
		}
		controllers.Site.DeleteImage(w, r)
	}))
	http.HandleFunc("/admin/site-settings", requireSession(authService, controllers.Site.UpdateSettings))

	// Upload, bulk re-encode and export admin routes
	http.HandleFunc("/admin/uploads", requireSession(authService, controllers.Upload.Upload))
	http.HandleFunc("/admin/images/reencode", requireSession(authService, controllers.Upload.ReencodeAll))
	http.HandleFunc("/admin/export/portfolio", requireSession(authService, controllers.Upload.ExportPortfolio))
}
